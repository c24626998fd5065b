package components

import (
	"context"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
	"github.com/loganlanou/popx/internal/notify"
)

const toastBase = "pointer-events-auto w-full rounded-lg border p-4 shadow-lg bg-white text-gray-900 border-gray-200"

func toastClass(n notify.Notification) string {
	if n.IsDestructive() {
		return twmerge.Merge(toastBase, "bg-red-600 text-white border-red-600")
	}
	return toastBase
}

// Toasts renders the queued notifications in the top-right corner
func Toasts(items []notify.Notification) templ.Component {
	return Component(func(ctx context.Context, hw *Writer) {
		if len(items) == 0 {
			return
		}
		hw.Raw(`<ol id="toasts" class="fixed top-4 right-4 z-50 flex w-full max-w-sm flex-col gap-2 pointer-events-none">`)
		for _, n := range items {
			hw.Printf(`<li role="status" data-variant="%s" class="%s">`, Esc(string(n.Variant)), Esc(toastClass(n)))
			hw.Printf(`<div class="text-sm font-semibold">%s</div>`, Esc(n.Title))
			hw.Printf(`<div class="text-sm opacity-90">%s</div>`, Esc(n.Description))
			hw.Raw(`</li>`)
		}
		hw.Raw(`</ol>`)
	})
}
