package components

import (
	"context"

	twmerge "github.com/Oudwins/tailwind-merge-go"
	"github.com/a-h/templ"
)

const (
	buttonBase = "inline-flex items-center justify-center rounded-lg font-medium transition-all duration-300 disabled:opacity-50 disabled:pointer-events-none"
	inputBase  = "mt-1 w-full rounded-md border border-gray-300 px-3 py-2 transition-all duration-200 focus:ring-2 focus:ring-purple-500 focus:border-transparent"
	labelBase  = "text-purple-600 font-medium"
	cardBase   = "bg-white/80 backdrop-blur-lg rounded-2xl shadow-2xl p-8 border border-white/20"
)

// ButtonVariant picks the base look of a button
type ButtonVariant string

const (
	ButtonPrimary ButtonVariant = "primary"
	ButtonOutline ButtonVariant = "outline"
	ButtonMuted   ButtonVariant = "muted"
	ButtonLink    ButtonVariant = "link"
)

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary: "w-full py-3 text-white bg-gradient-to-r from-purple-600 to-blue-600 hover:from-purple-700 hover:to-blue-700 hover:scale-105",
	ButtonOutline: "w-full py-3 border-2 border-purple-200 text-purple-600 bg-white hover:bg-purple-50",
	ButtonMuted:   "w-full py-3 text-white bg-gray-400 hover:bg-gray-500 hover:scale-105",
	ButtonLink:    "text-purple-600 hover:text-purple-700 transition-colors duration-200",
}

// ButtonClass merges the variant classes with caller overrides
func ButtonClass(variant ButtonVariant, extra ...string) string {
	parts := append([]string{buttonBase, buttonVariants[variant]}, extra...)
	return twmerge.Merge(parts...)
}

func InputClass(extra ...string) string {
	return twmerge.Merge(append([]string{inputBase}, extra...)...)
}

func LabelClass(extra ...string) string {
	return twmerge.Merge(append([]string{labelBase}, extra...)...)
}

func CardClass(extra ...string) string {
	return twmerge.Merge(append([]string{cardBase}, extra...)...)
}

// Background renders the blurred floating circles behind every page
func Background() templ.Component {
	return Component(func(ctx context.Context, hw *Writer) {
		hw.Raw(`<div class="absolute inset-0" aria-hidden="true">`)
		hw.Raw(`<div class="absolute top-20 left-20 w-64 h-64 bg-purple-200 rounded-full mix-blend-multiply filter blur-xl opacity-70"></div>`)
		hw.Raw(`<div class="absolute top-40 right-20 w-64 h-64 bg-blue-200 rounded-full mix-blend-multiply filter blur-xl opacity-70"></div>`)
		hw.Raw(`<div class="absolute -bottom-20 left-40 w-64 h-64 bg-indigo-200 rounded-full mix-blend-multiply filter blur-xl opacity-70"></div>`)
		hw.Raw(`</div>`)
	})
}

// ActionButton is a single-button form posting name=value to action
func ActionButton(action, name, value, label string, variant ButtonVariant, extra ...string) templ.Component {
	return Component(func(ctx context.Context, hw *Writer) {
		hw.Printf(`<form method="post" action="%s">`, Esc(action))
		if name != "" {
			hw.Printf(`<input type="hidden" name="%s" value="%s">`, Esc(name), Esc(value))
		}
		hw.Printf(`<button type="submit" class="%s">%s</button>`, Esc(ButtonClass(variant, extra...)), Esc(label))
		hw.Raw(`</form>`)
	})
}
