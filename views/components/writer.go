package components

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Writer accumulates HTML output and remembers the first write error
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup
func (hw *Writer) Raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

// Text writes s with HTML escaping
func (hw *Writer) Text(s string) {
	hw.Raw(templ.EscapeString(s))
}

// Printf formats trusted markup; arguments must already be escaped with Esc
func (hw *Writer) Printf(format string, args ...any) {
	hw.Raw(fmt.Sprintf(format, args...))
}

// Render writes a child component
func (hw *Writer) Render(ctx context.Context, c templ.Component) {
	if hw.err != nil || c == nil {
		return
	}
	hw.err = c.Render(ctx, hw.w)
}

func (hw *Writer) Err() error {
	return hw.err
}

// Esc escapes text for element content and quoted attribute values
func Esc(s string) string {
	return templ.EscapeString(s)
}

// Component adapts a writer callback to templ.Component
func Component(fn func(ctx context.Context, hw *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewWriter(w)
		fn(ctx, hw)
		return hw.Err()
	})
}
