// Package components holds the small reusable view pieces shared by pages.
package components

import (
	"context"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

// Writer accumulates the first write error so views can be written as a flat
// sequence of calls and checked once.
type Writer struct {
	w   io.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup.
func (w *Writer) Raw(s string) *Writer {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
	return w
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) *Writer {
	return w.Raw(templ.EscapeString(s))
}

// Open writes a start tag with its attributes in name order.
func (w *Writer) Open(tag string, attrs templ.Attributes) *Writer {
	w.Raw("<" + tag)
	w.Raw(Attrs(attrs))
	return w.Raw(">")
}

func (w *Writer) Close(tag string) *Writer {
	return w.Raw("</" + tag + ">")
}

// Element writes <tag attrs>text</tag> with text escaped.
func (w *Writer) Element(tag string, attrs templ.Attributes, text string) *Writer {
	return w.Open(tag, attrs).Text(text).Close(tag)
}

func (w *Writer) Component(ctx context.Context, c templ.Component) *Writer {
	if w.err == nil && c != nil {
		w.err = c.Render(ctx, w.w)
	}
	return w
}

func (w *Writer) Err() error {
	return w.err
}

// Attrs renders attributes sorted by name. A true bool renders the bare name,
// false omits the attribute.
func Attrs(attrs templ.Attributes) string {
	if len(attrs) == 0 {
		return ""
	}
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		switch v := attrs[name].(type) {
		case bool:
			if v {
				b.WriteString(" " + templ.EscapeString(name))
			}
		case string:
			b.WriteString(" " + templ.EscapeString(name) + `="` + templ.EscapeString(v) + `"`)
		case templ.SafeURL:
			b.WriteString(" " + templ.EscapeString(name) + `="` + templ.EscapeString(string(v)) + `"`)
		}
	}
	return b.String()
}

// Render wraps a write function as a component.
func Render(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := NewWriter(out)
		fn(ctx, w)
		return w.Err()
	})
}
