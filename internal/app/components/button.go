package components

import (
	"context"

	twmerge "github.com/Oudwins/tailwind-merge-go/pkg/twmerge"
	"github.com/a-h/templ"
)

type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
	ButtonDanger    ButtonVariant = "danger"
	ButtonGhost     ButtonVariant = "ghost"
)

const buttonBase = "inline-flex items-center justify-center gap-2 rounded-lg px-4 py-2 text-sm font-semibold transition-colors focus:outline-none focus:ring-2 focus:ring-offset-2 disabled:opacity-50"

var buttonVariants = map[ButtonVariant]string{
	ButtonPrimary:   "bg-orange-600 text-white hover:bg-orange-700 focus:ring-orange-500",
	ButtonSecondary: "bg-white text-gray-800 border border-gray-300 hover:bg-gray-50 focus:ring-gray-400",
	ButtonDanger:    "bg-red-600 text-white hover:bg-red-700 focus:ring-red-500",
	ButtonGhost:     "bg-transparent text-orange-700 hover:bg-orange-50 focus:ring-orange-300",
}

type ButtonProps struct {
	Label   string
	Variant ButtonVariant
	// Type defaults to "button".
	Type string
	// Class overrides the variant classes; conflicts resolve in favour of Class.
	Class string
	// Href renders an anchor instead of a button.
	Href  string
	Attrs templ.Attributes
}

func ButtonClass(variant ButtonVariant, override string) string {
	v, ok := buttonVariants[variant]
	if !ok {
		v = buttonVariants[ButtonPrimary]
	}
	return twmerge.Merge(buttonBase, v, override)
}

func Button(p ButtonProps) templ.Component {
	return Render(func(_ context.Context, w *Writer) {
		attrs := templ.Attributes{"class": ButtonClass(p.Variant, p.Class)}
		for k, v := range p.Attrs {
			attrs[k] = v
		}

		if p.Href != "" {
			attrs["href"] = p.Href
			w.Element("a", attrs, p.Label)
			return
		}

		attrs["type"] = p.Type
		if p.Type == "" {
			attrs["type"] = "button"
		}
		w.Element("button", attrs, p.Label)
	})
}

// Badge is a small rounded label, used for landmarks on trip cards.
func Badge(label, class string) templ.Component {
	return Render(func(_ context.Context, w *Writer) {
		w.Element("span", templ.Attributes{
			"class": twmerge.Merge("inline-block rounded-full bg-orange-100 px-3 py-1 text-xs font-medium text-orange-800", class),
		}, label)
	})
}
