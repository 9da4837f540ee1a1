// Package pages renders the planner screens. Every page is a fragment that
// LayoutPage can wrap; HTMX requests receive the fragment alone.
package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/components"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

const (
	htmxSrc     = "https://unpkg.com/htmx.org@2.0.4"
	tailwindSrc = "https://cdn.tailwindcss.com"
)

// ContentID is the element swapped by boosted navigation.
const ContentID = "content"

func LayoutPage(data models.LayoutTempl) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Raw("<!DOCTYPE html>")
		w.Open("html", templ.Attributes{"lang": "en"})
		w.Raw("<head>")
		w.Raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Element("title", nil, data.Title)
		w.Open("script", templ.Attributes{"src": tailwindSrc}).Close("script")
		w.Open("script", templ.Attributes{"src": htmxSrc}).Close("script")
		w.Open("link", templ.Attributes{"rel": "stylesheet", "href": "/assets/css/app.css"})
		w.Open("script", templ.Attributes{"src": "/assets/js/app.js", "defer": true}).Close("script")
		w.Raw("</head>")

		w.Open("body", templ.Attributes{"class": "min-h-screen bg-gradient-to-br from-orange-50 via-white to-amber-50 text-gray-900", "hx-boost": "true"})
		w.Component(ctx, navbar(data.Nav, data.ActiveNav))
		w.Open("main", templ.Attributes{"id": ContentID, "class": "mx-auto max-w-5xl px-4 py-8"})
		w.Component(ctx, data.Content)
		w.Close("main")
		w.Open("footer", templ.Attributes{"class": "py-6 text-center text-xs text-gray-500"})
		w.Text("Itineraries are generated by AI. Check opening hours before you travel.")
		w.Close("footer")
		w.Close("body").Close("html")
	})
}

func navbar(nav models.Navigation, active string) templ.Component {
	return components.Render(func(_ context.Context, w *components.Writer) {
		w.Open("nav", templ.Attributes{"class": "sticky top-0 z-10 border-b border-orange-100 bg-white/90 backdrop-blur"})
		w.Open("div", templ.Attributes{"class": "mx-auto flex max-w-5xl items-center justify-between px-4 py-3"})
		w.Open("a", templ.Attributes{"href": "/", "class": "text-lg font-bold text-orange-700"}).Text("Tamil Nadu Explorer").Close("a")
		w.Open("ul", templ.Attributes{"class": "flex gap-1"})
		for _, item := range nav.Items {
			class := "rounded-md px-3 py-2 text-sm font-medium text-gray-600 hover:bg-orange-50 hover:text-orange-700"
			attrs := templ.Attributes{"href": item.URL}
			if item.Name == active {
				class = "rounded-md px-3 py-2 text-sm font-medium bg-orange-100 text-orange-800"
				attrs["aria-current"] = "page"
			}
			attrs["class"] = class
			w.Raw("<li>").Element("a", attrs, item.Name).Raw("</li>")
		}
		w.Close("ul").Close("div").Close("nav")
	})
}

// Notice is the single user-facing failure message.
const Notice = "Something went wrong while planning your trip. Please try again."

// ErrorNotice renders an alert box; message is shown escaped.
func ErrorNotice(message string) templ.Component {
	return components.Render(func(_ context.Context, w *components.Writer) {
		w.Open("div", templ.Attributes{
			"role":  "alert",
			"class": "notice rounded-lg border border-red-200 bg-red-50 p-4 text-sm text-red-800",
		})
		w.Text(message)
		w.Close("div")
	})
}

// NotFoundPage is shown for unknown or expired trips.
func NotFoundPage(what string) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Open("section", templ.Attributes{"class": "py-16 text-center"})
		w.Element("h1", templ.Attributes{"class": "text-2xl font-bold text-gray-800"}, what+" not found")
		w.Element("p", templ.Attributes{"class": "mt-2 text-gray-600"}, "It may have been deleted or expired.")
		w.Raw(`<div class="mt-6">`)
		w.Component(ctx, components.Button(components.ButtonProps{Label: "Plan a new trip", Href: "/trips/new"}))
		w.Raw("</div>")
		w.Close("section")
	})
}
