package pages

import (
	"context"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/components"
)

var homeFeatures = []struct{ title, body string }{
	{"Temples and heritage", "From the Brihadeeswarar Temple to the Shore Temple, plans built around the state's living history."},
	{"Hills and beaches", "Misty mornings in Ooty and Kodaikanal, sunsets at Kanyakumari and Marina Beach."},
	{"Food along the way", "Restaurant picks for Chettinad, Madurai and Kongu cuisine on every itinerary."},
}

func HomePage() templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Open("section", templ.Attributes{"class": "py-12 text-center"})
		w.Element("h1", templ.Attributes{"class": "text-4xl font-extrabold text-orange-700 sm:text-5xl"}, "Discover Tamil Nadu")
		w.Element("p", templ.Attributes{"class": "mx-auto mt-4 max-w-2xl text-lg text-gray-600"},
			"Tell us where, how long and how you like to travel. We write a day-by-day itinerary with hotels, food and costs.")
		w.Open("div", templ.Attributes{"class": "mt-8 flex justify-center gap-3"})
		w.Component(ctx, components.Button(components.ButtonProps{Label: "Plan a trip", Href: "/trips/new", Class: "px-6 py-3 text-base"}))
		w.Component(ctx, components.Button(components.ButtonProps{Label: "Saved trips", Href: "/trips", Variant: components.ButtonSecondary, Class: "px-6 py-3 text-base"}))
		w.Close("div")
		w.Close("section")

		w.Open("section", templ.Attributes{"class": "grid gap-4 sm:grid-cols-3"})
		for _, f := range homeFeatures {
			w.Open("article", templ.Attributes{"class": "rounded-xl bg-white p-6 shadow-sm ring-1 ring-orange-100"})
			w.Element("h2", templ.Attributes{"class": "font-semibold text-gray-900"}, f.title)
			w.Element("p", templ.Attributes{"class": "mt-2 text-sm text-gray-600"}, f.body)
			w.Close("article")
		}
		w.Close("section")
	})
}
