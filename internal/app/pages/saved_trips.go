package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/components"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

func SavedTripsPage(trips []models.TripSummary) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		if len(trips) == 0 {
			w.Open("section", templ.Attributes{"id": "saved-trips", "class": "empty-state rounded-2xl bg-white p-8 text-center shadow-md ring-1 ring-orange-100"})
			w.Element("h2", templ.Attributes{"class": "mb-2 text-xl font-bold text-gray-900"}, "No Saved Trips Yet")
			w.Element("p", templ.Attributes{"class": "text-gray-500"}, "Create your first Tamil Nadu adventure to see it here!")
			w.Raw(`<div class="mt-6">`)
			w.Component(ctx, components.Button(components.ButtonProps{Label: "Plan a trip", Href: "/trips/new"}))
			w.Raw("</div>")
			w.Close("section")
			return
		}

		w.Open("section", templ.Attributes{"id": "saved-trips"})
		w.Element("h1", templ.Attributes{"class": "mb-6 text-2xl font-bold text-gray-900 sm:text-3xl"}, "Your Saved Trips")
		w.Open("div", templ.Attributes{"class": "grid gap-4"})
		for _, t := range trips {
			w.Component(ctx, tripCard(t))
		}
		w.Close("div")
		w.Close("section")
	})
}

func tripCard(t models.TripSummary) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Open("article", templ.Attributes{
			"id":    "trip-" + t.ID,
			"class": "trip-card rounded-2xl bg-white p-6 shadow-sm ring-1 ring-orange-100 transition hover:shadow-md",
		})
		w.Open("div", templ.Attributes{"class": "flex flex-col items-start justify-between gap-4 sm:flex-row"})

		w.Open("div", templ.Attributes{"class": "flex-1"})
		w.Element("h2", templ.Attributes{"class": "mb-3 text-xl font-bold text-orange-700"}, t.Destination)
		w.Open("div", templ.Attributes{"class": "mb-3 flex flex-wrap gap-3 text-sm text-gray-600"})
		w.Element("span", nil, strconv.Itoa(t.Duration)+" days")
		w.Element("span", nil, strconv.Itoa(t.Travelers)+" travelers")
		w.Component(ctx, components.Badge(t.Budget.Label(), "bg-amber-100 text-amber-900"))
		w.Close("div")
		if len(t.Landmarks) > 0 {
			w.Open("div", templ.Attributes{"class": "landmarks mb-3 flex flex-wrap gap-2"})
			for _, l := range t.Landmarks {
				w.Component(ctx, components.Badge(l, ""))
			}
			w.Close("div")
		}
		w.Open("time", templ.Attributes{"datetime": t.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"), "class": "text-xs text-gray-400"})
		w.Text("Created: " + t.CreatedAt.Format("2 Jan 2006"))
		w.Close("time")
		w.Close("div")

		w.Open("div", templ.Attributes{"class": "flex w-full gap-2 sm:w-auto"})
		w.Component(ctx, components.Button(components.ButtonProps{
			Label: "View", Href: "/trips/" + t.ID, Variant: components.ButtonSecondary,
			Attrs: templ.Attributes{"title": "View trip"},
		}))
		w.Component(ctx, components.Button(components.ButtonProps{
			Label:   "Delete",
			Variant: components.ButtonDanger,
			Attrs: templ.Attributes{
				"title":      "Delete trip",
				"hx-delete":  "/trips/" + t.ID,
				"hx-target":  "#trip-" + t.ID,
				"hx-swap":    "outerHTML",
				"hx-confirm": "Delete this trip?",
			},
		}))
		w.Close("div")

		w.Close("div")
		w.Close("article")
	})
}
