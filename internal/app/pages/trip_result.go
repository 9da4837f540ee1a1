package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/components"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/markdown"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// TripResultData describes one itinerary view. DraftID is set for an unsaved
// result, TripID once it is stored.
type TripResultData struct {
	Destination string
	Duration    int
	Budget      models.Budget
	Travelers   int
	Itinerary   string
	DraftID     string
	TripID      string
	Saved       bool
}

func DraftResult(d models.Draft) TripResultData {
	return TripResultData{
		Destination: d.Request.Destination,
		Duration:    d.Request.Duration,
		Budget:      d.Request.Budget,
		Travelers:   d.Request.Travelers,
		Itinerary:   d.Itinerary,
		DraftID:     d.ID,
	}
}

func SavedResult(t models.SavedTrip) TripResultData {
	return TripResultData{
		Destination: t.Destination,
		Duration:    t.Duration,
		Budget:      t.Budget,
		Travelers:   t.Travelers,
		Itinerary:   t.Itinerary,
		TripID:      t.ID,
		Saved:       true,
	}
}

// TripResult renders the itinerary markup once, below a summary header.
func TripResult(data TripResultData) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Open("article", templ.Attributes{"id": "itinerary", "class": "rounded-2xl bg-white p-6 shadow-md ring-1 ring-orange-100 sm:p-8"})

		w.Open("header", templ.Attributes{"class": "mb-6 flex flex-col gap-4 border-b border-gray-100 pb-4 sm:flex-row sm:items-center sm:justify-between"})
		w.Open("div", nil)
		w.Element("h2", templ.Attributes{"class": "text-2xl font-bold text-gray-900"}, data.Destination)
		w.Element("p", templ.Attributes{"class": "trip-meta text-sm text-gray-500"},
			strconv.Itoa(data.Duration)+" days · "+strconv.Itoa(data.Travelers)+" travelers · "+data.Budget.Label())
		w.Close("div")
		w.Open("div", templ.Attributes{"id": "trip-actions", "class": "flex gap-2"})
		w.Component(ctx, tripActions(data))
		w.Close("div")
		w.Close("header")

		w.Open("div", templ.Attributes{"class": "itinerary-body"})
		w.Raw(markdown.Render(data.Itinerary))
		w.Close("div")

		w.Component(ctx, travelTips())
		w.Close("article")
	})
}

var proTips = []string{
	"Best time to visit: October to March for pleasant weather",
	"Try authentic Tamil cuisine - idli, dosa, chettinad chicken, filter coffee",
	"Dress modestly when visiting temples",
	"Learn a few basic Tamil phrases - locals appreciate it!",
	"Book accommodations in advance during peak season",
}

var tipTiles = []string{"Plan Ahead", "Book Early", "Try Local Food"}

// travelTips is the fixed advice shown under every itinerary.
func travelTips() templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Open("aside", templ.Attributes{"class": "pro-tips mt-8 rounded-xl border border-orange-200 bg-orange-50 p-4"})
		w.Element("h3", templ.Attributes{"class": "mb-2 font-bold text-gray-900"}, "Pro Tips for Tamil Nadu Travel")
		w.Open("ul", templ.Attributes{"class": "list-disc list-inside space-y-1 text-sm text-gray-700"})
		for _, tip := range proTips {
			w.Element("li", nil, tip)
		}
		w.Close("ul")
		w.Close("aside")

		w.Open("div", templ.Attributes{"class": "tip-tiles mt-6 grid grid-cols-3 gap-2 sm:gap-4"})
		for _, tile := range tipTiles {
			w.Element("p", templ.Attributes{
				"class": "rounded-xl border border-orange-100 bg-white p-3 text-center text-xs font-semibold text-gray-700 sm:p-4",
			}, tile)
		}
		w.Close("div")

		w.Open("div", templ.Attributes{"class": "mt-6 text-center"})
		w.Component(ctx, components.Button(components.ButtonProps{
			Label: "Plan another trip", Href: "/trips/new", Variant: components.ButtonGhost,
		}))
		w.Close("div")
	})
}

func tripActions(data TripResultData) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		switch {
		case data.Saved:
			w.Component(ctx, components.Button(components.ButtonProps{
				Label: "All saved trips", Href: "/trips", Variant: components.ButtonSecondary,
			}))
			w.Open("form", templ.Attributes{"method": "post", "action": "/trips/" + data.TripID + "/delete"})
			w.Component(ctx, components.Button(components.ButtonProps{
				Label: "Delete", Type: "submit", Variant: components.ButtonDanger,
				Attrs: templ.Attributes{"hx-confirm": "Delete this trip?"},
			}))
			w.Close("form")
		case data.DraftID != "":
			w.Open("form", templ.Attributes{
				"method": "post", "action": "/trips/save",
				"hx-post": "/trips/save", "hx-target": "#trip-actions",
			})
			w.Open("input", templ.Attributes{"type": "hidden", "name": "draft_id", "value": data.DraftID})
			w.Component(ctx, components.Button(components.ButtonProps{Label: "Save Trip", Type: "submit"}))
			w.Close("form")
		}
	})
}

// TripSavedActions replaces the Save button once the draft is stored.
func TripSavedActions(trip models.SavedTrip) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		w.Element("span", templ.Attributes{"class": "saved-confirmation self-center text-sm font-medium text-green-700"}, "Trip saved")
		w.Component(ctx, components.Button(components.ButtonProps{
			Label: "View", Href: "/trips/" + trip.ID, Variant: components.ButtonSecondary,
		}))
	})
}
