package pages

import (
	"context"
	"strconv"

	"github.com/a-h/templ"

	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/components"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/domain/landmarks"
	"github.com/FACorreiaa/tamilnadu-explorer/internal/app/models"
)

// ResultTargetID receives the generated itinerary below the form.
const ResultTargetID = "trip-result"

type TripFormData struct {
	Catalog   []landmarks.District
	Values    models.TripRequest
	MaxImages int
	Error     string
}

const (
	labelClass = "mb-2 block text-sm font-semibold text-gray-800"
	inputClass = "w-full rounded-xl border-2 border-gray-200 bg-white px-4 py-3 focus:border-orange-500 focus:outline-none"
)

func TripFormPage(data TripFormData) templ.Component {
	return components.Render(func(ctx context.Context, w *components.Writer) {
		v := data.Values
		if v.Duration == 0 {
			v.Duration = 3
		}
		if v.Travelers == 0 {
			v.Travelers = 2
		}
		if v.Budget == "" {
			v.Budget = models.BudgetModerate
		}
		if v.Language == "" {
			v.Language = models.LanguageEnglish
		}

		w.Open("section", templ.Attributes{"class": "rounded-2xl bg-white p-6 shadow-md ring-1 ring-orange-100 sm:p-8"})
		w.Element("h1", templ.Attributes{"class": "text-2xl font-bold text-gray-900"}, "Plan Your Tamil Nadu Adventure")
		w.Element("p", templ.Attributes{"class": "mb-6 text-sm text-gray-500"}, "Discover the soul, culture, and timeless beauty")

		if data.Error != "" {
			w.Component(ctx, ErrorNotice(data.Error))
		}

		w.Open("form", templ.Attributes{
			"id":           "trip-form",
			"class":        "space-y-6",
			"method":       "post",
			"action":       "/trips/generate",
			"enctype":      "multipart/form-data",
			"hx-post":      "/trips/generate",
			"hx-target":    "#" + ResultTargetID,
			"hx-encoding":  "multipart/form-data",
			"hx-indicator": "#trip-spinner",
		})

		w.Open("div", nil)
		w.Element("label", templ.Attributes{"for": "destination", "class": labelClass}, "Destination in Tamil Nadu")
		w.Open("select", templ.Attributes{"id": "destination", "name": "destination", "class": inputClass, "required": true})
		w.Element("option", templ.Attributes{"value": ""}, "Select a destination")
		for _, d := range data.Catalog {
			w.Open("optgroup", templ.Attributes{"label": d.Name})
			destinationOption(w, d.Name, d.Name+" (District)", v.Destination)
			for _, p := range d.Places {
				destinationOption(w, p, p, v.Destination)
			}
			w.Close("optgroup")
		}
		w.Close("select")
		w.Close("div")

		w.Open("div", templ.Attributes{"class": "grid gap-4 sm:grid-cols-2"})
		numberField(w, "duration", "Duration (days)", v.Duration, models.MinDuration, models.MaxDuration)
		numberField(w, "travelers", "Travelers", v.Travelers, models.MinTravelers, models.MaxTravelers)
		w.Close("div")

		w.Open("fieldset", nil)
		w.Element("legend", templ.Attributes{"class": labelClass}, "Budget")
		w.Open("div", templ.Attributes{"class": "grid grid-cols-3 gap-3"})
		for _, b := range models.Budgets {
			w.Open("label", templ.Attributes{"class": "budget-option cursor-pointer rounded-xl border border-gray-200 px-4 py-3 text-center font-medium has-[:checked]:border-orange-500 has-[:checked]:bg-orange-50"})
			w.Open("input", templ.Attributes{
				"type": "radio", "name": "budget", "value": string(b), "class": "sr-only",
				"checked": b == v.Budget,
			})
			w.Text(b.Label())
			w.Close("label")
		}
		w.Close("div")
		w.Close("fieldset")

		w.Open("div", nil)
		w.Element("label", templ.Attributes{"for": "language", "class": labelClass}, "Itinerary language")
		w.Open("select", templ.Attributes{"id": "language", "name": "language", "class": inputClass})
		for _, l := range models.Languages {
			label := l.NativeName()
			if l != models.LanguageEnglish {
				label += " (" + l.Name() + ")"
			}
			w.Element("option", templ.Attributes{"value": string(l), "selected": l == v.Language}, label)
		}
		w.Close("select")
		w.Close("div")

		w.Open("div", nil)
		w.Element("label", templ.Attributes{"for": "interests", "class": labelClass}, "Interests (optional)")
		w.Open("textarea", templ.Attributes{
			"id": "interests", "name": "interests", "rows": "3", "class": inputClass + " resize-none",
			"placeholder": "E.g., temples, beaches, adventure, food tours, wildlife...",
		}).Text(v.Interests).Close("textarea")
		w.Close("div")

		w.Open("div", nil)
		w.Element("label", templ.Attributes{"for": "images", "class": labelClass},
			"Reference images (optional, up to "+strconv.Itoa(data.MaxImages)+")")
		w.Open("input", templ.Attributes{
			"id": "images", "name": "images", "type": "file", "accept": "image/*", "multiple": true,
			"class": "block w-full text-sm text-gray-600 file:mr-4 file:rounded-lg file:border-0 file:bg-orange-50 file:px-4 file:py-2 file:text-orange-700",
		})
		w.Close("div")

		w.Component(ctx, components.Button(components.ButtonProps{
			Label: "Generate Trip Plan", Type: "submit", Class: "w-full py-3 text-base",
		}))
		w.Open("p", templ.Attributes{"id": "trip-spinner", "class": "htmx-indicator text-center text-sm text-gray-500"}).
			Text("Creating your perfect itinerary...").Close("p")
		w.Close("form")
		w.Close("section")

		w.Open("div", templ.Attributes{"id": ResultTargetID, "class": "mt-8"}).Close("div")
	})
}

func destinationOption(w *components.Writer, value, label, selected string) {
	w.Element("option", templ.Attributes{"value": value, "selected": value == selected}, label)
}

func numberField(w *components.Writer, name, label string, value, lo, hi int) {
	w.Open("div", nil)
	w.Element("label", templ.Attributes{"for": name, "class": labelClass}, label)
	w.Open("input", templ.Attributes{
		"id": name, "name": name, "type": "number", "required": true, "class": inputClass,
		"min": strconv.Itoa(lo), "max": strconv.Itoa(hi), "value": strconv.Itoa(value),
	})
	w.Close("div")
}
