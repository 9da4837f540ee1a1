package components

import (
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var b strings.Builder
	require.NoError(t, c.Render(context.Background(), &b))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(b.String()))
	require.NoError(t, err)
	return doc
}

func TestButton(t *testing.T) {
	t.Run("defaults to a primary button", func(t *testing.T) {
		doc := render(t, Button(ButtonProps{Label: "Save <Trip>"}))
		btn := doc.Find("button")
		require.Equal(t, 1, btn.Length())
		assert.Equal(t, "Save <Trip>", btn.Text())
		typ, _ := btn.Attr("type")
		assert.Equal(t, "button", typ)
		cls, _ := btn.Attr("class")
		assert.Contains(t, cls, "bg-orange-600")
	})

	t.Run("class override wins over the variant", func(t *testing.T) {
		doc := render(t, Button(ButtonProps{Label: "x", Variant: ButtonDanger, Class: "bg-black px-8"}))
		cls, _ := doc.Find("button").Attr("class")
		assert.Contains(t, cls, "bg-black")
		assert.NotContains(t, cls, "bg-red-600")
		assert.Contains(t, cls, "px-8")
		assert.NotContains(t, cls, "px-4")
	})

	t.Run("ghost variant has no fill", func(t *testing.T) {
		doc := render(t, Button(ButtonProps{Label: "Plan another trip", Href: "/trips/new", Variant: ButtonGhost}))
		cls, _ := doc.Find("a").Attr("class")
		assert.Contains(t, cls, "bg-transparent")
		assert.NotContains(t, cls, "bg-orange-600")
	})

	t.Run("href renders an anchor with extra attributes", func(t *testing.T) {
		doc := render(t, Button(ButtonProps{
			Label: "Plan", Href: "/trips/new",
			Attrs: templ.Attributes{"hx-boost": "true", "data-x": `"quoted"`},
		}))
		a := doc.Find("a")
		href, _ := a.Attr("href")
		assert.Equal(t, "/trips/new", href)
		boost, _ := a.Attr("hx-boost")
		assert.Equal(t, "true", boost)
		data, _ := a.Attr("data-x")
		assert.Equal(t, `"quoted"`, data)
	})
}

func TestAttrs(t *testing.T) {
	assert.Equal(t, ` a="1" required`, Attrs(templ.Attributes{"required": true, "a": "1", "hidden": false}))
	assert.Equal(t, "", Attrs(nil))
}

func TestBadge(t *testing.T) {
	doc := render(t, Badge("Ooty Lake", "bg-green-100"))
	cls, _ := doc.Find("span").Attr("class")
	assert.Contains(t, cls, "bg-green-100")
	assert.NotContains(t, cls, "bg-orange-100")
	assert.Equal(t, "Ooty Lake", doc.Find("span").Text())
}
