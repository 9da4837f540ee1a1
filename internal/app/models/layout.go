package models

import "github.com/a-h/templ"

type NavItem struct {
	Name string
	URL  string
	Icon string
}

type Navigation struct {
	Items []NavItem
}

type LayoutTempl struct {
	Title     string
	Nav       Navigation
	ActiveNav string
	Content   templ.Component
}

var MainNav = Navigation{
	Items: []NavItem{
		{Name: "Home", URL: "/"},
		{Name: "New Trip", URL: "/trips/new", Icon: "sparkles"},
		{Name: "Saved Trips", URL: "/trips", Icon: "book-open"},
		{Name: "Chat", URL: "/chat", Icon: "message-circle"},
	},
}
