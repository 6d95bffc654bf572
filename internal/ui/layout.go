package ui

import "strings"

// NavLink is an entry of the side navigation
type NavLink struct {
	Name   string
	Href   string
	Active bool
}

var navLinks = []NavLink{
	{Name: "Home", Href: "/dashboard"},
	{Name: "Invoices", Href: "/dashboard/invoices"},
	{Name: "Customers", Href: "/dashboard/customers"},
}

// SideNav returns the navigation links with the one matching currentPath marked active
func SideNav(currentPath string) []NavLink {
	links := make([]NavLink, len(navLinks))
	for i, link := range navLinks {
		link.Active = currentPath == link.Href ||
			(link.Href != "/dashboard" && strings.HasPrefix(currentPath, link.Href+"/"))
		links[i] = link
	}
	return links
}

// Page carries what the layout shell needs around every page's content
type Page struct {
	Title     string
	Nav       []NavLink
	RequestID string
}

// NewPage builds the layout data for a page served at path
func NewPage(title, path string) Page {
	return Page{Title: title, Nav: SideNav(path)}
}
