package components

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type navItem struct {
	Name string
	Path string
}

var navItems = []navItem{
	{"Home", "/"},
	{"About", "/about"},
	{"Services", "/services"},
	{"Portfolio", "/portfolio"},
	{"Blog", "/blog"},
	{"Contact", "/contact"},
}

// isActive reports whether path falls under the nav item's section.
func isActive(item navItem, path string) bool {
	if item.Path == "/" {
		return path == "/"
	}
	return path == item.Path || strings.HasPrefix(path, item.Path+"/")
}

func Logo(siteName string) g.Node {
	accent, rest := siteName, ""
	if len(siteName) > 4 {
		accent, rest = siteName[:4], siteName[4:]
	}
	return A(
		Href("/"),
		Class("logo"),
		Span(Class("logo-accent"), g.Text(accent)),
		g.Text(rest),
	)
}

func SiteHeader(chrome Chrome, path string) g.Node {
	return g.Group([]g.Node{
		Div(
			Class("topbar"),
			Div(
				Class("container topbar-inner"),
				g.If(chrome.Contact.Phone != "",
					Span(Class("topbar-item"), IconGlyph("lucide:phone", ""), g.Text(chrome.Contact.Phone)),
				),
				g.If(chrome.Contact.Email != "",
					Span(Class("topbar-item"), IconGlyph("lucide:mail", ""), g.Text(chrome.Contact.Email)),
				),
			),
		),
		Header(
			Class("site-header"),
			Div(
				Class("container header-inner"),
				Logo(chrome.SiteName),
				Nav(
					Class("site-nav"),
					Ul(
						g.Group(g.Map(navItems, func(item navItem) g.Node {
							return Li(
								A(
									Href(item.Path),
									g.If(isActive(item, path), Class("active")),
									g.If(isActive(item, path), g.Attr("aria-current", "page")),
									g.Text(item.Name),
								),
							)
						})),
					),
				),
				A(Href("/contact"), Class("btn btn-primary"), g.Text("Get Started")),
			),
		),
	})
}
