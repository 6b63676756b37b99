package components

import (
	"fmt"
	"time"

	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

var quickLinks = []navItem{
	{"About Us", "/about"},
	{"Services", "/services"},
	{"Portfolio", "/portfolio"},
	{"Blog", "/blog"},
	{"Contact", "/contact"},
}

// footerServiceLimit caps the service links in the footer.
const footerServiceLimit = 4

func SiteFooter(chrome Chrome) g.Node {
	services := chrome.Services
	if len(services) > footerServiceLimit {
		services = services[:footerServiceLimit]
	}

	return Footer(
		Class("site-footer"),
		Div(
			Class("container footer-grid"),

			Div(
				Class("footer-brand"),
				Logo(chrome.SiteName),
				P(g.Text("We turn ideas into digital experiences that grow your business.")),
			),

			Div(
				H4(g.Text("Quick Links")),
				Ul(
					g.Group(g.Map(quickLinks, func(item navItem) g.Node {
						return Li(A(Href(item.Path), g.Text(item.Name)))
					})),
				),
			),

			Div(
				H4(g.Text("Our Services")),
				Ul(
					Class("footer-services"),
					g.Group(g.Map(services, func(s content.Service) g.Node {
						return Li(A(Href("/services/"+s.ID), g.Text(s.Title)))
					})),
				),
			),

			Div(
				H4(g.Text("Get in Touch")),
				Ul(
					g.If(chrome.Contact.Address != "",
						Li(IconGlyph("lucide:map-pin", ""), g.Text(chrome.Contact.Address)),
					),
					g.If(chrome.Contact.Phone != "",
						Li(IconGlyph("lucide:phone", ""), A(Href("tel:"+chrome.Contact.Phone), g.Text(chrome.Contact.Phone))),
					),
					g.If(chrome.Contact.Email != "",
						Li(IconGlyph("lucide:mail", ""), A(Href("mailto:"+chrome.Contact.Email), g.Text(chrome.Contact.Email))),
					),
				),
			),
		),
		Div(
			Class("container footer-bottom"),
			P(g.Text(fmt.Sprintf("© %d %s. All rights reserved.", time.Now().Year(), chrome.SiteName))),
		),
	)
}
