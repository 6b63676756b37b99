package components

import (
	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Chrome is the site-wide data shown around every page.
type Chrome struct {
	SiteName string
	Contact  content.Contact
	Services []content.Service
}

type PageConfig struct {
	Title       string
	Description string
	Path        string
	Chrome      Chrome
}

func Layout(config PageConfig, body ...g.Node) g.Node {
	if config.Chrome.SiteName == "" {
		config.Chrome.SiteName = "CRE8DIGI"
	}

	title := config.Chrome.SiteName
	if config.Title != "" {
		title = config.Title + " | " + config.Chrome.SiteName
	}

	if config.Description == "" {
		config.Description = "Digital agency for websites, apps, SEO, design and video production."
	}

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(config.Description)),

				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(config.Description)),
				Meta(g.Attr("property", "og:type"), Content("website")),

				Link(Rel("stylesheet"), Href("/static/site.css")),

				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				Class("site"),
				SiteHeader(config.Chrome, config.Path),
				Main(ID("main"), g.Group(body)),
				SiteFooter(config.Chrome),
			),
		),
	})
}
