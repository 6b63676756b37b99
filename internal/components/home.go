package components

import (
	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// homeShowcase is how many services and projects the landing page shows.
const homeShowcase = 6

func Hero(h content.Hero) g.Node {
	return Section(
		Class("hero"),
		g.If(h.BgImage != "", g.Attr("style", "background-image: url('"+h.BgImage+"')")),
		Div(
			Class("container hero-inner"),
			H1(g.Text(h.Title)),
			g.If(h.Subtitle != "", P(Class("hero-subtitle"), g.Text(h.Subtitle))),
			P(Class("lead"), g.Text(h.Description)),
			Div(
				Class("hero-actions"),
				g.If(h.CTA.Text != "", A(Href(linkOr(h.CTA.Link, "/contact")), Class("btn btn-primary"), g.Text(h.CTA.Text))),
				g.If(h.SecondaryCTA.Text != "", A(Href(linkOr(h.SecondaryCTA.Link, "/portfolio")), Class("btn btn-outline"), g.Text(h.SecondaryCTA.Text))),
			),
		),
	)
}

func linkOr(link, fallback string) string {
	if link == "" {
		return fallback
	}
	return link
}

func HomePage(site content.Site, services []content.Service, projects []content.Project, testimonials []content.Testimonial) g.Node {
	if len(services) > homeShowcase {
		services = services[:homeShowcase]
	}
	if len(projects) > homeShowcase {
		projects = projects[:homeShowcase]
	}

	return Div(
		Class("page"),
		Hero(site.Hero),

		Section(
			Class("section about-summary"),
			Div(
				Class("container"),
				SectionHeading(site.About.Heading, site.About.Content),
				grid("grid-3", g.Map(site.Features, HighlightCard)),
				grid("grid-3", g.Map(site.About.Features, HighlightCard)),
			),
		),

		Section(
			Class("section"),
			ID("services"),
			Div(
				Class("container"),
				SectionHeading("Our Services", "We provide the best offers on our services"),
				grid("grid-3", g.Map(services, ServiceCard)),
			),
		),

		Section(
			Class("section"),
			ID("featured-work"),
			Div(
				Class("container"),
				SectionHeading("Featured Work", "Explore some of our recent projects and digital success stories"),
				grid("grid-3", g.Map(projects, ProjectCard)),
				A(Href("/portfolio"), Class("btn btn-outline"), g.Text("View All Projects")),
			),
		),

		g.If(len(testimonials) > 0, Section(
			Class("section"),
			ID("testimonials"),
			Div(
				Class("container"),
				SectionHeading("What Our Clients Say", ""),
				grid("grid-3", g.Map(testimonials, TestimonialCard)),
			),
		)),
	)
}
