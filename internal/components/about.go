package components

import (
	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

type stat struct {
	Number string
	Label  string
	Glyph  string
}

var agencyStats = []stat{
	{"57+", "Projects Completed", "lucide:target"},
	{"2+", "Years Experience", "lucide:award"},
	{"100%", "Client Satisfaction", "lucide:users"},
	{"24/7", "Support Available", "lucide:globe"},
}

func statCard(s stat) g.Node {
	return Div(
		Class("card stat"),
		IconGlyph(s.Glyph, ""),
		H3(g.Text(s.Number)),
		P(g.Text(s.Label)),
	)
}

func AboutPage(site content.Site, team []content.TeamMember) g.Node {
	return Div(
		Class("page"),
		PageHero(site.About.Heading, site.About.Content),

		Section(
			Class("section"),
			Div(Class("container"), grid("grid-4 stats", g.Map(agencyStats, statCard))),
		),

		Section(
			Class("section"),
			Div(
				Class("container"),
				SectionHeading("Our Core Values", "The principles that guide everything we do and shape how we work with our clients"),
				grid("grid-3", g.Map(site.Features, HighlightCard)),
			),
		),

		Section(
			Class("section"),
			ID("team"),
			Div(
				Class("container"),
				SectionHeading("Meet Our Team", "Our team of experienced professionals is dedicated to providing top-notch digital solutions"),
				grid("grid-4", g.Map(team, TeamCard)),
			),
		),

		g.If(len(site.About.Features) > 0, Section(
			Class("section"),
			Div(
				Class("container"),
				SectionHeading("Why Choose Us", ""),
				grid("grid-2", g.Map(site.About.Features, HighlightCard)),
			),
		)),

		callToAction("Ready to Work Together?"),
	)
}

func callToAction(title string) g.Node {
	return Section(
		Class("section cta"),
		Div(
			Class("container"),
			H2(g.Text(title)),
			A(Href("/contact"), Class("btn btn-primary"), g.Text("Get In Touch")),
			A(Href("/portfolio"), Class("btn btn-outline"), g.Text("View Our Work")),
		),
	)
}
