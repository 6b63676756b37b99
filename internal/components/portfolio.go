package components

import (
	"net/url"

	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// CategoryFilter renders one link per category, marking the active one.
// The "All" entry links to base without a query.
func CategoryFilter(base string, categories []string, active string) g.Node {
	return Nav(
		Class("category-filter"),
		g.Attr("aria-label", "Filter by category"),
		g.Group(g.Map(categories, func(c string) g.Node {
			href := base
			if c != content.AllCategories {
				href = base + "?category=" + url.QueryEscape(c)
			}
			class := "chip"
			if c == active {
				class = "chip active"
			}
			return A(
				Href(href),
				Class(class),
				g.If(c == active, g.Attr("aria-current", "true")),
				IconGlyph("lucide:filter", ""),
				g.Text(c),
			)
		})),
	)
}

func PortfolioPage(categories []string, active string, projects []content.Project) g.Node {
	var results g.Node
	if len(projects) == 0 {
		results = EmptyState("No projects in " + active + " yet. Try another category.")
	} else {
		results = grid("grid-3 project-grid", g.Map(projects, ProjectCard))
	}

	return Div(
		Class("page"),
		PageHero("Our Portfolio", "Explore our collection of successful projects and digital transformations."),

		Section(
			Class("section"),
			Div(
				Class("container"),
				CategoryFilter("/portfolio", categories, active),
				results,
			),
		),

		callToAction("Ready to Start Your Project?"),
	)
}

func ProjectDetailPage(p content.Project, related []content.Project) g.Node {
	return Div(
		Class("page"),
		Section(
			Class("page-hero detail"),
			g.Attr("data-id", p.ID),
			Div(
				Class("container detail-grid"),
				Div(
					BackLink("/portfolio", "Back to Portfolio"),
					Span(Class("badge"), g.Text(p.Category)),
					H1(g.Text(p.Title)),
					P(Class("lead"), g.Text(p.Description)),
					Div(
						Class("facts"),
						Div(H3(g.Text("Client")), P(g.Text(p.Client))),
						Div(H3(g.Text("Category")), P(g.Text(p.Category))),
					),
					A(Href("/contact"), Class("btn btn-primary"), g.Text("Start Similar Project")),
				),
				g.If(p.Image != "", Img(Src(p.Image), Alt(p.Title))),
			),
		),

		Section(
			Class("section"),
			Div(
				Class("container"),
				SectionHeading("Project Overview", ""),
				g.If(p.Results != "", Div(Class("results"), H3(g.Text("The Results")), P(g.Text(p.Results)))),
				g.If(len(p.Tags) > 0, Div(H3(g.Text("Technologies Used")), TagList(p.Tags))),
			),
		),

		g.If(len(related) > 0, Section(
			Class("section"),
			ID("related"),
			Div(
				Class("container"),
				SectionHeading("Related Projects", ""),
				grid("grid-3", g.Map(related, ProjectCard)),
			),
		)),
	)
}
