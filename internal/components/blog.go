package components

import (
	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func featuredArticle(a content.Article, locale string) g.Node {
	return Section(
		Class("section featured-article"),
		g.Attr("data-id", a.ID),
		Div(
			Class("container detail-grid"),
			g.If(a.Image != "", Img(Src(a.Image), Alt(a.Title))),
			Div(
				Span(Class("badge"), g.Text(a.Category)),
				H2(g.Text(a.Title)),
				ArticleMeta(a, locale),
				P(g.Text(a.Excerpt)),
				TagList(a.Tags),
				A(Href("/blog/"+a.ID), Class("btn btn-primary"), g.Text("Read Full Article")),
			),
		),
	)
}

// BlogPage lists articles, featuring the first one when no category filter
// is active.
func BlogPage(articles []content.Article, categories []string, active, locale string) g.Node {
	featured := active == content.AllCategories && len(articles) > 0
	rest := articles
	if featured {
		rest = articles[1:]
	}

	var latest g.Node
	switch {
	case len(articles) == 0:
		latest = EmptyState("No articles in " + active + " yet.")
	case len(rest) > 0:
		latest = grid("grid-3 article-grid", g.Map(rest, func(a content.Article) g.Node {
			return ArticleCard(a, locale)
		}))
	}

	var highlight g.Node
	if featured {
		highlight = g.Group([]g.Node{
			Div(Class("container"), SectionHeading("Featured Article", "")),
			featuredArticle(articles[0], locale),
		})
	}

	return Div(
		Class("page"),
		PageHero("Digital Insights & Trends", "Stay updated with the latest trends in digital marketing, web development, and design."),

		highlight,

		Section(
			Class("section"),
			Div(
				Class("container"),
				SectionHeading("Latest Articles", "Explore our collection of insights, tips, and industry knowledge."),
				CategoryFilter("/blog", categories, active),
				latest,
			),
		),
	)
}

func ArticlePage(a content.Article, related []content.Article, locale string) g.Node {
	return Div(
		Class("page"),
		Section(
			Class("page-hero detail"),
			g.Attr("data-id", a.ID),
			Div(
				Class("container"),
				BackLink("/blog", "Back to Blog"),
				Span(Class("badge"), g.Text(a.Category)),
				H1(g.Text(a.Title)),
				P(Class("lead"), g.Text(a.Excerpt)),
				ArticleMeta(a, locale),
				g.If(a.Image != "", Img(Src(a.Image), Alt(a.Title))),
			),
		),

		Section(
			Class("section"),
			Div(
				Class("container narrow"),
				MarkdownBody(a.Content),
				g.If(len(a.Tags) > 0, Div(Class("article-tags"), H3(g.Text("Tags")), TagList(a.Tags))),
				Div(
					Class("author-bio"),
					IconGlyph("lucide:user", ""),
					Div(
						H3(g.Text(a.Author)),
						P(g.Text("Digital specialist writing about what we learn building for our clients.")),
					),
				),
			),
		),

		g.If(len(related) > 0, Section(
			Class("section"),
			ID("related"),
			Div(
				Class("container"),
				SectionHeading("Related Articles", ""),
				grid("grid-3", g.Map(related, func(r content.Article) g.Node {
					return ArticleCard(r, locale)
				})),
			),
		)),
	)
}
