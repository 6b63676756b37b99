package components

import (
	"fmt"
	"strings"

	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func IconGlyph(glyph, classes string) g.Node {
	return Span(
		Class(strings.TrimSpace("iconify inline-block "+classes)),
		g.Attr("data-icon", glyph),
		g.Attr("aria-hidden", "true"),
	)
}

// ServiceIcon draws a document icon name, falling back to the default icon.
func ServiceIcon(name string) g.Node {
	return IconGlyph(content.IconFor(name).Glyph(), "service-icon")
}

const maxRating = 5

func RatingStars(rating int) g.Node {
	rating = max(0, min(rating, maxRating))
	stars := make([]g.Node, rating)
	for i := range stars {
		stars[i] = IconGlyph("lucide:star", "star")
	}
	return Div(
		Class("rating"),
		g.Attr("aria-label", fmt.Sprintf("%d out of %d stars", rating, maxRating)),
		g.Group(stars),
	)
}

func SectionHeading(title, lead string) g.Node {
	return Div(
		Class("section-heading"),
		H2(g.Text(title)),
		g.If(lead != "", P(g.Text(lead))),
	)
}

func PageHero(title, lead string) g.Node {
	return Section(
		Class("page-hero"),
		Div(
			Class("container"),
			H1(g.Text(title)),
			g.If(lead != "", P(Class("lead"), g.Text(lead))),
		),
	)
}

func TagList(tags []string) g.Node {
	if len(tags) == 0 {
		return nil
	}
	return Ul(
		Class("tags"),
		g.Group(g.Map(tags, func(tag string) g.Node {
			return Li(Class("tag"), g.Text(tag))
		})),
	)
}

func BackLink(href, label string) g.Node {
	return A(Href(href), Class("btn btn-outline back-link"), IconGlyph("lucide:arrow-left", ""), g.Text(label))
}

// MissingState is shown in place of a detail page whose record does not exist.
func MissingState(title, backHref, backLabel string) g.Node {
	return Section(
		Class("missing-state"),
		Div(
			Class("container"),
			H1(g.Text(title)),
			A(Href(backHref), Class("btn btn-primary"), g.Text(backLabel)),
		),
	)
}

func EmptyState(message string) g.Node {
	return Div(
		Class("empty-state"),
		IconGlyph("lucide:inbox", ""),
		P(g.Text(message)),
	)
}

func ServiceCard(s content.Service) g.Node {
	features := s.Features
	if len(features) > 3 {
		features = features[:3]
	}
	return Div(
		Class("card service-card"),
		g.Attr("data-id", s.ID),
		A(
			Href("/services/"+s.ID),
			g.If(s.Image != "", Img(Src(s.Image), Alt(s.Title), g.Attr("loading", "lazy"))),
			Div(
				Class("card-body"),
				ServiceIcon(s.Icon),
				H3(g.Text(s.Title)),
				P(g.Text(s.Summary)),
				g.If(len(features) > 0, Ul(
					Class("checklist"),
					g.Group(g.Map(features, func(f string) g.Node {
						return Li(IconGlyph(content.DefaultIcon.Glyph(), ""), g.Text(f))
					})),
				)),
			),
		),
	)
}

func ProjectCard(p content.Project) g.Node {
	tags := p.Tags
	if len(tags) > 3 {
		tags = tags[:3]
	}
	return Div(
		Class("card project-card"),
		g.Attr("data-id", p.ID),
		g.Attr("data-category", p.Category),
		A(
			Href("/portfolio/"+p.ID),
			g.If(p.Image != "", Img(Src(p.Image), Alt(p.Title), g.Attr("loading", "lazy"))),
			Div(
				Class("card-body"),
				Span(Class("badge"), g.Text(p.Category)),
				H3(g.Text(p.Title)),
				P(g.Text(p.Description)),
				TagList(tags),
			),
		),
	)
}

func ArticleMeta(a content.Article, locale string) g.Node {
	return Div(
		Class("article-meta"),
		Span(IconGlyph("lucide:user", ""), g.Text(a.Author)),
		Span(IconGlyph("lucide:calendar", ""),
			g.El("time", g.Attr("datetime", a.PublishedAt().Format("2006-01-02")), g.Text(content.FormatDate(a.PublishedAt(), locale))),
		),
		Span(Class("read-time"), IconGlyph("lucide:clock", ""), g.Textf("%d min read", a.ReadTime())),
	)
}

func ArticleCard(a content.Article, locale string) g.Node {
	return Div(
		Class("card article-card"),
		g.Attr("data-id", a.ID),
		A(
			Href("/blog/"+a.ID),
			g.If(a.Image != "", Img(Src(a.Image), Alt(a.Title), g.Attr("loading", "lazy"))),
			Div(
				Class("card-body"),
				Span(Class("badge"), g.Text(a.Category)),
				H3(g.Text(a.Title)),
				P(g.Text(a.Excerpt)),
				ArticleMeta(a, locale),
			),
		),
	)
}

func TestimonialCard(t content.Testimonial) g.Node {
	return Div(
		Class("card testimonial-card"),
		g.Attr("data-id", t.ID),
		RatingStars(t.Rating),
		g.El("blockquote", P(g.Text(t.Content))),
		Div(
			Class("testimonial-author"),
			g.If(t.Image != "", Img(Src(t.Image), Alt(t.Author))),
			Div(
				Strong(g.Text(t.Author)),
				Span(g.Text(t.Role)),
			),
		),
	)
}

func TeamCard(m content.TeamMember) g.Node {
	return Div(
		Class("card team-card"),
		g.Attr("data-id", m.ID),
		g.If(m.Image != "", Img(Src(m.Image), Alt(m.Name))),
		H3(g.Text(m.Name)),
		P(g.Text(m.Role)),
		g.If(m.Portfolio != "",
			A(Href(m.Portfolio), g.Attr("target", "_blank"), Rel("noopener noreferrer"), g.Text("View Portfolio")),
		),
	)
}

func HighlightCard(h content.Highlight) g.Node {
	return Div(
		Class("card highlight-card"),
		g.If(h.Icon != "", ServiceIcon(h.Icon)),
		H3(g.Text(h.Title)),
		P(g.Text(h.Description)),
	)
}

func FAQList(faqs []content.FAQ) g.Node {
	return Div(
		Class("faq-list"),
		g.Group(g.Map(faqs, func(f content.FAQ) g.Node {
			return Div(
				Class("faq"),
				ID(f.ID),
				H3(g.Text(f.Question)),
				P(g.Text(f.Answer)),
			)
		})),
	)
}

func grid(class string, nodes []g.Node) g.Node {
	return Div(Class("grid "+class), g.Group(nodes))
}
