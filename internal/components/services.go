package components

import (
	"strings"

	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func ServicesPage(services []content.Service, faqs []content.FAQ) g.Node {
	return Div(
		Class("page"),
		PageHero("Our Digital Services", "We provide the best offers on our services. Comprehensive digital solutions to grow your business online."),

		Section(
			Class("section"),
			ID("services"),
			Div(
				Class("container"),
				SectionHeading("What We Offer", "From strategy to execution, we provide end-to-end digital services."),
				grid("grid-3", g.Map(services, ServiceCard)),
			),
		),

		g.If(len(faqs) > 0, Section(
			Class("section"),
			ID("faqs"),
			Div(
				Class("container"),
				SectionHeading("Frequently Asked Questions", "Have questions about our services? Here are some of the most common questions we receive."),
				FAQList(faqs),
			),
		)),

		callToAction("Ready to Get Started?"),
	)
}

func ServiceDetailPage(s content.Service, related []content.Service, testimonials []content.Testimonial) g.Node {
	return Div(
		Class("page"),
		Section(
			Class("page-hero detail"),
			g.Attr("data-id", s.ID),
			Div(
				Class("container detail-grid"),
				Div(
					BackLink("/services", "Back to Services"),
					Div(Class("detail-title"), ServiceIcon(s.Icon), H1(g.Text(s.Title))),
					P(Class("lead"), g.Text(s.Description)),
					Div(
						Class("hero-actions"),
						A(Href("/contact"), Class("btn btn-primary"), g.Text("Get Started")),
						A(Href("/portfolio"), Class("btn btn-outline"), g.Text("View Examples")),
					),
				),
				g.If(s.Image != "", Img(Src(s.Image), Alt(s.Title))),
			),
		),

		Section(
			Class("section"),
			Div(
				Class("container"),
				SectionHeading("What's Included", "Our "+strings.ToLower(s.Title)+" service includes everything you need to achieve your digital goals."),
				Ul(
					Class("checklist features"),
					g.Group(g.Map(s.Features, func(f string) g.Node {
						return Li(IconGlyph(content.DefaultIcon.Glyph(), ""), g.Text(f))
					})),
				),
			),
		),

		g.If(len(testimonials) > 0, Section(
			Class("section"),
			ID("testimonials"),
			Div(
				Class("container"),
				SectionHeading("Client Success Stories", ""),
				grid("grid-3", g.Map(testimonials, TestimonialCard)),
			),
		)),

		g.If(len(related) > 0, Section(
			Class("section"),
			ID("related"),
			Div(
				Class("container"),
				SectionHeading("Other Services", ""),
				grid("grid-3", g.Map(related, ServiceCard)),
			),
		)),
	)
}
