package components

import (
	"agencysite/internal/contact"
	"agencysite/internal/content"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// ContactFAQCount is how many FAQs the contact page shows.
const ContactFAQCount = 4

// ContactForm is the state of the inquiry form for one render.
type ContactForm struct {
	Values    contact.Inquiry
	Errors    contact.ValidationErrors
	Reference string
	Limited   bool
}

func formField(id, label string, errs contact.ValidationErrors, control g.Node) g.Node {
	msg := errs.Field(id)
	class := "field"
	if msg != "" {
		class = "field has-error"
	}
	return Div(
		Class(class),
		Label(g.Attr("for", id), g.Text(label)),
		control,
		g.If(msg != "", P(Class("field-error"), ID(id+"-error"), g.Text(msg))),
	)
}

func inquiryForm(form ContactForm, projects []string) g.Node {
	v := form.Values
	return g.El("form",
		Method("post"),
		Action("/contact"),
		Class("contact-form"),
		g.If(form.Limited, P(Class("form-alert"), g.Text("You have sent several messages in a short time. Please wait a moment and try again."))),
		formField("name", "Full Name", form.Errors,
			Input(Type("text"), ID("name"), Name("name"), Value(v.Name), Placeholder("Your full name"), Required()),
		),
		formField("email", "Email Address", form.Errors,
			Input(Type("email"), ID("email"), Name("email"), Value(v.Email), Placeholder("you@example.com"), Required()),
		),
		formField("phone", "Phone Number", form.Errors,
			Input(Type("tel"), ID("phone"), Name("phone"), Value(v.Phone), Placeholder("+91 00000 00000")),
		),
		formField("project", "Project Type", form.Errors,
			Select(
				ID("project"),
				Name("project"),
				Option(Value(""), g.Text("Select a service")),
				g.Group(g.Map(projects, func(p string) g.Node {
					return Option(Value(p), g.If(p == v.Project, Selected()), g.Text(p))
				})),
			),
		),
		formField("subject", "Subject", form.Errors,
			Input(Type("text"), ID("subject"), Name("subject"), Value(v.Subject), Placeholder("How can we help?"), Required()),
		),
		formField("message", "Message", form.Errors,
			Textarea(ID("message"), Name("message"), g.Attr("rows", "6"), Placeholder("Tell us about your project"), Required(), g.Text(v.Message)),
		),
		Button(Type("submit"), Class("btn btn-primary"), IconGlyph("lucide:send", ""), g.Text("Send Message")),
	)
}

func thankYou(reference string) g.Node {
	return Div(
		Class("thank-you"),
		IconGlyph(content.DefaultIcon.Glyph(), "success"),
		H3(g.Text("Thank you!")),
		P(g.Text("Your message has been sent. We'll get back to you within 24 hours.")),
		P(Class("reference"), g.Text("Reference: "), Strong(g.Text(reference))),
	)
}

func ContactPage(info content.Contact, faqs []content.FAQ, projects []string, form ContactForm) g.Node {
	if len(faqs) > ContactFAQCount {
		faqs = faqs[:ContactFAQCount]
	}

	var panel g.Node
	if form.Reference != "" {
		panel = thankYou(form.Reference)
	} else {
		panel = inquiryForm(form, projects)
	}

	return Div(
		Class("page"),
		PageHero("Get In Touch", info.Description),

		Section(
			Class("section"),
			Div(
				Class("container grid grid-2"),
				Div(
					Class("card"),
					H2(g.Text("Send Your Message")),
					panel,
				),
				Div(
					Class("contact-info"),
					H2(g.Text("Contact Information")),
					P(g.Text("We're here to help bring your digital vision to life. Reach out through any of the channels below.")),
					g.If(info.Address != "", Div(H3(g.Text("Address")), P(g.Text(info.Address)))),
					g.If(info.Phone != "", Div(H3(g.Text("Phone")), A(Href("tel:"+info.Phone), g.Text(info.Phone)))),
					g.If(info.Email != "", Div(H3(g.Text("Email")), A(Href("mailto:"+info.Email), g.Text(info.Email)))),
					Div(H3(g.Text("Business Hours")), P(g.Text("Mon - Sat: 10:00 AM - 7:00 PM"))),
				),
			),
		),

		g.If(len(faqs) > 0, Section(
			Class("section"),
			ID("faqs"),
			Div(
				Class("container"),
				SectionHeading("Common Questions", "Find answers to frequently asked questions about our services and process"),
				FAQList(faqs),
			),
		)),
	)
}
