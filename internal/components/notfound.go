package components

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func NotFoundPage() g.Node {
	return Div(
		Class("page"),
		Section(
			Class("missing-state"),
			Div(
				Class("container"),
				H1(g.Text("Page Not Found")),
				P(g.Text("The page you are looking for does not exist or has moved.")),
				A(Href("/"), Class("btn btn-primary"), g.Text("Back to Home")),
			),
		),
	)
}
