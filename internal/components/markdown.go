package components

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// Raw HTML in article bodies is dropped since the renderer is not in unsafe mode.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
	),
	goldmark.WithRendererOptions(
		gmhtml.WithHardWraps(),
	),
)

// MarkdownBody renders an article body. Lines become paragraphs or breaks,
// and the usual markdown syntax is honoured.
func MarkdownBody(src string) g.Node {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return Div(Class("prose"), P(g.Text(src)))
	}
	return Div(Class("prose"), g.Raw(buf.String()))
}
