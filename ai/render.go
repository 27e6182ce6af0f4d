package ai

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// RenderMarkdown converts a model reply to HTML for the chat and insight panels.
// Raw HTML in the reply is escaped.
func RenderMarkdown(text string) string {
	if text == "" {
		return ""
	}
	// A parser carries state and cannot be reused across documents
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.NoEmptyLineBeforeBlock)
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank | html.SkipHTML,
	})
	return string(markdown.ToHTML([]byte(text), p, renderer))
}
