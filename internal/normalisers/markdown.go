package normalisers

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

var (
	// underscoreBoldPattern matches __bold__ spans, rewritten to **bold**.
	underscoreBoldPattern = regexp.MustCompile(`__([^_\n]+)__`)

	// bulletPattern matches typographic bullets at line start.
	bulletPattern = regexp.MustCompile(`(?m)^([ \t]*)[•·▪‣][ \t]*`)
)

// MarkdownNormaliser handles Markdown narratives. It keeps the markup the
// annotator reads (headings, list markers, **bold**) and unifies variants.
type MarkdownNormaliser struct{}

func (n *MarkdownNormaliser) Normalise(content string, format string) string {
	content = cleanLines(content)
	content = underscoreBoldPattern.ReplaceAllString(content, "**$1**")
	content = bulletPattern.ReplaceAllString(content, "$1- ")
	return strings.TrimSpace(collapseBlankLines(content))
}

func (n *MarkdownNormaliser) SupportedTypes() []string {
	return []string{driven.FormatMarkdown, "text/x-markdown"}
}

func (n *MarkdownNormaliser) Priority() int {
	return 50
}
