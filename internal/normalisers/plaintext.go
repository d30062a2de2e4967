package normalisers

import (
	"strings"

	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// PlaintextNormaliser handles plain text narratives.
type PlaintextNormaliser struct{}

func (n *PlaintextNormaliser) Normalise(content string, format string) string {
	return strings.TrimSpace(cleanLines(content))
}

func (n *PlaintextNormaliser) SupportedTypes() []string {
	return []string{driven.FormatPlain, "text/*"}
}

func (n *PlaintextNormaliser) Priority() int {
	return 1 // Fallback for any text format
}

var invisibleReplacer = strings.NewReplacer(
	"\r\n", "\n",
	"\r", "\n",
	"\u00a0", " ", // non-breaking space
	"\u200b", "", // zero-width space
	"\ufeff", "", // byte order mark
)

// cleanLines unifies line endings, drops invisible characters and trailing
// whitespace on every line. Leading indentation is kept.
func cleanLines(content string) string {
	lines := strings.Split(invisibleReplacer.Replace(content), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

// collapseBlankLines keeps at most one empty line between paragraphs.
func collapseBlankLines(content string) string {
	for strings.Contains(content, "\n\n\n") {
		content = strings.ReplaceAll(content, "\n\n\n", "\n\n")
	}
	return content
}
