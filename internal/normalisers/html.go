package normalisers

import (
	"strings"

	"golang.org/x/net/html"

	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// HTMLNormaliser converts HTML narratives into the Markdown-like line
// structure the annotator reads: headings become "#" lines, list items
// become "- " lines and strong/b become **bold**.
type HTMLNormaliser struct{}

func (n *HTMLNormaliser) Normalise(content string, format string) string {
	var out strings.Builder
	z := html.NewTokenizer(strings.NewReader(content))
	skip := 0

	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// io.EOF, or malformed input: keep what was converted so far
			return finishHTML(out.String())

		case html.TextToken:
			if skip == 0 {
				out.WriteString(strings.ReplaceAll(string(z.Text()), "\n", " "))
			}

		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if tt == html.StartTagToken {
					skip++
				}
				continue
			}
			out.WriteString(openTag(tag))

		case html.EndTagToken:
			name, _ := z.TagName()
			tag := string(name)
			if tag == "script" || tag == "style" {
				if skip > 0 {
					skip--
				}
				continue
			}
			out.WriteString(closeTag(tag))
		}
	}
}

func (n *HTMLNormaliser) SupportedTypes() []string {
	return []string{driven.FormatHTML, "application/xhtml+xml"}
}

func (n *HTMLNormaliser) Priority() int {
	return 50
}

func openTag(tag string) string {
	switch tag {
	case "strong", "b":
		return "**"
	case "br":
		return "\n"
	case "li":
		return "\n- "
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return "\n" + strings.Repeat("#", int(tag[1]-'0')) + " "
	case "p", "div", "ul", "ol", "table", "tr", "section", "article":
		return "\n"
	case "td", "th":
		return " "
	}
	return ""
}

func closeTag(tag string) string {
	switch tag {
	case "strong", "b":
		return "**"
	case "p", "div", "h1", "h2", "h3", "h4", "h5", "h6", "ul", "ol", "table", "section", "article":
		return "\n"
	}
	return ""
}

// finishHTML collapses inline whitespace and blank lines.
func finishHTML(text string) string {
	lines := strings.Split(cleanLines(text), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(collapseBlankLines(strings.Join(lines, "\n")))
}
