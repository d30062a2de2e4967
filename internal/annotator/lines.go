package annotator

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

var (
	listMarkerPattern  = regexp.MustCompile(`^(?:[*-]|\d+[.)])\s+`)
	dateHeadingPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	headingNoise       = strings.NewReplacer("*", "", "_", "", ":", "")

	// trailingCitationsPattern matches a run of bracketed citations (optionally
	// dash-joined pairs) separated by commas or spaces, closing the line.
	trailingCitationsPattern = regexp.MustCompile(
		`((?:\[[\d\- :]+\](?:-\[?[\d\- :]+\])?(?:,\s*|\s+)*)+)[.\s]*$`)
	citationPattern = regexp.MustCompile(`\[[\d\- :]+\](?:-\[?[\d\- :]+\])?`)

	strictTimestampLabelPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2} \d{2}:\d{2})\**(?:\s*:|\s+|$)`)
	rangeTimestampLabelPattern  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}.*?\d{2}:\d{2})\**:`)
)

// maxDateHeadingLength bounds a cleaned line that still counts as a date heading.
const maxDateHeadingLength = 15

// DecomposeLine splits a narrative line into label, body and trailing citations.
// Lines that match no structure degrade to a bare body.
func (e *Engine) DecomposeLine(line string) domain.DecomposedLine {
	clean := stripListMarker(strings.TrimSpace(line))

	if heading, ok := dateHeading(clean); ok {
		return domain.DecomposedLine{
			Citations:   []string{},
			DateHeading: &domain.Token{Kind: domain.TokenDateHeading, Text: heading},
		}
	}

	content, citations := extractTrailingCitations(clean)
	decomposed := domain.DecomposedLine{Citations: citations}

	if label, rest, ok := matchTimestampLabel(content); ok {
		decomposed.Label = &label
		decomposed.IsTimestampLabel = true
		content = rest
	} else if label, rest, ok := matchGenericLabel(content, e.config.MaxLabelLength); ok {
		decomposed.Label = &label
		content = rest
	}

	decomposed.Body = content
	return decomposed
}

// stripListMarker removes one leading list marker and a leading bold marker.
func stripListMarker(line string) string {
	if loc := listMarkerPattern.FindStringIndex(line); loc != nil {
		line = line[loc[1]:]
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "**"))
}

func dateHeading(line string) (string, bool) {
	cleaned := strings.TrimSpace(headingNoise.Replace(line))
	if !dateHeadingPattern.MatchString(cleaned) || utf8.RuneCountInString(cleaned) >= maxDateHeadingLength {
		return "", false
	}
	return cleaned, true
}

// extractTrailingCitations splits off the citation cluster ending the line.
func extractTrailingCitations(line string) (string, []string) {
	loc := trailingCitationsPattern.FindStringSubmatchIndex(line)
	if loc == nil {
		return line, []string{}
	}

	citations := citationPattern.FindAllString(line[loc[2]:loc[3]], -1)
	if citations == nil {
		citations = []string{}
	}

	content := strings.TrimSpace(line[:loc[0]])
	if strings.HasSuffix(content, ".") || strings.HasSuffix(content, ",") {
		content = strings.TrimSpace(content[:len(content)-1])
	}
	return content, citations
}

// matchTimestampLabel tries the strict timestamp label, then the range form.
func matchTimestampLabel(content string) (string, string, bool) {
	if m := strictTimestampLabelPattern.FindStringSubmatchIndex(content); m != nil {
		return content[m[2]:m[3]], strings.TrimSpace(content[m[1]:]), true
	}
	if m := rangeTimestampLabelPattern.FindStringSubmatchIndex(content); m != nil {
		label := strings.ReplaceAll(content[m[2]:m[3]], "**", "")
		return label, strings.TrimSpace(content[m[1]:]), true
	}
	return "", "", false
}

// matchGenericLabel scans a leading "Label:" prefix. A colon between two
// digits belongs to a time and does not end the label; bold markers may sit
// between the label and its colon.
func matchGenericLabel(content string, maxLength int) (string, string, bool) {
	for i := 0; i < len(content); i++ {
		c := content[i]
		switch {
		case c == ':':
			if i > 0 && isDigit(content[i-1]) && i+1 < len(content) && isDigit(content[i+1]) {
				continue
			}
			return finishLabel(content[:i], content[i+1:], maxLength)
		case c == '*':
			j := i
			for j < len(content) && content[j] == '*' {
				j++
			}
			if j < len(content) && content[j] == ':' {
				return finishLabel(content[:i], content[j+1:], maxLength)
			}
			return "", "", false
		case isLabelChar(c):
			continue
		default:
			return "", "", false
		}
	}
	return "", "", false
}

func finishLabel(raw, rest string, maxLength int) (string, string, bool) {
	label := strings.TrimSpace(raw)
	if label == "" || len(raw) >= maxLength {
		return "", "", false
	}
	return label, strings.TrimSpace(rest), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLabelChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', isDigit(c):
		return true
	}
	return strings.IndexByte(" ().-/&,", c) >= 0
}
