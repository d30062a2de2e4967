package annotator

import (
	"regexp"
	"strings"
)

var (
	directAnswerPattern = regexp.MustCompile(
		`(?i)(?:^|\n)[ \t]*(?:#{1,6}[ \t]*|\*\*)?0\)[ \t]*direct answer[ \t]*(?:\*\*)?[ \t]*:?(?:\*\*)?`)

	// numberedHeadingPattern matches the start of the next "<n>)" block.
	numberedHeadingPattern = regexp.MustCompile(`\n[ \t]*(?:#{1,6}[ \t]*|\*\*)?\d+\)`)
)

// ExtractDirectAnswer returns the trimmed block following a "0) Direct Answer"
// heading, up to the next numbered heading. The bool is false when the
// narrative has no such heading, which is the common case.
func ExtractDirectAnswer(narrative string) (string, bool) {
	loc := directAnswerPattern.FindStringIndex(narrative)
	if loc == nil {
		return "", false
	}

	rest := narrative[loc[1]:]
	if next := numberedHeadingPattern.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}

	return strings.TrimSpace(rest), true
}
