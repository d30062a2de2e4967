package annotator

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// inlineKinds binds each capture group of inlinePattern to a token kind.
// The order is the precedence order for matches starting at the same offset.
var inlineKinds = []domain.TokenKind{
	domain.TokenBold,
	domain.TokenFullTimestamp,
	domain.TokenTimeOnly,
	domain.TokenMetric,
	domain.TokenValue,
	domain.TokenStatPhrase,
}

var inlinePattern = regexp.MustCompile(buildInlinePattern(domain.MetricTermsByLength()))

// buildInlinePattern assembles the combined leftmost-first pattern. Each
// alternative is a single capture group; everything inside is non-capturing.
func buildInlinePattern(terms []string) string {
	var wordTerms, symbolTerms []string
	for _, term := range terms {
		quoted := regexp.QuoteMeta(term)
		if endsWithWordChar(term) {
			wordTerms = append(wordTerms, quoted)
		} else {
			symbolTerms = append(symbolTerms, quoted)
		}
	}

	metric := `\b(?:` + strings.Join(wordTerms, "|") + `)\b`
	if len(symbolTerms) > 0 {
		metric = `\b(?:` + strings.Join(symbolTerms, "|") + `)|` + metric
	}

	alternatives := []string{
		`(\*\*.*?\*\*)`,
		`(\d{4}-\d{2}-\d{2} \d{2}:\d{2})`,
		`(\b\d{1,2}:\d{2}\b)`,
		`(` + metric + `)`,
		`((?:≈|~|>=?|<=?|approx\s)?\d+(?:[-–]\d+)?(?:\.\d+)?(?:\s?(?:ppm|lux|°C|C)\b|\s?(?:%|µg/m³))?)`,
		`(\b(?:median|mean|peak|min|max|score|val)\s+\d+(?:\.\d+)?)`,
	}
	return `(?i)` + strings.Join(alternatives, "|")
}

func endsWithWordChar(term string) bool {
	if term == "" {
		return false
	}
	c := term[len(term)-1]
	return c == '_' || isDigit(c) || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// ClassifyTokens partitions a body into classified tokens. Concatenating the
// Text of every token reproduces the body exactly.
func ClassifyTokens(body string) []domain.Token {
	tokens := make([]domain.Token, 0)
	last := 0

	for _, m := range inlinePattern.FindAllStringSubmatchIndex(body, -1) {
		start, end := m[0], m[1]
		if start == end {
			continue
		}
		if start > last {
			tokens = append(tokens, domain.Token{Kind: domain.TokenPlainText, Text: body[last:start]})
		}
		tokens = append(tokens, newToken(matchedKind(m), body[start:end]))
		last = end
	}

	if last < len(body) {
		tokens = append(tokens, domain.Token{Kind: domain.TokenPlainText, Text: body[last:]})
	}
	return tokens
}

func matchedKind(m []int) domain.TokenKind {
	for i, kind := range inlineKinds {
		if m[2+2*i] >= 0 {
			return kind
		}
	}
	return domain.TokenPlainText
}

func newToken(kind domain.TokenKind, text string) domain.Token {
	token := domain.Token{Kind: kind, Text: text}
	switch kind {
	case domain.TokenBold:
		token.Display = text[2 : len(text)-2]
	case domain.TokenMetric:
		if metric, ok := domain.LookupMetric(text); ok {
			token.Display = metric.Display
		}
	case domain.TokenStatPhrase:
		token.Display = strings.Join(strings.Fields(text), " ")
	}
	return token
}

// JoinTokens concatenates token texts, the inverse of ClassifyTokens.
func JoinTokens(tokens []domain.Token) string {
	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.Text)
	}
	return b.String()
}
