package annotator

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// A heading starts a line, may carry list/heading markers, and runs to the
// first colon or line break after its keyword. The keyword may carry a
// suffix, so "Causes:" and "Findings summary:" are headings too.
var sectionHeadingPattern = regexp.MustCompile(
	`(?i)(?:^|\n)[ \t]*(?:(?:#{1,6}|\*\*|\d+[.)]|-)[ \t]*)*\s*` +
		`(findings|observations|alarms|anomalies|diagnostics|cause|recommendations|actions)` +
		`[^:\n]*[:\n]`)

// sectionKeywords maps heading keywords to canonical section ids.
var sectionKeywords = map[string]domain.SectionID{
	"findings":        domain.SectionFindings,
	"observations":    domain.SectionFindings,
	"alarms":          domain.SectionAlarms,
	"anomalies":       domain.SectionAlarms,
	"spike":           domain.SectionAlarms,
	"diagnostics":     domain.SectionDiagnostics,
	"cause":           domain.SectionDiagnostics,
	"recommendations": domain.SectionRecommendations,
	"actions":         domain.SectionRecommendations,
}

// CanonicalSectionID maps a heading keyword to its section id.
func CanonicalSectionID(keyword string) (domain.SectionID, bool) {
	id, ok := sectionKeywords[strings.ToLower(strings.TrimSpace(keyword))]
	return id, ok
}

// SplitSections partitions a narrative into named sections.
// Content of a heading runs up to the next heading; sections sharing an id
// are joined with a line break in order of appearance. When no non-empty
// section is recognized a single raw section holds the whole narrative.
func SplitSections(narrative string) []domain.Section {
	matches := sectionHeadingPattern.FindAllStringSubmatchIndex(narrative, -1)

	var order []domain.SectionID
	contents := make(map[domain.SectionID]string)

	for i, m := range matches {
		id, ok := CanonicalSectionID(narrative[m[2]:m[3]])
		if !ok {
			continue
		}

		end := len(narrative)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}

		content := strings.TrimSpace(narrative[m[1]:end])
		if content == "" {
			continue
		}

		if existing, seen := contents[id]; seen {
			contents[id] = existing + "\n" + content
		} else {
			contents[id] = content
			order = append(order, id)
		}
	}

	if len(order) == 0 {
		return []domain.Section{{
			ID:      domain.SectionRaw,
			Title:   domain.SectionRaw.Title(),
			Content: narrative,
		}}
	}

	sections := make([]domain.Section, 0, len(order))
	for _, id := range order {
		sections = append(sections, domain.Section{
			ID:      id,
			Title:   id.Title(),
			Content: contents[id],
		})
	}
	return sections
}
