package annotator

import (
	"regexp"
	"strings"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// TimeRecordsLabel labels a collapsed citation cluster without a parseable date.
const TimeRecordsLabel = "Time Records"

var (
	citationDatePattern = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	citationTimePattern = regexp.MustCompile(`\b\d{2}:\d{2}\b`)
	bracketStripper     = strings.NewReplacer("[", "", "]", "")
)

// ParseCitation derives date and time from a citation such as
// "[2025-09-11 02:00]". For dash-joined pairs the first bracket wins.
func ParseCitation(raw string) domain.Citation {
	citation := domain.Citation{Raw: raw}

	first := raw
	if i := strings.Index(raw, "]"); i >= 0 {
		first = raw[:i]
	}

	citation.Date = citationDatePattern.FindString(first)
	if t := citationTimePattern.FindString(first); t != "" {
		citation.Time = &t
	}
	return citation
}

// PresentCitations decides how a line's citation cluster is presented.
// No citations yield nil; one yields a single reference; two or more
// collapse behind the first date while keeping every citation.
func PresentCitations(citations []string) *domain.CitationArtifact {
	switch len(citations) {
	case 0:
		return nil
	case 1:
		return &domain.CitationArtifact{
			Kind:      domain.CitationSingle,
			Label:     strings.TrimSpace(bracketStripper.Replace(citations[0])),
			Count:     1,
			Citations: []string{citations[0]},
		}
	}

	label := TimeRecordsLabel
	if date := ParseCitation(citations[0]).Date; date != "" {
		label = date
	}

	all := make([]string, len(citations))
	copy(all, citations)

	return &domain.CitationArtifact{
		Kind:      domain.CitationCollapsed,
		Label:     label,
		Count:     len(citations),
		Citations: all,
	}
}
