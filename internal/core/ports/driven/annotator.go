package driven

import "github.com/custodia-labs/insight-core/internal/core/domain"

// NarrativeAnnotator turns a narrative into structured data.
// Implementations are pure: identical input always yields identical output.
type NarrativeAnnotator interface {
	// Annotate runs the full pipeline: direct answer, sections, lines, timeline
	Annotate(narrative string) *domain.Annotation

	// SplitSections partitions a narrative into named sections
	SplitSections(narrative string) []domain.Section

	// ExtractDirectAnswer returns the direct-answer block; false when absent
	ExtractDirectAnswer(narrative string) (string, bool)

	// DecomposeLine splits a line into label, body and citations
	DecomposeLine(line string) domain.DecomposedLine

	// ClassifyTokens partitions a body into classified tokens
	ClassifyTokens(body string) []domain.Token

	// PresentCitations decides how a citation cluster is shown (nil for none)
	PresentCitations(citations []string) *domain.CitationArtifact

	// BuildTimeline groups timeline citations by date
	BuildTimeline(narrative string) []domain.DayGroup

	// BuildEvidenceTimeline orders retrieval evidence by date and hour (nil for no context)
	BuildEvidenceTimeline(ec *domain.EvidenceContext) *domain.EvidenceTimeline
}
