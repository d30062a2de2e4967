package driving

import (
	"context"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// AnnotateRequest carries a narrative to annotate, optionally with the
// retrieval context it was produced from. The upstream response envelope
// (llm_answer, parsed_data, evidence, processing_time) is accepted as is.
type AnnotateRequest struct {
	Narrative string `json:"narrative"`
	LLMAnswer string `json:"llm_answer,omitempty"`                     // Used when narrative is empty
	Format    string `json:"format,omitempty" example:"text/markdown"` // MIME type; defaults to text/markdown

	domain.EvidenceContext
}

// ArchiveRequest carries a narrative to annotate and store
type ArchiveRequest struct {
	AnnotateRequest
	Query string `json:"query,omitempty"` // Question the narrative answers
}

// NarrativeList is a page of archived narratives
type NarrativeList struct {
	Narratives []*domain.NarrativeRecord `json:"narratives"`
	Total      int                       `json:"total"`
	Limit      int                       `json:"limit"`
	Offset     int                       `json:"offset"`
}

// NarrativeService handles narrative annotation and the narrative archive
type NarrativeService interface {
	// Annotate runs the full annotation pipeline (cached by narrative fingerprint)
	Annotate(ctx context.Context, req AnnotateRequest) (*domain.Annotation, error)

	// SplitSections partitions a narrative into named sections
	SplitSections(ctx context.Context, req AnnotateRequest) ([]domain.Section, error)

	// DirectAnswer extracts the direct-answer block; nil when absent
	DirectAnswer(ctx context.Context, req AnnotateRequest) (*string, error)

	// Timeline builds the grouped chronological index of cited times
	Timeline(ctx context.Context, req AnnotateRequest) ([]domain.DayGroup, error)

	// EvidenceTimeline orders retrieval evidence by date and hour and formats the hour window
	EvidenceTimeline(ctx context.Context, ec domain.EvidenceContext) (*domain.EvidenceTimeline, error)

	// DecomposeLine splits a single line into label, body and citations
	DecomposeLine(ctx context.Context, line string) (*domain.DecomposedLine, error)

	// ClassifyTokens partitions a body into classified tokens
	ClassifyTokens(ctx context.Context, body string) ([]domain.Token, error)

	// PresentCitations decides how a citation cluster is shown (nil for none)
	PresentCitations(ctx context.Context, citations []string) (*domain.CitationArtifact, error)

	// Archive annotates a narrative and stores it
	Archive(ctx context.Context, createdBy string, req ArchiveRequest) (*domain.NarrativeRecord, error)

	// Get retrieves an archived narrative
	Get(ctx context.Context, id string) (*domain.NarrativeRecord, error)

	// List lists archived narratives, newest first
	List(ctx context.Context, limit, offset int) (*NarrativeList, error)

	// Delete removes an archived narrative
	Delete(ctx context.Context, id string) error
}
