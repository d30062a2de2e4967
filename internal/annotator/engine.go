package annotator

import (
	"strings"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.NarrativeAnnotator = (*Engine)(nil)

const (
	// DefaultCollapseThreshold is the number of distinct times at which a
	// day group starts out collapsed.
	DefaultCollapseThreshold = 4

	// DefaultMaxLabelLength bounds generic leading labels (exclusive).
	DefaultMaxLabelLength = 60
)

// Config holds the tunable constants of the engine.
type Config struct {
	// CollapseThreshold is the minimum number of times for a collapsed day group
	CollapseThreshold int

	// MaxLabelLength is the exclusive upper bound for a generic label
	MaxLabelLength int
}

// DefaultConfig returns the constants the narrative format was built around.
func DefaultConfig() Config {
	return Config{
		CollapseThreshold: DefaultCollapseThreshold,
		MaxLabelLength:    DefaultMaxLabelLength,
	}
}

// Engine turns narratives into annotated structures.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	config Config
}

// New creates an engine. Non-positive values fall back to defaults.
func New(cfg Config) *Engine {
	if cfg.CollapseThreshold <= 0 {
		cfg.CollapseThreshold = DefaultCollapseThreshold
	}
	if cfg.MaxLabelLength <= 0 {
		cfg.MaxLabelLength = DefaultMaxLabelLength
	}
	return &Engine{config: cfg}
}

// Config returns the effective engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Annotate runs the full pipeline over a narrative.
func (e *Engine) Annotate(narrative string) *domain.Annotation {
	annotation := &domain.Annotation{
		Timeline: e.BuildTimeline(narrative),
	}

	if answer, ok := ExtractDirectAnswer(narrative); ok {
		annotation.DirectAnswer = &answer
	}

	sections := SplitSections(narrative)
	annotation.Sections = make([]domain.AnnotatedSection, 0, len(sections))
	for _, section := range sections {
		annotation.Sections = append(annotation.Sections, domain.AnnotatedSection{
			Section: section,
			Lines:   e.annotateLines(section.Content),
		})
	}

	return annotation
}

func (e *Engine) annotateLines(content string) []domain.AnnotatedLine {
	lines := make([]domain.AnnotatedLine, 0)
	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		decomposed := e.DecomposeLine(line)
		annotated := domain.AnnotatedLine{DecomposedLine: decomposed}
		if decomposed.DateHeading != nil {
			annotated.Tokens = []domain.Token{*decomposed.DateHeading}
		} else {
			annotated.Tokens = ClassifyTokens(decomposed.Body)
			annotated.Citation = PresentCitations(decomposed.Citations)
		}
		lines = append(lines, annotated)
	}
	return lines
}

// SplitSections partitions a narrative into named sections.
func (e *Engine) SplitSections(narrative string) []domain.Section {
	return SplitSections(narrative)
}

// ExtractDirectAnswer returns the "0) Direct Answer" block, if present.
func (e *Engine) ExtractDirectAnswer(narrative string) (string, bool) {
	return ExtractDirectAnswer(narrative)
}

// ClassifyTokens splits a body into classified tokens.
func (e *Engine) ClassifyTokens(body string) []domain.Token {
	return ClassifyTokens(body)
}

// PresentCitations decides how a citation cluster is shown.
func (e *Engine) PresentCitations(citations []string) *domain.CitationArtifact {
	return PresentCitations(citations)
}

// BuildEvidenceTimeline orders retrieval evidence for presentation.
func (e *Engine) BuildEvidenceTimeline(ec *domain.EvidenceContext) *domain.EvidenceTimeline {
	return BuildEvidenceTimeline(ec)
}

var defaultEngine = New(DefaultConfig())

// DecomposeLine decomposes a line using the default configuration.
func DecomposeLine(line string) domain.DecomposedLine {
	return defaultEngine.DecomposeLine(line)
}

// BuildTimeline groups timeline citations using the default configuration.
func BuildTimeline(narrative string) []domain.DayGroup {
	return defaultEngine.BuildTimeline(narrative)
}

// Annotate annotates a narrative using the default configuration.
func Annotate(narrative string) *domain.Annotation {
	return defaultEngine.Annotate(narrative)
}
