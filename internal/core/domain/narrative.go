package domain

import "time"

// SectionID identifies a canonical narrative section
type SectionID string

const (
	SectionFindings        SectionID = "findings"
	SectionAlarms          SectionID = "alarms"
	SectionDiagnostics     SectionID = "diagnostics"
	SectionRecommendations SectionID = "recommendations"
	SectionRaw             SectionID = "raw" // Fallback when no heading is recognized
)

// Title returns the display title of the section
func (id SectionID) Title() string {
	switch id {
	case SectionFindings:
		return "Findings & Observations"
	case SectionAlarms:
		return "Alarms & Anomalies"
	case SectionDiagnostics:
		return "Diagnostics"
	case SectionRecommendations:
		return "Recommendations"
	default:
		return "Summary & Insights"
	}
}

// Section is a named, contiguous part of a narrative
type Section struct {
	ID      SectionID `json:"id"`
	Title   string    `json:"title"`
	Content string    `json:"content"`
}

// TokenKind classifies a span of a line body
type TokenKind string

const (
	TokenPlainText     TokenKind = "plain_text"
	TokenBold          TokenKind = "bold"
	TokenMetric        TokenKind = "metric"
	TokenValue         TokenKind = "value"
	TokenFullTimestamp TokenKind = "full_timestamp"
	TokenTimeOnly      TokenKind = "time_only"
	TokenStatPhrase    TokenKind = "stat_phrase"
	TokenDateHeading   TokenKind = "date_heading"
)

// Token is a classified span of text.
// Text is always the verbatim source span; Display carries an optional
// presentation form (bold inner text, metric spelling).
type Token struct {
	Kind    TokenKind `json:"kind"`
	Text    string    `json:"text"`
	Display string    `json:"display,omitempty"`
}

// DecomposedLine is a single narrative line split into label, body and citations
type DecomposedLine struct {
	Label            *string  `json:"label"`
	IsTimestampLabel bool     `json:"is_timestamp_label"`
	Body             string   `json:"body"`
	Citations        []string `json:"citations"`

	// DateHeading is set when the whole line is a bare date heading.
	// Label, Body and Citations are empty in that case.
	DateHeading *Token `json:"date_heading,omitempty"`
}

// HasLabel reports whether a leading label was extracted
func (l *DecomposedLine) HasLabel() bool {
	return l.Label != nil
}

// Citation is a bracketed date/time reference, e.g. "[2025-09-11 02:00]"
type Citation struct {
	Raw  string  `json:"raw"`
	Date string  `json:"date"`
	Time *string `json:"time"`
}

// CitationArtifactKind determines how a citation cluster is presented
type CitationArtifactKind string

const (
	CitationSingle    CitationArtifactKind = "single"
	CitationCollapsed CitationArtifactKind = "collapsed"
)

// CitationArtifact is the presentation decision for a line's citation cluster
type CitationArtifact struct {
	Kind      CitationArtifactKind `json:"kind"`
	Label     string               `json:"label"`     // Bracket-stripped text (single) or first date (collapsed)
	Count     int                  `json:"count"`     // Number of citations behind the artifact
	Citations []string             `json:"citations"` // All original citations, in order
}

// TimelineEntry is a (date, time) pair cited in a narrative
type TimelineEntry struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// DayGroup is the set of distinct times cited for one date
type DayGroup struct {
	Date       string   `json:"date"`
	Times      []string `json:"times"` // Ascending, deduplicated
	RangeStart string   `json:"range_start"`
	RangeEnd   string   `json:"range_end"`
	Collapsed  bool     `json:"collapsed"` // Default only; toggles belong to the caller
}

// Range returns the display range, e.g. "09:00–13:00"
func (g DayGroup) Range() string {
	return g.RangeStart + "–" + g.RangeEnd
}

// AnnotatedLine is a decomposed line together with its classified body
type AnnotatedLine struct {
	DecomposedLine
	Tokens   []Token           `json:"tokens"`
	Citation *CitationArtifact `json:"citation,omitempty"`
}

// AnnotatedSection is a section with its annotated lines
type AnnotatedSection struct {
	Section
	Lines []AnnotatedLine `json:"lines"`
}

// Annotation is the full structured rendering of one narrative
type Annotation struct {
	Fingerprint  string             `json:"fingerprint,omitempty"`
	DirectAnswer *string            `json:"direct_answer"`
	Sections     []AnnotatedSection `json:"sections"`
	Timeline     []DayGroup         `json:"timeline"`

	// Evidence is attached per request when retrieval context was supplied.
	// It is never part of the cached annotation.
	Evidence *EvidenceTimeline `json:"evidence,omitempty"`
}

// IsFallback reports whether no heading was recognized in the narrative
func (a *Annotation) IsFallback() bool {
	return len(a.Sections) == 1 && a.Sections[0].ID == SectionRaw
}

// NarrativeRecord is an archived narrative with its annotation
type NarrativeRecord struct {
	ID          string           `json:"id"`
	Fingerprint string           `json:"fingerprint"`
	Query       string           `json:"query,omitempty"` // Question the narrative answers, if known
	Narrative   string           `json:"narrative"`
	Format      string           `json:"format"`
	Annotation  *Annotation      `json:"annotation"`
	Context     *EvidenceContext `json:"context,omitempty"` // Retrieval context supplied with the narrative
	CreatedBy   string           `json:"created_by,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}

// CollapseState holds per-date expand/collapse toggles owned by the caller.
// It is seeded from DayGroup defaults and never written back into them.
type CollapseState map[string]bool

// NewCollapseState seeds toggles from the computed defaults
func NewCollapseState(groups []DayGroup) CollapseState {
	state := make(CollapseState, len(groups))
	for _, g := range groups {
		state[g.Date] = g.Collapsed
	}
	return state
}

// IsCollapsed reports the current toggle for a date
func (s CollapseState) IsCollapsed(date string) bool {
	return s[date]
}

// Toggle flips the toggle for a date and returns the new value
func (s CollapseState) Toggle(date string) bool {
	s[date] = !s[date]
	return s[date]
}
