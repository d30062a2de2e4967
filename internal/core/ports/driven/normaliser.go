package driven

// Narrative formats accepted by the normalisers
const (
	FormatPlain    = "text/plain"
	FormatMarkdown = "text/markdown"
	FormatHTML     = "text/html"
)

// Normaliser cleans a raw narrative before annotation.
// It transforms format-specific markup into the line-oriented text the
// annotator expects.
type Normaliser interface {
	// Normalise transforms raw content into normalized text.
	// The format (a MIME type) helps determine the appropriate processing.
	Normalise(content string, format string) string

	// SupportedTypes returns MIME types this normaliser handles.
	// Can include wildcards like "text/*" or specific types like "text/markdown".
	SupportedTypes() []string

	// Priority returns the normaliser priority (higher = more specific).
	// Priority ranges:
	//   50-89:  Format-specific (Markdown, HTML)
	//   1-9:    Fallback (plain text)
	Priority() int
}

// NormaliserRegistry manages narrative normalisers.
// When multiple normalisers match a format, the highest priority one is used.
type NormaliserRegistry interface {
	// Get retrieves the best-matching normaliser for a format.
	// Returns nil if no normaliser is registered for the format.
	Get(format string) Normaliser

	// GetAll retrieves all normalisers that match a format, sorted by priority (highest first).
	GetAll(format string) []Normaliser

	// Register registers a normaliser.
	Register(normaliser Normaliser)

	// List returns all registered formats.
	List() []string
}
