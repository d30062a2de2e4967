package normalisers

import (
	"sort"
	"strings"
	"sync"

	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.NormaliserRegistry = (*Registry)(nil)

// formatAliases maps short format names accepted from API callers to MIME types.
var formatAliases = map[string]string{
	"text":     driven.FormatPlain,
	"plain":    driven.FormatPlain,
	"markdown": driven.FormatMarkdown,
	"md":       driven.FormatMarkdown,
	"html":     driven.FormatHTML,
}

// Registry implements NormaliserRegistry with priority-based selection.
// When multiple normalisers match a narrative format, the highest priority one is used.
type Registry struct {
	mu          sync.RWMutex
	normalisers []driven.Normaliser
}

// NewRegistry creates a new normaliser registry.
func NewRegistry() *Registry {
	return &Registry{
		normalisers: make([]driven.Normaliser, 0),
	}
}

// DefaultRegistry creates a registry with the narrative normalisers registered.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&PlaintextNormaliser{})
	r.Register(&MarkdownNormaliser{})
	r.Register(&HTMLNormaliser{})
	return r
}

// Register registers a normaliser.
func (r *Registry) Register(normaliser driven.Normaliser) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.normalisers = append(r.normalisers, normaliser)
}

// Get retrieves the best-matching normaliser for a format.
// Returns nil if no normaliser is registered for the format.
func (r *Registry) Get(format string) driven.Normaliser {
	matches := r.GetAll(format)
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

// GetAll retrieves all normalisers that match a format, sorted by priority (highest first).
// Registration order breaks ties.
func (r *Registry) GetAll(format string) []driven.Normaliser {
	format = CanonicalFormat(format)

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []driven.Normaliser
	for _, n := range r.normalisers {
		if supportsFormat(n.SupportedTypes(), format) {
			matches = append(matches, n)
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Priority() > matches[j].Priority()
	})

	return matches
}

// List returns all registered formats, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	for _, n := range r.normalisers {
		for _, t := range n.SupportedTypes() {
			seen[t] = struct{}{}
		}
	}

	formats := make([]string, 0, len(seen))
	for t := range seen {
		formats = append(formats, t)
	}
	sort.Strings(formats)
	return formats
}

// CanonicalFormat lowercases a format, drops MIME parameters such as charset
// and resolves short aliases ("md", "html").
func CanonicalFormat(format string) string {
	format = strings.ToLower(strings.TrimSpace(format))
	if idx := strings.IndexByte(format, ';'); idx != -1 {
		format = strings.TrimSpace(format[:idx])
	}
	if mime, ok := formatAliases[format]; ok {
		return mime
	}
	return format
}

// supportsFormat reports whether a canonical format is covered by the
// supported list. "text/*" and "*/*" wildcards are honoured.
func supportsFormat(supported []string, format string) bool {
	for _, s := range supported {
		s = strings.ToLower(s)
		switch {
		case s == format, s == "*/*":
			return true
		case strings.HasSuffix(s, "/*") && strings.HasPrefix(format, strings.TrimSuffix(s, "*")):
			return true
		}
	}
	return false
}
