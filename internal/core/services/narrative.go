package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driven"
	"github.com/custodia-labs/insight-core/internal/core/ports/driving"
)

// Ensure narrativeService implements NarrativeService
var _ driving.NarrativeService = (*narrativeService)(nil)

const (
	// DefaultMaxNarrativeBytes caps accepted narratives (1 MiB)
	DefaultMaxNarrativeBytes = 1 << 20

	// DefaultCacheTTL is how long annotations stay cached
	DefaultCacheTTL = 24 * time.Hour

	defaultListLimit = 20
	maxListLimit     = 100
)

// NarrativeServiceConfig holds dependencies for the narrative service.
// Cache and Store are optional.
type NarrativeServiceConfig struct {
	Annotator   driven.NarrativeAnnotator
	Normalisers driven.NormaliserRegistry
	Cache       driven.AnnotationCache
	Store       driven.NarrativeStore
	IDs         driven.IDGenerator

	// CacheNamespace separates cache entries produced by different engine configs
	CacheNamespace    string
	CacheTTL          time.Duration
	MaxNarrativeBytes int
	DefaultFormat     string
	Logger            *slog.Logger
}

// narrativeService implements the NarrativeService interface
type narrativeService struct {
	annotator   driven.NarrativeAnnotator
	normalisers driven.NormaliserRegistry
	cache       driven.AnnotationCache
	store       driven.NarrativeStore
	ids         driven.IDGenerator

	cacheNamespace    string
	cacheTTL          time.Duration
	maxNarrativeBytes int
	defaultFormat     string
	logger            *slog.Logger
}

// NewNarrativeService creates a new NarrativeService
func NewNarrativeService(cfg NarrativeServiceConfig) driving.NarrativeService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.MaxNarrativeBytes <= 0 {
		cfg.MaxNarrativeBytes = DefaultMaxNarrativeBytes
	}
	if cfg.DefaultFormat == "" {
		cfg.DefaultFormat = driven.FormatMarkdown
	}

	return &narrativeService{
		annotator:         cfg.Annotator,
		normalisers:       cfg.Normalisers,
		cache:             cfg.Cache,
		store:             cfg.Store,
		ids:               cfg.IDs,
		cacheNamespace:    cfg.CacheNamespace,
		cacheTTL:          cfg.CacheTTL,
		maxNarrativeBytes: cfg.MaxNarrativeBytes,
		defaultFormat:     cfg.DefaultFormat,
		logger:            logger,
	}
}

// Annotate runs the full annotation pipeline, memoized by fingerprint
func (s *narrativeService) Annotate(ctx context.Context, req driving.AnnotateRequest) (*domain.Annotation, error) {
	narrative, _, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	return s.withEvidence(s.annotate(ctx, narrative), &req.EvidenceContext), nil
}

func (s *narrativeService) annotate(ctx context.Context, narrative string) *domain.Annotation {
	fingerprint := Fingerprint(narrative)
	key := s.cacheKey(fingerprint)

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, key)
		if err == nil {
			return cached
		}
		if !errors.Is(err, domain.ErrNotFound) {
			// Cache failures degrade to recomputation
			s.logger.Warn("annotation cache read failed", "fingerprint", fingerprint, "error", err)
		}
	}

	annotation := s.annotator.Annotate(narrative)
	annotation.Fingerprint = fingerprint

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, annotation, s.cacheTTL); err != nil {
			s.logger.Warn("annotation cache write failed", "fingerprint", fingerprint, "error", err)
		}
	}

	s.logger.Debug("narrative annotated",
		"fingerprint", fingerprint,
		"sections", len(annotation.Sections),
		"days", len(annotation.Timeline))

	return annotation
}

// SplitSections partitions a narrative into named sections
func (s *narrativeService) SplitSections(ctx context.Context, req driving.AnnotateRequest) ([]domain.Section, error) {
	narrative, _, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	return s.annotator.SplitSections(narrative), nil
}

// DirectAnswer extracts the direct-answer block
func (s *narrativeService) DirectAnswer(ctx context.Context, req driving.AnnotateRequest) (*string, error) {
	narrative, _, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	answer, ok := s.annotator.ExtractDirectAnswer(narrative)
	if !ok {
		return nil, nil
	}
	return &answer, nil
}

// Timeline builds the grouped chronological index
func (s *narrativeService) Timeline(ctx context.Context, req driving.AnnotateRequest) ([]domain.DayGroup, error) {
	narrative, _, err := s.prepare(req)
	if err != nil {
		return nil, err
	}
	return s.annotator.BuildTimeline(narrative), nil
}

// EvidenceTimeline orders retrieval evidence for presentation
func (s *narrativeService) EvidenceTimeline(ctx context.Context, ec domain.EvidenceContext) (*domain.EvidenceTimeline, error) {
	if err := ec.Validate(); err != nil {
		return nil, err
	}
	return s.annotator.BuildEvidenceTimeline(&ec), nil
}

// DecomposeLine splits a single line into label, body and citations
func (s *narrativeService) DecomposeLine(ctx context.Context, line string) (*domain.DecomposedLine, error) {
	if err := s.checkSize(line); err != nil {
		return nil, err
	}
	decomposed := s.annotator.DecomposeLine(line)
	return &decomposed, nil
}

// ClassifyTokens partitions a body into classified tokens
func (s *narrativeService) ClassifyTokens(ctx context.Context, body string) ([]domain.Token, error) {
	if err := s.checkSize(body); err != nil {
		return nil, err
	}
	return s.annotator.ClassifyTokens(body), nil
}

// PresentCitations decides how a citation cluster is shown
func (s *narrativeService) PresentCitations(ctx context.Context, citations []string) (*domain.CitationArtifact, error) {
	return s.annotator.PresentCitations(citations), nil
}

// Archive annotates a narrative and stores it
func (s *narrativeService) Archive(ctx context.Context, createdBy string, req driving.ArchiveRequest) (*domain.NarrativeRecord, error) {
	if s.store == nil {
		return nil, domain.ErrServiceUnavailable
	}

	narrative, format, err := s.prepare(req.AnnotateRequest)
	if err != nil {
		return nil, err
	}
	if narrative == "" {
		return nil, domain.ErrInvalidInput
	}

	annotation := s.withEvidence(s.annotate(ctx, narrative), &req.EvidenceContext)

	record := &domain.NarrativeRecord{
		ID:          s.ids.NewID(),
		Fingerprint: annotation.Fingerprint,
		Query:       req.Query,
		Narrative:   narrative,
		Format:      format,
		Annotation:  annotation,
		CreatedBy:   createdBy,
		CreatedAt:   time.Now().UTC(),
	}
	if !req.EvidenceContext.IsEmpty() {
		ec := req.EvidenceContext
		record.Context = &ec
	}
	if record.Query == "" && record.Context != nil && record.Context.ParsedData != nil {
		record.Query = record.Context.ParsedData.CleanedQuery
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, err
	}

	s.logger.Info("narrative archived", "id", record.ID, "fingerprint", record.Fingerprint)
	return record, nil
}

// Get retrieves an archived narrative
func (s *narrativeService) Get(ctx context.Context, id string) (*domain.NarrativeRecord, error) {
	if s.store == nil {
		return nil, domain.ErrServiceUnavailable
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// List lists archived narratives, newest first
func (s *narrativeService) List(ctx context.Context, limit, offset int) (*driving.NarrativeList, error) {
	if s.store == nil {
		return nil, domain.ErrServiceUnavailable
	}

	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	if offset < 0 {
		offset = 0
	}

	records, err := s.store.List(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}

	if records == nil {
		records = []*domain.NarrativeRecord{}
	}

	return &driving.NarrativeList{
		Narratives: records,
		Total:      total,
		Limit:      limit,
		Offset:     offset,
	}, nil
}

// Delete removes an archived narrative
func (s *narrativeService) Delete(ctx context.Context, id string) error {
	if s.store == nil {
		return domain.ErrServiceUnavailable
	}
	if id == "" {
		return domain.ErrInvalidInput
	}

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("narrative deleted", "id", id)
	return nil
}

// withEvidence returns a copy of the annotation carrying the evidence
// timeline. The annotation itself may be shared with the cache.
func (s *narrativeService) withEvidence(annotation *domain.Annotation, ec *domain.EvidenceContext) *domain.Annotation {
	if ec.IsEmpty() {
		return annotation
	}
	result := *annotation
	result.Evidence = s.annotator.BuildEvidenceTimeline(ec)
	return &result
}

// prepare enforces the size limit, validates the retrieval context and
// normalises the narrative for its format.
func (s *narrativeService) prepare(req driving.AnnotateRequest) (string, string, error) {
	narrative := req.Narrative
	if narrative == "" {
		narrative = req.LLMAnswer
	}
	if err := s.checkSize(narrative); err != nil {
		return "", "", err
	}
	if err := req.EvidenceContext.Validate(); err != nil {
		return "", "", err
	}

	format := req.Format
	if format == "" {
		format = s.defaultFormat
	}

	if s.normalisers == nil {
		return narrative, format, nil
	}

	normaliser := s.normalisers.Get(format)
	if normaliser == nil {
		return "", "", domain.ErrInvalidInput
	}
	return normaliser.Normalise(narrative, format), format, nil
}

func (s *narrativeService) checkSize(text string) error {
	if len(text) > s.maxNarrativeBytes {
		return domain.ErrNarrativeTooLarge
	}
	return nil
}

func (s *narrativeService) cacheKey(fingerprint string) string {
	if s.cacheNamespace == "" {
		return fingerprint
	}
	return s.cacheNamespace + ":" + fingerprint
}
