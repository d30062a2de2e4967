package http

import (
	"net/http"
	"strconv"

	"github.com/custodia-labs/insight-core/internal/core/domain"
	"github.com/custodia-labs/insight-core/internal/core/ports/driving"
)

// DecomposeLineRequest carries a single narrative line
type DecomposeLineRequest struct {
	Line string `json:"line" example:"- 2025-09-11 02:00: CO2 peaked at 1450 ppm [2025-09-11 02:00]"`
}

// ClassifyTokensRequest carries a line body to tokenize
type ClassifyTokensRequest struct {
	Body string `json:"body" example:"CO2 median 812 ppm, peak 1450 ppm"`
}

// PresentCitationsRequest carries a citation cluster
type PresentCitationsRequest struct {
	Citations []string `json:"citations"`
}

// SectionsResponse wraps SplitSections output
type SectionsResponse struct {
	Sections []domain.Section `json:"sections"`
}

// DirectAnswerResponse wraps the direct-answer block; null when absent
type DirectAnswerResponse struct {
	DirectAnswer *string `json:"direct_answer"`
}

// TimelineResponse wraps the grouped timeline
type TimelineResponse struct {
	Days []domain.DayGroup `json:"days"`
}

// TokensResponse wraps classified tokens
type TokensResponse struct {
	Tokens []domain.Token `json:"tokens"`
}

// CitationArtifactResponse wraps the presentation decision; null when there are no citations
type CitationArtifactResponse struct {
	Artifact *domain.CitationArtifact `json:"artifact"`
}

// Annotation endpoints

// handleAnnotate godoc
// @Summary      Annotate a narrative
// @Description  Runs the full pipeline: direct answer, sections, line decomposition, token classification, citation presentation and timeline
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.AnnotateRequest  true  "Narrative"
// @Success      200      {object}  domain.Annotation
// @Failure      400      {object}  ErrorResponse
// @Failure      401      {object}  ErrorResponse
// @Failure      413      {object}  ErrorResponse
// @Router       /annotate [post]
func (s *Server) handleAnnotate(w http.ResponseWriter, r *http.Request) {
	var req driving.AnnotateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	annotation, err := s.narrativeService.Annotate(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err, "annotate narrative")
		return
	}

	writeJSON(w, http.StatusOK, annotation)
}

// handleSplitSections godoc
// @Summary      Split a narrative into sections
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.AnnotateRequest  true  "Narrative"
// @Success      200      {object}  SectionsResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /sections [post]
func (s *Server) handleSplitSections(w http.ResponseWriter, r *http.Request) {
	var req driving.AnnotateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	sections, err := s.narrativeService.SplitSections(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err, "split sections")
		return
	}

	writeJSON(w, http.StatusOK, SectionsResponse{Sections: sections})
}

// handleDirectAnswer godoc
// @Summary      Extract the direct answer
// @Description  Returns the block after a "0) Direct Answer" heading, or null
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.AnnotateRequest  true  "Narrative"
// @Success      200      {object}  DirectAnswerResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /direct-answer [post]
func (s *Server) handleDirectAnswer(w http.ResponseWriter, r *http.Request) {
	var req driving.AnnotateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	answer, err := s.narrativeService.DirectAnswer(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err, "extract direct answer")
		return
	}

	writeJSON(w, http.StatusOK, DirectAnswerResponse{DirectAnswer: answer})
}

// handleTimeline godoc
// @Summary      Build the timeline
// @Description  Groups every "[YYYY-MM-DD HH:MM]" citation by date
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.AnnotateRequest  true  "Narrative"
// @Success      200      {object}  TimelineResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /timeline [post]
func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	var req driving.AnnotateRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	days, err := s.narrativeService.Timeline(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err, "build timeline")
		return
	}

	writeJSON(w, http.StatusOK, TimelineResponse{Days: days})
}

// handleEvidenceTimeline godoc
// @Summary      Build the evidence timeline
// @Description  Orders retrieval evidence by date and hour, counts anomalies and formats the parsed hour window
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      domain.EvidenceContext  true  "Retrieval context"
// @Success      200      {object}  domain.EvidenceTimeline
// @Failure      400      {object}  ErrorResponse
// @Router       /evidence/timeline [post]
func (s *Server) handleEvidenceTimeline(w http.ResponseWriter, r *http.Request) {
	var req domain.EvidenceContext
	if !s.decodeBody(w, r, &req) {
		return
	}

	timeline, err := s.narrativeService.EvidenceTimeline(r.Context(), req)
	if err != nil {
		s.writeServiceError(w, err, "build evidence timeline")
		return
	}

	writeJSON(w, http.StatusOK, timeline)
}

// handleDecomposeLine godoc
// @Summary      Decompose a line
// @Description  Splits a line into label, body and trailing citations
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      DecomposeLineRequest  true  "Line"
// @Success      200      {object}  domain.DecomposedLine
// @Failure      400      {object}  ErrorResponse
// @Router       /lines/decompose [post]
func (s *Server) handleDecomposeLine(w http.ResponseWriter, r *http.Request) {
	var req DecomposeLineRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	line, err := s.narrativeService.DecomposeLine(r.Context(), req.Line)
	if err != nil {
		s.writeServiceError(w, err, "decompose line")
		return
	}

	writeJSON(w, http.StatusOK, line)
}

// handleClassifyTokens godoc
// @Summary      Classify tokens
// @Description  Partitions a line body into bold, metric, value, timestamp, stat phrase and plain text tokens
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ClassifyTokensRequest  true  "Body"
// @Success      200      {object}  TokensResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /tokens/classify [post]
func (s *Server) handleClassifyTokens(w http.ResponseWriter, r *http.Request) {
	var req ClassifyTokensRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	tokens, err := s.narrativeService.ClassifyTokens(r.Context(), req.Body)
	if err != nil {
		s.writeServiceError(w, err, "classify tokens")
		return
	}

	writeJSON(w, http.StatusOK, TokensResponse{Tokens: tokens})
}

// handlePresentCitations godoc
// @Summary      Present a citation cluster
// @Description  One citation is shown inline; two or more collapse into a counted artifact
// @Tags         Annotation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      PresentCitationsRequest  true  "Citations"
// @Success      200      {object}  CitationArtifactResponse
// @Failure      400      {object}  ErrorResponse
// @Router       /citations/present [post]
func (s *Server) handlePresentCitations(w http.ResponseWriter, r *http.Request) {
	var req PresentCitationsRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	artifact, err := s.narrativeService.PresentCitations(r.Context(), req.Citations)
	if err != nil {
		s.writeServiceError(w, err, "present citations")
		return
	}

	writeJSON(w, http.StatusOK, CitationArtifactResponse{Artifact: artifact})
}

// Archive endpoints

// handleArchiveNarrative godoc
// @Summary      Archive a narrative
// @Description  Annotates a narrative and stores it with its annotation
// @Tags         Narratives
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.ArchiveRequest  true  "Narrative"
// @Success      201      {object}  domain.NarrativeRecord
// @Failure      400      {object}  ErrorResponse
// @Failure      503      {object}  ErrorResponse  "Archive not configured"
// @Router       /narratives [post]
func (s *Server) handleArchiveNarrative(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req driving.ArchiveRequest
	if !s.decodeBody(w, r, &req) {
		return
	}

	record, err := s.narrativeService.Archive(r.Context(), authCtx.Subject, req)
	if err != nil {
		s.writeServiceError(w, err, "archive narrative")
		return
	}

	writeJSON(w, http.StatusCreated, record)
}

// handleListNarratives godoc
// @Summary      List archived narratives
// @Tags         Narratives
// @Produce      json
// @Security     BearerAuth
// @Param        limit   query     int  false  "Page size (default 20, max 100)"
// @Param        offset  query     int  false  "Offset"
// @Success      200     {object}  driving.NarrativeList
// @Failure      503     {object}  ErrorResponse  "Archive not configured"
// @Router       /narratives [get]
func (s *Server) handleListNarratives(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := s.narrativeService.List(r.Context(), limit, offset)
	if err != nil {
		s.writeServiceError(w, err, "list narratives")
		return
	}

	writeJSON(w, http.StatusOK, list)
}

// handleGetNarrative godoc
// @Summary      Get an archived narrative
// @Tags         Narratives
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Narrative ID"
// @Success      200  {object}  domain.NarrativeRecord
// @Failure      404  {object}  ErrorResponse
// @Router       /narratives/{id} [get]
func (s *Server) handleGetNarrative(w http.ResponseWriter, r *http.Request) {
	record, err := s.narrativeService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, err, "get narrative")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// handleDeleteNarrative godoc
// @Summary      Delete an archived narrative
// @Tags         Narratives
// @Security     BearerAuth
// @Param        id   path  string  true  "Narrative ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse  "Admin access required"
// @Failure      404  {object}  ErrorResponse
// @Router       /narratives/{id} [delete]
func (s *Server) handleDeleteNarrative(w http.ResponseWriter, r *http.Request) {
	if err := s.narrativeService.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.writeServiceError(w, err, "delete narrative")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
