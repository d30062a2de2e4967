package annotator

import (
	"sort"

	"github.com/custodia-labs/insight-core/internal/core/domain"
)

// BuildEvidenceTimeline orders evidence chunks by date and hour and
// formats the parsed time window. Chunks sharing a position keep their
// input order. Dates come from the parsed time when present, otherwise
// from the chunks. A nil context yields nil.
func BuildEvidenceTimeline(ec *domain.EvidenceContext) *domain.EvidenceTimeline {
	if ec == nil {
		return nil
	}

	chunks := make([]domain.EvidenceChunk, len(ec.Evidence))
	anomalies := 0
	for i, chunk := range ec.Evidence {
		if chunk.Metrics != nil {
			metrics := *chunk.Metrics
			chunk.Metrics = &metrics
		}
		if chunk.IsAnomaly {
			anomalies++
		}
		chunks[i] = chunk
	}

	sort.SliceStable(chunks, func(i, j int) bool {
		if chunks[i].Date != chunks[j].Date {
			return chunks[i].Date < chunks[j].Date
		}
		return chunks[i].Hour < chunks[j].Hour
	})

	timeline := &domain.EvidenceTimeline{
		HourWindow:     ec.ParsedData.HourRange(),
		Chunks:         chunks,
		AnomalyCount:   anomalies,
		ProcessingTime: ec.ProcessingTime,
	}

	if ec.ParsedData != nil {
		timeline.Dates = append([]string{}, ec.ParsedData.Dates...)
		timeline.CleanedQuery = ec.ParsedData.CleanedQuery
	}
	if len(timeline.Dates) == 0 {
		timeline.Dates = chunkDates(chunks)
	}

	return timeline
}

// chunkDates lists the distinct dates of ordered chunks.
func chunkDates(chunks []domain.EvidenceChunk) []string {
	dates := []string{}
	for _, chunk := range chunks {
		if len(dates) == 0 || dates[len(dates)-1] != chunk.Date {
			dates = append(dates, chunk.Date)
		}
	}
	return dates
}
