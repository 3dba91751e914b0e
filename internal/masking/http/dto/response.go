package dto

import (
	"github.com/allisson/pseudonym/internal/masking/domain"
)

// MaskResponse is the outcome of a single masking call.
type MaskResponse struct {
	Masked string `json:"masked"`
	Hash   string `json:"hash"`
}

// MapMaskResult maps a domain mask result to its response.
func MapMaskResult(result domain.MaskResult) MaskResponse {
	return MaskResponse{
		Masked: result.Masked,
		Hash:   result.Hash,
	}
}

// SurrogateIDResponse carries a generated surrogate identifier.
type SurrogateIDResponse struct {
	SurrogateID string `json:"surrogate_id"`
}

// DetectedSpanResponse is one PII-shaped substring found in free text.
type DetectedSpanResponse struct {
	Type     string `json:"type"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	RawMatch string `json:"raw_match"`
}

// DetectResponse lists the spans found by the detector.
type DetectResponse struct {
	Spans []DetectedSpanResponse `json:"spans"`
}

// MapDetectedSpans maps domain spans to their response form.
func MapDetectedSpans(spans []domain.DetectedSpan) DetectResponse {
	out := make([]DetectedSpanResponse, 0, len(spans))
	for _, span := range spans {
		out = append(out, DetectedSpanResponse{
			Type:     string(span.Type),
			Start:    span.Start,
			End:      span.End,
			RawMatch: span.RawMatch,
		})
	}
	return DetectResponse{Spans: out}
}

// RecordResultResponse holds the masked fields of one record.
type RecordResultResponse struct {
	Hash   string            `json:"hash"`
	Fields map[string]string `json:"fields"`
}

// MaskRecordsResponse is the index-aligned batch masking outcome.
type MaskRecordsResponse struct {
	Results []RecordResultResponse `json:"results"`
}

// MapRecordResults maps domain record results to their response form.
func MapRecordResults(results []domain.RecordResult) MaskRecordsResponse {
	out := make([]RecordResultResponse, 0, len(results))
	for _, result := range results {
		out = append(out, RecordResultResponse{
			Hash:   result.Hash,
			Fields: result.Fields,
		})
	}
	return MaskRecordsResponse{Results: out}
}

// StatsResponse reports a tenant's masking counters.
type StatsResponse struct {
	TotalMasked    uint64            `json:"total_masked"`
	DegradedInputs uint64            `json:"degraded_inputs"`
	ByType         map[string]uint64 `json:"by_type"`
	UniqueSubjects int               `json:"unique_subjects"`
}

// MapStats maps domain stats to their response form.
func MapStats(stats domain.Stats) StatsResponse {
	byType := make(map[string]uint64, len(stats.ByType))
	for ft, n := range stats.ByType {
		byType[string(ft)] = n
	}
	return StatsResponse{
		TotalMasked:    stats.TotalMasked,
		DegradedInputs: stats.DegradedInputs,
		ByType:         byType,
		UniqueSubjects: stats.UniqueSubjects,
	}
}
