package service

import (
	"regexp"
	"sort"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// detectionPatterns are applied in priority order: a span claimed by an
// earlier pattern suppresses overlapping matches of later ones, so an
// email address is never re-reported as a phone-like digit run.
var detectionPatterns = []struct {
	fieldType domain.FieldType
	pattern   *regexp.Regexp
}{
	{domain.FieldTypeEmail, regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)},
	{domain.FieldTypeBankID, regexp.MustCompile(`\b[A-Z]{2}\d{2}[A-Z0-9]{11,30}\b`)},
	{domain.FieldTypePhone, regexp.MustCompile(`(?:\+\d{1,3}[\s.\-]?)?(?:\(\d{3}\)[\s.\-]?|\d{3}[\s.\-])?\d{3}[\s.\-]\d{4}\b`)},
	{domain.FieldTypeSurrogateID, regexp.MustCompile(`\b\d{9,18}\b`)},
}

// Detect scans text for PII-shaped substrings and returns the matched
// spans ordered by start position. Overlapping candidates are resolved
// by pattern priority.
func Detect(text string) []domain.DetectedSpan {
	var spans []domain.DetectedSpan

	for _, dp := range detectionPatterns {
		for _, loc := range dp.pattern.FindAllStringIndex(text, -1) {
			candidate := domain.DetectedSpan{
				Type:     dp.fieldType,
				Start:    loc[0],
				End:      loc[1],
				RawMatch: text[loc[0]:loc[1]],
			}
			if !overlapsAny(spans, candidate) {
				spans = append(spans, candidate)
			}
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].Start < spans[j].Start })
	return spans
}

func overlapsAny(spans []domain.DetectedSpan, candidate domain.DetectedSpan) bool {
	for _, s := range spans {
		if candidate.Start < s.End && s.Start < candidate.End {
			return true
		}
	}
	return false
}

func (m *Masker) Detect(text string) []domain.DetectedSpan {
	return Detect(text)
}
