package service

import (
	"strings"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// PlaceholderToken returns the fixed bracketed token substituted for a
// redacted span, e.g. "[EMAIL]" or "[BANK-ID]".
func PlaceholderToken(fieldType domain.FieldType) string {
	return "[" + strings.ToUpper(string(fieldType)) + "]"
}

type textSegment struct {
	value       string
	placeholder bool
}

// MaskFreeText scans text left to right and rewrites every detected
// PII span: spans whose type is in RedactEntities become the fixed
// typed placeholder token, every other detected span is routed through
// the matching per-type masker with the same subject key, so a value
// appearing both in free text and as a structured field masks to the
// same output. The result is truncated to MaxLength after substitution
// and never mid-placeholder.
func (m *Masker) MaskFreeText(text, subjectKey string, opts domain.FreeTextOptions) (domain.MaskResult, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return domain.MaskResult{}, err
	}

	spans := Detect(text)

	segments := make([]textSegment, 0, 2*len(spans)+1)
	cursor := 0
	for _, span := range spans {
		if span.Start > cursor {
			segments = append(segments, textSegment{value: text[cursor:span.Start]})
		}

		if opts.RedactsType(span.Type) {
			segments = append(segments, textSegment{value: PlaceholderToken(span.Type), placeholder: true})
		} else {
			masked, err := m.maskSpan(span, subjectKey)
			if err != nil {
				return domain.MaskResult{}, err
			}
			segments = append(segments, textSegment{value: masked})
		}
		cursor = span.End
	}
	if cursor < len(text) {
		segments = append(segments, textSegment{value: text[cursor:]})
	}

	masked := joinTruncated(segments, opts.MaxLength)

	result := domain.MaskResult{
		Masked: masked,
		Hash:   m.IdentityHash(subjectKey),
	}

	m.stats.Record(domain.FieldTypeFreeText, result.Hash)
	return result, nil
}

func (m *Masker) maskSpan(span domain.DetectedSpan, subjectKey string) (string, error) {
	switch span.Type {
	case domain.FieldTypeEmail:
		result, err := m.MaskEmail(span.RawMatch, subjectKey, domain.EmailOptions{})
		return result.Masked, err
	case domain.FieldTypePhone:
		result, err := m.MaskPhone(span.RawMatch, subjectKey, domain.PhoneOptions{})
		return result.Masked, err
	case domain.FieldTypeBankID:
		result, err := m.MaskBankIdentifier(span.RawMatch, subjectKey, domain.BankIDOptions{})
		return result.Masked, err
	case domain.FieldTypeSurrogateID:
		return m.GenerateSurrogateID(subjectKey)
	default:
		return span.RawMatch, nil
	}
}

// joinTruncated concatenates segments up to maxLength bytes of output.
// Literal segments may be cut, placeholder tokens are dropped whole
// when they would not fit. maxLength <= 0 means no limit.
func joinTruncated(segments []textSegment, maxLength int) string {
	var b strings.Builder
	for _, seg := range segments {
		if maxLength <= 0 {
			b.WriteString(seg.value)
			continue
		}

		remaining := maxLength - b.Len()
		if remaining <= 0 {
			break
		}
		if len(seg.value) <= remaining {
			b.WriteString(seg.value)
			continue
		}
		if seg.placeholder {
			break
		}
		b.WriteString(seg.value[:remaining])
		break
	}
	return b.String()
}
