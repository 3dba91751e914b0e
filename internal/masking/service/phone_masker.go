package service

import (
	"regexp"
	"strings"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

var countryCodePattern = regexp.MustCompile(`^\+\d{1,3}`)

// MaskPhone draws a synthetic NANP-shaped subscriber number of ten
// digit draws. With PreserveCountryCode the original international
// prefix is kept and only the subscriber digits are replaced; an
// original without a "+NN" prefix is counted as degraded in that mode.
func (m *Masker) MaskPhone(original, subjectKey string, opts domain.PhoneOptions) (domain.MaskResult, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return domain.MaskResult{}, err
	}

	src := m.source(subjectKey, domain.FieldTypePhone)

	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i == 3 || i == 6 {
			b.WriteByte('-')
		}
		b.WriteByte(src.Digit())
	}
	national := b.String()

	masked := national
	if opts.PreserveCountryCode {
		prefix := countryCodePattern.FindString(strings.TrimSpace(original))
		if prefix == "" {
			m.stats.RecordDegraded()
		} else {
			masked = prefix + " " + national
		}
	}

	result := domain.MaskResult{
		Masked: masked,
		Hash:   m.IdentityHash(subjectKey),
	}

	m.stats.Record(domain.FieldTypePhone, result.Hash)
	return result, nil
}
