package service

import (
	"strconv"
	"strings"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// MaskAddress draws a street number, street name and city from the
// locale tables. Draw order: 1 value for the street number, 1 for the
// street-name index, 1 for the city index (the city draw is consumed
// even when the original city is preserved). With PreserveCity the
// suffix after the first comma of the original is retained and only the
// street-level detail is replaced; an original with no comma is counted
// as degraded and gets a synthetic city.
func (m *Masker) MaskAddress(original, subjectKey string, opts domain.AddressOptions) (domain.MaskResult, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return domain.MaskResult{}, err
	}

	src := m.source(subjectKey, domain.FieldTypeAddress)

	number := 1 + src.Uint64()%199
	street := m.lookup(CategoryStreetName, src.Uint64(), src)
	city := m.lookup(CategoryCity, src.Uint64(), src)

	suffix := ", " + city
	if opts.PreserveCity {
		if idx := strings.Index(original, ","); idx >= 0 {
			suffix = original[idx:]
		} else {
			m.stats.RecordDegraded()
		}
	}

	result := domain.MaskResult{
		Masked: strconv.FormatUint(number, 10) + " " + street + suffix,
		Hash:   m.IdentityHash(subjectKey),
	}

	m.stats.Record(domain.FieldTypeAddress, result.Hash)
	return result, nil
}
