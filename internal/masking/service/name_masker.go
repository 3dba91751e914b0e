package service

import (
	"github.com/allisson/pseudonym/internal/masking/domain"
)

// MaskName replaces a personal name with a synthetic one drawn from the
// locale tables. Draw order: 1 value for the gender bucket, 1 for the
// first-name index, 1 for the last-name index. The gender draw is
// consumed even when the caller overrides the bucket, so the name
// indices are stable regardless of the override.
func (m *Masker) MaskName(original, subjectKey string, opts domain.NameOptions) (domain.MaskResult, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return domain.MaskResult{}, err
	}

	src := m.source(subjectKey, domain.FieldTypeName)
	first, last := m.drawName(src, opts.Gender)

	result := domain.MaskResult{
		Masked: first + " " + last,
		Hash:   m.IdentityHash(subjectKey),
	}

	m.stats.Record(domain.FieldTypeName, result.Hash)
	return result, nil
}

// drawName consumes exactly three draws and returns the synthetic first
// and last name. Shared with the email masker, which derives its local
// part from the same name seed domain.
func (m *Masker) drawName(src *randSource, genderHint string) (first, last string) {
	gender := domain.GenderFemale
	if src.Uint64()%2 == 1 {
		gender = domain.GenderMale
	}
	switch genderHint {
	case domain.GenderFemale, domain.GenderMale:
		gender = genderHint
	}

	firstCategory := CategoryFirstNameFemale
	if gender == domain.GenderMale {
		firstCategory = CategoryFirstNameMale
	}

	first = m.lookup(firstCategory, src.Uint64(), src)
	last = m.lookup(CategoryLastName, src.Uint64(), src)
	return first, last
}
