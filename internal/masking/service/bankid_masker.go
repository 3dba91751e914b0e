package service

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

var ibanShapePattern = regexp.MustCompile(`^[A-Z]{2}\d{2}[A-Z0-9]{4,30}$`)

const fallbackBBANLength = 16

var syntheticCountries = []string{"DE", "FR", "GB", "NL", "ES"}

// MaskBankIdentifier produces an IBAN-shaped token: the original
// country code is kept (unless PreserveCountryCode is explicitly
// false), a synthetic BBAN of the same length is drawn digit by digit,
// and the two check digits are recomputed with the mod-97 algorithm so
// the output always validates. Originals that are not IBAN-shaped are
// counted as degraded and get a drawn country plus a fixed-length BBAN.
func (m *Masker) MaskBankIdentifier(original, subjectKey string, opts domain.BankIDOptions) (domain.MaskResult, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return domain.MaskResult{}, err
	}

	src := m.source(subjectKey, domain.FieldTypeBankID)

	preserve := opts.PreserveCountryCode == nil || *opts.PreserveCountryCode

	normalized := strings.ToUpper(strings.ReplaceAll(original, " ", ""))
	shaped := ibanShapePattern.MatchString(normalized)

	country := syntheticCountries[src.IntN(len(syntheticCountries))]
	bbanLength := fallbackBBANLength
	if shaped {
		bbanLength = len(normalized) - 4
		if preserve {
			country = normalized[:2]
		}
	} else {
		m.stats.RecordDegraded()
	}

	var b strings.Builder
	for i := 0; i < bbanLength; i++ {
		b.WriteByte(src.Digit())
	}
	bban := b.String()

	check := mod97CheckDigits(country, bban)

	result := domain.MaskResult{
		Masked: country + check + bban,
		Hash:   m.IdentityHash(subjectKey),
	}

	m.stats.Record(domain.FieldTypeBankID, result.Hash)
	return result, nil
}

// mod97CheckDigits computes the two check digits for a country code and
// BBAN: the rearranged string bban+country+"00" is read as a decimal
// integer with letters mapped A=10..Z=35, reduced mod 97, and the
// digits are 98 minus the remainder.
func mod97CheckDigits(country, bban string) string {
	remainder := mod97(bban + country + "00")
	return fmt.Sprintf("%02d", 98-remainder)
}

// ValidBankIdentifier reports whether an IBAN-shaped string passes the
// mod-97 check-digit validation.
func ValidBankIdentifier(value string) bool {
	normalized := strings.ToUpper(strings.ReplaceAll(value, " ", ""))
	if !ibanShapePattern.MatchString(normalized) {
		return false
	}
	return mod97(normalized[4:]+normalized[:4]) == 1
}

func mod97(s string) int {
	remainder := 0
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch >= '0' && ch <= '9':
			remainder = (remainder*10 + int(ch-'0')) % 97
		case ch >= 'A' && ch <= 'Z':
			remainder = (remainder*100 + int(ch-'A') + 10) % 97
		}
	}
	return remainder
}
