package service

import (
	"strings"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// MaskEmail builds a synthetic address whose local part is derived from
// the same name seed domain the name masker uses, so a subject's masked
// email agrees with their masked name. The domain is either preserved
// from the original or drawn from the locale tables (one draw from the
// email seed). An original without an "@" is counted as degraded and
// always gets a synthetic domain.
func (m *Masker) MaskEmail(original, subjectKey string, opts domain.EmailOptions) (domain.MaskResult, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return domain.MaskResult{}, err
	}

	nameSrc := m.source(subjectKey, domain.FieldTypeName)
	first, last := m.drawName(nameSrc, "")
	local := strings.ToLower(first) + "." + strings.ToLower(last)

	preserve := m.mctx.PreserveEmailDomain()
	if opts.PreserveDomain != nil {
		preserve = *opts.PreserveDomain
	}

	at := strings.LastIndex(original, "@")
	degraded := at < 0 || at == len(original)-1

	src := m.source(subjectKey, domain.FieldTypeEmail)
	drawn := src.Uint64()

	var emailDomain string
	if preserve && !degraded {
		emailDomain = original[at+1:]
	} else {
		emailDomain = m.lookup(CategoryEmailDomain, drawn, src)
	}

	if degraded {
		m.stats.RecordDegraded()
	}

	result := domain.MaskResult{
		Masked: local + "@" + emailDomain,
		Hash:   m.IdentityHash(subjectKey),
	}

	m.stats.Record(domain.FieldTypeEmail, result.Hash)
	return result, nil
}
