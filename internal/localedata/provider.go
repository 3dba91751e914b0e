// Package localedata provides the embedded locale data provider: a
// deterministic, indexed dictionary of human-looking substrings (names,
// streets, cities, email domains) per locale. The masking engine consumes
// it through a narrow interface and never depends on how the tables are
// populated.
package localedata

import (
	"github.com/allisson/pseudonym/internal/masking/service"
)

// Table labels, aliased from the engine's dictionary vocabulary.
const (
	CategoryFirstNameFemale = service.CategoryFirstNameFemale
	CategoryFirstNameMale   = service.CategoryFirstNameMale
	CategoryLastName        = service.CategoryLastName
	CategoryStreetName      = service.CategoryStreetName
	CategoryCity            = service.CategoryCity
	CategoryEmailDomain     = service.CategoryEmailDomain
)

// Provider serves deterministic dictionary lookups from embedded tables.
// Lookup is a pure function of (locale, category, index), so the same
// index always yields the same candidate string.
type Provider struct {
	tables map[string]map[string][]string
}

// NewProvider creates a provider backed by the embedded locale tables.
func NewProvider() *Provider {
	return &Provider{
		tables: map[string]map[string][]string{
			"en": enTables,
			"de": deTables,
		},
	}
}

// Supports reports whether the locale has dictionary data.
func (p *Provider) Supports(locale string) bool {
	_, ok := p.tables[locale]
	return ok
}

// Locales returns the supported locale tags.
func (p *Provider) Locales() []string {
	locales := make([]string, 0, len(p.tables))
	for tag := range p.tables {
		locales = append(locales, tag)
	}
	return locales
}

// Lookup returns the candidate string for the given deterministic index.
// The index may be any value; it is reduced modulo the table size. Unknown
// locales or categories return the empty string so the engine can fall
// back to an opaque synthetic value instead of failing.
func (p *Provider) Lookup(locale, category string, index uint64) string {
	table, ok := p.tables[locale]
	if !ok {
		return ""
	}
	entries := table[category]
	if len(entries) == 0 {
		return ""
	}
	return entries[index%uint64(len(entries))]
}
