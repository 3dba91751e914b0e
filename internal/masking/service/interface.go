// Package service implements the deterministic pseudonymization engine:
// seed derivation, the counter-based random source, the per-type maskers,
// and the free-text detector/redactor.
package service

// LocaleProvider supplies the human-looking dictionary entries consumed by
// the maskers. Lookup must be deterministic for the same (locale,
// category, index) triple; the index may be arbitrarily large and is
// reduced modulo the table size by the implementation. An empty return
// value signals a missing table, in which case the masker falls back to
// an opaque synthetic token.
type LocaleProvider interface {
	Lookup(locale, category string, index uint64) string
	Supports(locale string) bool
}

// Dictionary categories the engine consults. Providers must serve these
// labels; unknown categories return the empty string.
const (
	CategoryFirstNameFemale = "first-name-female"
	CategoryFirstNameMale   = "first-name-male"
	CategoryLastName        = "last-name"
	CategoryStreetName      = "street-name"
	CategoryCity            = "city"
	CategoryEmailDomain     = "email-domain"
)
