package service

import (
	"encoding/hex"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// Masker is the canonical engine surface: a per-context object whose
// methods implement the per-type masking operations. Construction
// precomputes the HKDF-derived keys once; everything else is a pure
// function of the call inputs, so a Masker may be shared across
// goroutines (the embedded StatsTracker handles its own locking).
type Masker struct {
	mctx    *domain.Context
	locales LocaleProvider
	stats   *StatsTracker

	identityKey []byte
	valueKey    []byte
}

// NewMasker builds a Masker for the given context. A nil stats tracker
// creates a fresh one; passing a shared tracker lets several Maskers
// (e.g. one per locale for the same tenant) report into one set of
// counters.
func NewMasker(mctx *domain.Context, locales LocaleProvider, stats *StatsTracker) (*Masker, error) {
	identityKey, err := deriveKey(mctx.MasterSalt(), identityKeyInfo)
	if err != nil {
		return nil, err
	}

	valueKey, err := deriveKey(mctx.MasterSalt(), valueKeyInfo)
	if err != nil {
		return nil, err
	}

	if stats == nil {
		stats = NewStatsTracker()
	}

	return &Masker{
		mctx:        mctx,
		locales:     locales,
		stats:       stats,
		identityKey: identityKey,
		valueKey:    valueKey,
	}, nil
}

// Context returns the immutable context this masker was built for.
func (m *Masker) Context() *domain.Context {
	return m.mctx
}

// Stats returns the tracker recording this masker's operations.
func (m *Masker) Stats() *StatsTracker {
	return m.stats
}

// IdentityHash returns the subject-level digest shared by every field
// type for this subject under this context.
func (m *Masker) IdentityHash(subjectKey string) string {
	return identityHash(m.identityKey, m.mctx.TenantID(), subjectKey)
}

// source builds the field-scoped deterministic random source for a call.
func (m *Masker) source(subjectKey string, fieldType domain.FieldType) *randSource {
	return newRandSource(workingSeed(m.valueKey, m.mctx.TenantID(), subjectKey, fieldType))
}

// checkSubjectKey validates the caller-supplied subject key. This is the
// only per-call input that can reject a masking call; original values
// never do.
func checkSubjectKey(subjectKey string) error {
	if subjectKey == "" {
		return domain.ErrSubjectKeyRequired
	}
	if len(subjectKey) > domain.MaxSubjectKeyLength {
		return domain.ErrSubjectKeyTooLong
	}
	return nil
}

// lookup consults the locale provider and falls back to an opaque
// deterministic token when the table is missing, so a provider gap
// degrades output quality instead of failing the call.
func (m *Masker) lookup(category string, index uint64, fallback *randSource) string {
	if value := m.locales.Lookup(m.mctx.Locale(), category, index); value != "" {
		return value
	}
	return opaqueToken(fallback, 6)
}

// opaqueToken draws n bytes and renders them as lowercase hex. Used as
// the shape-preserving fallback for malformed input or missing tables.
func opaqueToken(src *randSource, n int) string {
	return hex.EncodeToString(src.Bytes(n))
}
