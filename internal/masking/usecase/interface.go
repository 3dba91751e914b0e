// Package usecase defines the interfaces and implementations for masking use cases.
// Use cases orchestrate the masking engine, locale data and statistics to implement
// deterministic pseudonymization across tenants.
package usecase

import (
	"context"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// MaskingUseCase defines the interface for pseudonymization business logic.
// Every operation is scoped to a tenant; the same subject key masked under
// two different tenants yields unrelated outputs. An empty locale selects
// the configured default.
type MaskingUseCase interface {
	MaskName(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.NameOptions) (domain.MaskResult, error)
	MaskEmail(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.EmailOptions) (domain.MaskResult, error)
	MaskPhone(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.PhoneOptions) (domain.MaskResult, error)
	MaskAddress(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.AddressOptions) (domain.MaskResult, error)
	MaskBankIdentifier(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.BankIDOptions) (domain.MaskResult, error)
	MaskFreeText(ctx context.Context, tenantID, locale, text, subjectKey string, opts domain.FreeTextOptions) (domain.MaskResult, error)
	GenerateSurrogateID(ctx context.Context, tenantID, subjectKey string) (string, error)

	// DetectPII scans text for PII-shaped substrings without masking them.
	DetectPII(ctx context.Context, text string) ([]domain.DetectedSpan, error)

	// MaskRecords masks a batch of records concurrently. Malformed field
	// values degrade instead of failing; the batch only errors on invalid
	// subject keys or unknown field types.
	MaskRecords(ctx context.Context, tenantID, locale string, records []domain.Record) ([]domain.RecordResult, error)

	// Stats returns the tenant's masking counters.
	Stats(ctx context.Context, tenantID string) (domain.Stats, error)

	// ResetStats zeroes the tenant's masking counters.
	ResetStats(ctx context.Context, tenantID string) error
}
