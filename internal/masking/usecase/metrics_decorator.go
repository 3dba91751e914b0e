package usecase

import (
	"context"
	"time"

	"github.com/allisson/pseudonym/internal/masking/domain"
	"github.com/allisson/pseudonym/internal/metrics"
)

// maskingUseCaseWithMetrics decorates MaskingUseCase with metrics instrumentation.
type maskingUseCaseWithMetrics struct {
	next    MaskingUseCase
	metrics metrics.BusinessMetrics
}

// NewMaskingUseCaseWithMetrics wraps a MaskingUseCase with metrics recording.
func NewMaskingUseCaseWithMetrics(useCase MaskingUseCase, m metrics.BusinessMetrics) MaskingUseCase {
	return &maskingUseCaseWithMetrics{
		next:    useCase,
		metrics: m,
	}
}

func (u *maskingUseCaseWithMetrics) record(ctx context.Context, operation string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}

	u.metrics.RecordOperation(ctx, "masking", operation, status)
	u.metrics.RecordDuration(ctx, "masking", operation, time.Since(start), status)
}

func (u *maskingUseCaseWithMetrics) MaskName(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.NameOptions) (domain.MaskResult, error) {
	start := time.Now()
	result, err := u.next.MaskName(ctx, tenantID, locale, original, subjectKey, opts)
	u.record(ctx, "mask_name", start, err)
	return result, err
}

func (u *maskingUseCaseWithMetrics) MaskEmail(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.EmailOptions) (domain.MaskResult, error) {
	start := time.Now()
	result, err := u.next.MaskEmail(ctx, tenantID, locale, original, subjectKey, opts)
	u.record(ctx, "mask_email", start, err)
	return result, err
}

func (u *maskingUseCaseWithMetrics) MaskPhone(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.PhoneOptions) (domain.MaskResult, error) {
	start := time.Now()
	result, err := u.next.MaskPhone(ctx, tenantID, locale, original, subjectKey, opts)
	u.record(ctx, "mask_phone", start, err)
	return result, err
}

func (u *maskingUseCaseWithMetrics) MaskAddress(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.AddressOptions) (domain.MaskResult, error) {
	start := time.Now()
	result, err := u.next.MaskAddress(ctx, tenantID, locale, original, subjectKey, opts)
	u.record(ctx, "mask_address", start, err)
	return result, err
}

func (u *maskingUseCaseWithMetrics) MaskBankIdentifier(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.BankIDOptions) (domain.MaskResult, error) {
	start := time.Now()
	result, err := u.next.MaskBankIdentifier(ctx, tenantID, locale, original, subjectKey, opts)
	u.record(ctx, "mask_bank_identifier", start, err)
	return result, err
}

func (u *maskingUseCaseWithMetrics) MaskFreeText(ctx context.Context, tenantID, locale, text, subjectKey string, opts domain.FreeTextOptions) (domain.MaskResult, error) {
	start := time.Now()
	result, err := u.next.MaskFreeText(ctx, tenantID, locale, text, subjectKey, opts)
	u.record(ctx, "mask_free_text", start, err)
	return result, err
}

func (u *maskingUseCaseWithMetrics) GenerateSurrogateID(ctx context.Context, tenantID, subjectKey string) (string, error) {
	start := time.Now()
	token, err := u.next.GenerateSurrogateID(ctx, tenantID, subjectKey)
	u.record(ctx, "generate_surrogate_id", start, err)
	return token, err
}

func (u *maskingUseCaseWithMetrics) DetectPII(ctx context.Context, text string) ([]domain.DetectedSpan, error) {
	start := time.Now()
	spans, err := u.next.DetectPII(ctx, text)
	u.record(ctx, "detect_pii", start, err)
	return spans, err
}

func (u *maskingUseCaseWithMetrics) MaskRecords(ctx context.Context, tenantID, locale string, records []domain.Record) ([]domain.RecordResult, error) {
	start := time.Now()
	results, err := u.next.MaskRecords(ctx, tenantID, locale, records)
	u.record(ctx, "mask_records", start, err)
	return results, err
}

func (u *maskingUseCaseWithMetrics) Stats(ctx context.Context, tenantID string) (domain.Stats, error) {
	start := time.Now()
	stats, err := u.next.Stats(ctx, tenantID)
	u.record(ctx, "get_stats", start, err)
	return stats, err
}

func (u *maskingUseCaseWithMetrics) ResetStats(ctx context.Context, tenantID string) error {
	start := time.Now()
	err := u.next.ResetStats(ctx, tenantID)
	u.record(ctx, "reset_stats", start, err)
	return err
}
