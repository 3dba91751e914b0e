package usecase

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/allisson/pseudonym/internal/localedata"
	"github.com/allisson/pseudonym/internal/masking/domain"
	"github.com/allisson/pseudonym/internal/metrics"
)

// mockBusinessMetrics is a mock implementation of metrics.BusinessMetrics for testing.
type mockBusinessMetrics struct {
	mock.Mock
}

func (m *mockBusinessMetrics) RecordOperation(ctx context.Context, domain, operation, status string) {
	m.Called(ctx, domain, operation, status)
}

func (m *mockBusinessMetrics) RecordDuration(
	ctx context.Context,
	domain, operation string,
	duration time.Duration,
	status string,
) {
	m.Called(ctx, domain, operation, duration, status)
}

var _ metrics.BusinessMetrics = (*mockBusinessMetrics)(nil)

func newDecoratedUseCase(t *testing.T, mockMetrics *mockBusinessMetrics) MaskingUseCase {
	t.Helper()
	cfg := Config{
		MasterSalt:    bytes.Repeat([]byte{0x42}, 32),
		DefaultLocale: "en",
	}
	inner := NewMaskingUseCase(cfg, localedata.NewProvider())
	return NewMaskingUseCaseWithMetrics(inner, mockMetrics)
}

// TestNewMaskingUseCaseWithMetrics tests the metrics decorator constructor.
func TestNewMaskingUseCaseWithMetrics(t *testing.T) {
	mockMetrics := &mockBusinessMetrics{}

	decorator := newDecoratedUseCase(t, mockMetrics)

	assert.NotNil(t, decorator)
	assert.Implements(t, (*MaskingUseCase)(nil), decorator)
}

func TestMetricsDecorator_RecordsSuccess(t *testing.T) {
	ctx := context.Background()
	mockMetrics := &mockBusinessMetrics{}
	decorator := newDecoratedUseCase(t, mockMetrics)

	mockMetrics.On("RecordOperation", ctx, "masking", "mask_name", "success").Once()
	mockMetrics.On(
		"RecordDuration", ctx, "masking", "mask_name",
		mock.AnythingOfType("time.Duration"), "success",
	).Once()

	result, err := decorator.MaskName(ctx, "demo-acme", "", "John Smith", "user-1", domain.NameOptions{})
	require.NoError(t, err)
	assert.NotEmpty(t, result.Masked)

	mockMetrics.AssertExpectations(t)
}

func TestMetricsDecorator_RecordsError(t *testing.T) {
	ctx := context.Background()
	mockMetrics := &mockBusinessMetrics{}
	decorator := newDecoratedUseCase(t, mockMetrics)

	mockMetrics.On("RecordOperation", ctx, "masking", "mask_name", "error").Once()
	mockMetrics.On(
		"RecordDuration", ctx, "masking", "mask_name",
		mock.AnythingOfType("time.Duration"), "error",
	).Once()

	_, err := decorator.MaskName(ctx, "demo-acme", "", "John Smith", "", domain.NameOptions{})
	require.Error(t, err)

	mockMetrics.AssertExpectations(t)
}

func TestMetricsDecorator_OperationNames(t *testing.T) {
	ctx := context.Background()
	mockMetrics := &mockBusinessMetrics{}
	decorator := newDecoratedUseCase(t, mockMetrics)

	mockMetrics.On("RecordOperation", ctx, "masking", mock.AnythingOfType("string"), mock.AnythingOfType("string"))
	mockMetrics.On(
		"RecordDuration", ctx, "masking", mock.AnythingOfType("string"),
		mock.AnythingOfType("time.Duration"), mock.AnythingOfType("string"),
	)

	_, _ = decorator.MaskEmail(ctx, "demo-acme", "", "john@example.com", "user-1", domain.EmailOptions{})
	_, _ = decorator.MaskPhone(ctx, "demo-acme", "", "555-867-5309", "user-1", domain.PhoneOptions{})
	_, _ = decorator.MaskAddress(ctx, "demo-acme", "", "1 Main St, Springfield", "user-1", domain.AddressOptions{})
	_, _ = decorator.MaskBankIdentifier(ctx, "demo-acme", "", "DE89370400440532013000", "user-1", domain.BankIDOptions{})
	_, _ = decorator.MaskFreeText(ctx, "demo-acme", "", "call 555-867-5309", "user-1", domain.FreeTextOptions{})
	_, _ = decorator.GenerateSurrogateID(ctx, "demo-acme", "user-1")
	_, _ = decorator.DetectPII(ctx, "no pii here")
	_, _ = decorator.MaskRecords(ctx, "demo-acme", "", nil)
	_, _ = decorator.Stats(ctx, "demo-acme")
	_ = decorator.ResetStats(ctx, "demo-acme")

	for _, operation := range []string{
		"mask_email",
		"mask_phone",
		"mask_address",
		"mask_bank_identifier",
		"mask_free_text",
		"generate_surrogate_id",
		"detect_pii",
		"mask_records",
		"get_stats",
		"reset_stats",
	} {
		mockMetrics.AssertCalled(
			t, "RecordOperation", ctx, "masking", operation, mock.AnythingOfType("string"),
		)
	}
}
