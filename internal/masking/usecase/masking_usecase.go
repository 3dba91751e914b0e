package usecase

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/allisson/pseudonym/internal/errors"
	"github.com/allisson/pseudonym/internal/masking/domain"
	"github.com/allisson/pseudonym/internal/masking/service"
)

// Config holds the engine-level settings shared by all tenants.
type Config struct {
	// MasterSalt is the service-level secret all derivations key from.
	MasterSalt []byte
	// DefaultLocale is used when a call does not name a locale.
	DefaultLocale string
	// PreserveEmailDomain is the tenant-wide default for email masking.
	PreserveEmailDomain bool
}

// maskingUseCase implements MaskingUseCase with a lazy per-(tenant, locale)
// masker registry. Tenants share one master salt; isolation comes from the
// tenant id folded into every derivation. All maskers of a tenant report
// into one shared stats tracker regardless of locale.
type maskingUseCase struct {
	cfg     Config
	locales service.LocaleProvider

	mu      sync.RWMutex
	maskers map[string]*service.Masker
	stats   map[string]*service.StatsTracker
}

// NewMaskingUseCase creates a masking use case backed by the given locale
// provider.
func NewMaskingUseCase(cfg Config, locales service.LocaleProvider) MaskingUseCase {
	return &maskingUseCase{
		cfg:     cfg,
		locales: locales,
		maskers: make(map[string]*service.Masker),
		stats:   make(map[string]*service.StatsTracker),
	}
}

// masker returns the cached masker for (tenantID, locale), building it on
// first use. Context construction validates the tenant id and locale, so
// configuration problems surface here and never mid-batch.
func (u *maskingUseCase) masker(tenantID, locale string) (*service.Masker, error) {
	if locale == "" {
		locale = u.cfg.DefaultLocale
	}
	key := tenantID + "|" + locale

	u.mu.RLock()
	masker, ok := u.maskers[key]
	u.mu.RUnlock()
	if ok {
		return masker, nil
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if masker, ok := u.maskers[key]; ok {
		return masker, nil
	}

	mctx, err := domain.NewContext(domain.Config{
		TenantID:            tenantID,
		MasterSalt:          u.cfg.MasterSalt,
		Locale:              locale,
		PreserveEmailDomain: u.cfg.PreserveEmailDomain,
	}, u.locales)
	if err != nil {
		return nil, err
	}

	tracker, ok := u.stats[tenantID]
	if !ok {
		tracker = service.NewStatsTracker()
		u.stats[tenantID] = tracker
	}

	masker, err = service.NewMasker(mctx, u.locales, tracker)
	if err != nil {
		return nil, err
	}

	u.maskers[key] = masker
	return masker, nil
}

func (u *maskingUseCase) MaskName(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.NameOptions) (domain.MaskResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return domain.MaskResult{}, err
	}
	return masker.MaskName(original, subjectKey, opts)
}

func (u *maskingUseCase) MaskEmail(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.EmailOptions) (domain.MaskResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return domain.MaskResult{}, err
	}
	return masker.MaskEmail(original, subjectKey, opts)
}

func (u *maskingUseCase) MaskPhone(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.PhoneOptions) (domain.MaskResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return domain.MaskResult{}, err
	}
	return masker.MaskPhone(original, subjectKey, opts)
}

func (u *maskingUseCase) MaskAddress(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.AddressOptions) (domain.MaskResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return domain.MaskResult{}, err
	}
	return masker.MaskAddress(original, subjectKey, opts)
}

func (u *maskingUseCase) MaskBankIdentifier(ctx context.Context, tenantID, locale, original, subjectKey string, opts domain.BankIDOptions) (domain.MaskResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return domain.MaskResult{}, err
	}
	return masker.MaskBankIdentifier(original, subjectKey, opts)
}

func (u *maskingUseCase) MaskFreeText(ctx context.Context, tenantID, locale, text, subjectKey string, opts domain.FreeTextOptions) (domain.MaskResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return domain.MaskResult{}, err
	}
	return masker.MaskFreeText(text, subjectKey, opts)
}

func (u *maskingUseCase) GenerateSurrogateID(ctx context.Context, tenantID, subjectKey string) (string, error) {
	masker, err := u.masker(tenantID, "")
	if err != nil {
		return "", err
	}
	return masker.GenerateSurrogateID(subjectKey)
}

func (u *maskingUseCase) DetectPII(ctx context.Context, text string) ([]domain.DetectedSpan, error) {
	return service.Detect(text), nil
}

// MaskRecords masks records concurrently, one goroutine per record bounded
// by GOMAXPROCS. The output slice is index-aligned with the input.
func (u *maskingUseCase) MaskRecords(ctx context.Context, tenantID, locale string, records []domain.Record) ([]domain.RecordResult, error) {
	masker, err := u.masker(tenantID, locale)
	if err != nil {
		return nil, err
	}

	results := make([]domain.RecordResult, len(records))

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, record := range records {
		g.Go(func() error {
			result, err := u.maskRecord(masker, record)
			if err != nil {
				return fmt.Errorf("record %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (u *maskingUseCase) maskRecord(masker *service.Masker, record domain.Record) (domain.RecordResult, error) {
	fields := make(map[string]string, len(record.Fields))

	for _, field := range record.Fields {
		var masked string
		var err error

		switch field.Type {
		case domain.FieldTypeName:
			var result domain.MaskResult
			result, err = masker.MaskName(field.Value, record.SubjectKey, domain.NameOptions{})
			masked = result.Masked
		case domain.FieldTypeEmail:
			var result domain.MaskResult
			result, err = masker.MaskEmail(field.Value, record.SubjectKey, domain.EmailOptions{})
			masked = result.Masked
		case domain.FieldTypePhone:
			var result domain.MaskResult
			result, err = masker.MaskPhone(field.Value, record.SubjectKey, domain.PhoneOptions{})
			masked = result.Masked
		case domain.FieldTypeAddress:
			var result domain.MaskResult
			result, err = masker.MaskAddress(field.Value, record.SubjectKey, domain.AddressOptions{})
			masked = result.Masked
		case domain.FieldTypeBankID:
			var result domain.MaskResult
			result, err = masker.MaskBankIdentifier(field.Value, record.SubjectKey, domain.BankIDOptions{})
			masked = result.Masked
		case domain.FieldTypeFreeText:
			var result domain.MaskResult
			result, err = masker.MaskFreeText(field.Value, record.SubjectKey, domain.FreeTextOptions{})
			masked = result.Masked
		case domain.FieldTypeSurrogateID:
			masked, err = masker.GenerateSurrogateID(record.SubjectKey)
		default:
			err = apperrors.Wrap(domain.ErrUnknownFieldType, fmt.Sprintf("field %q has type %q", field.Name, field.Type))
		}

		if err != nil {
			return domain.RecordResult{}, err
		}
		fields[field.Name] = masked
	}

	return domain.RecordResult{
		Hash:   masker.IdentityHash(record.SubjectKey),
		Fields: fields,
	}, nil
}

func (u *maskingUseCase) Stats(ctx context.Context, tenantID string) (domain.Stats, error) {
	u.mu.RLock()
	tracker, ok := u.stats[tenantID]
	u.mu.RUnlock()

	if !ok {
		return domain.Stats{}, apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("no stats for tenant %q", tenantID))
	}
	return tracker.Snapshot(), nil
}

func (u *maskingUseCase) ResetStats(ctx context.Context, tenantID string) error {
	u.mu.RLock()
	tracker, ok := u.stats[tenantID]
	u.mu.RUnlock()

	if !ok {
		return apperrors.Wrap(apperrors.ErrNotFound, fmt.Sprintf("no stats for tenant %q", tenantID))
	}
	tracker.Reset()
	return nil
}
