package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/allisson/pseudonym/internal/app"
	"github.com/allisson/pseudonym/internal/config"
	"github.com/allisson/pseudonym/internal/errors"
	"github.com/allisson/pseudonym/internal/masking/domain"
)

// MaskParams holds the inputs for a one-shot masking call from the CLI.
type MaskParams struct {
	TenantID   string
	Locale     string
	FieldType  string
	Value      string
	SubjectKey string
}

type maskOutput struct {
	Masked string `json:"masked"`
	Hash   string `json:"hash"`
}

// RunMask masks a single value from the command line and writes the result
// as JSON. It uses the same engine as the HTTP API, so outputs match what
// the API would return for the same tenant, subject key and master salt.
func RunMask(ctx context.Context, params MaskParams, io IOTuple) error {
	container := app.NewContainer(config.Load())
	logger := container.Logger()
	defer closeContainer(container, logger)

	maskingUseCase, err := container.MaskingUseCase(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to initialize masking engine")
	}

	fieldType := domain.FieldType(params.FieldType)
	if !fieldType.IsValid() {
		return errors.Wrap(errors.ErrInvalidInput, fmt.Sprintf("unknown field type %q", params.FieldType))
	}

	var result domain.MaskResult
	switch fieldType {
	case domain.FieldTypeName:
		result, err = maskingUseCase.MaskName(ctx, params.TenantID, params.Locale, params.Value, params.SubjectKey, domain.NameOptions{})
	case domain.FieldTypeEmail:
		result, err = maskingUseCase.MaskEmail(ctx, params.TenantID, params.Locale, params.Value, params.SubjectKey, domain.EmailOptions{})
	case domain.FieldTypePhone:
		result, err = maskingUseCase.MaskPhone(ctx, params.TenantID, params.Locale, params.Value, params.SubjectKey, domain.PhoneOptions{})
	case domain.FieldTypeAddress:
		result, err = maskingUseCase.MaskAddress(ctx, params.TenantID, params.Locale, params.Value, params.SubjectKey, domain.AddressOptions{})
	case domain.FieldTypeBankID:
		result, err = maskingUseCase.MaskBankIdentifier(ctx, params.TenantID, params.Locale, params.Value, params.SubjectKey, domain.BankIDOptions{})
	case domain.FieldTypeFreeText:
		result, err = maskingUseCase.MaskFreeText(ctx, params.TenantID, params.Locale, params.Value, params.SubjectKey, domain.FreeTextOptions{})
	case domain.FieldTypeSurrogateID:
		var surrogate string
		surrogate, err = maskingUseCase.GenerateSurrogateID(ctx, params.TenantID, params.SubjectKey)
		result = domain.MaskResult{Masked: surrogate}
	}
	if err != nil {
		return errors.Wrap(err, "failed to mask value")
	}

	encoder := json.NewEncoder(io.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(maskOutput{Masked: result.Masked, Hash: result.Hash})
}
