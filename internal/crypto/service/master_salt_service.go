package service

import (
	"context"
	"encoding/base64"

	apperrors "github.com/allisson/pseudonym/internal/errors"
)

// MasterSaltService resolves the master salt the engine derives every key
// from. The salt is supplied either as a plaintext base64 value or as a
// KMS-wrapped ciphertext that is unwrapped at startup.
type MasterSaltService interface {
	Resolve(ctx context.Context) ([]byte, error)
}

// MasterSaltConfig carries the possible salt sources. Exactly one of
// PlainBase64 or EncryptedBase64 must be set; EncryptedBase64 also
// requires KMSKeyURI.
type MasterSaltConfig struct {
	PlainBase64     string
	EncryptedBase64 string
	KMSKeyURI       string
}

type masterSaltService struct {
	cfg MasterSaltConfig
	kms KMSService
}

// NewMasterSaltService creates a MasterSaltService for the given sources.
func NewMasterSaltService(cfg MasterSaltConfig, kms KMSService) MasterSaltService {
	return &masterSaltService{cfg: cfg, kms: kms}
}

// Resolve returns the plaintext master salt bytes. Configuration problems
// are hard failures at startup; nothing here runs mid-batch.
func (s *masterSaltService) Resolve(ctx context.Context) ([]byte, error) {
	switch {
	case s.cfg.PlainBase64 != "":
		salt, err := base64.StdEncoding.DecodeString(s.cfg.PlainBase64)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "master salt is not valid base64")
		}
		return salt, nil

	case s.cfg.EncryptedBase64 != "":
		if s.cfg.KMSKeyURI == "" {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "encrypted master salt requires a KMS key URI")
		}

		ciphertext, err := base64.StdEncoding.DecodeString(s.cfg.EncryptedBase64)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "encrypted master salt is not valid base64")
		}

		keeper, err := s.kms.OpenKeeper(ctx, s.cfg.KMSKeyURI)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, err.Error())
		}
		defer keeper.Close()

		salt, err := keeper.Decrypt(ctx, ciphertext)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrConfiguration, "failed to decrypt master salt")
		}
		return salt, nil

	default:
		return nil, apperrors.Wrap(apperrors.ErrConfiguration, "no master salt configured")
	}
}
