package domain

import (
	"github.com/allisson/pseudonym/internal/errors"
)

// Masking domain error definitions.
//
// These domain-specific errors wrap standard errors from internal/errors.
// Configuration errors are raised only at context construction; masking
// calls themselves never fail on data-shape problems.
var (
	// ErrMissingTenantID indicates the context config has no tenant id.
	ErrMissingTenantID = errors.Wrap(errors.ErrConfiguration, "tenant id is required")

	// ErrMissingMasterSalt indicates the context config has no master salt.
	ErrMissingMasterSalt = errors.Wrap(errors.ErrConfiguration, "master salt is required")

	// ErrShortMasterSalt indicates the master salt carries too little entropy.
	ErrShortMasterSalt = errors.Wrap(errors.ErrConfiguration, "master salt must be at least 32 bytes")

	// ErrUnsupportedLocale indicates the locale has no dictionary data.
	ErrUnsupportedLocale = errors.Wrap(errors.ErrConfiguration, "unsupported locale")

	// ErrSubjectKeyRequired indicates a masking call was made without a subject key.
	ErrSubjectKeyRequired = errors.Wrap(errors.ErrInvalidInput, "subject key is required")

	// ErrSubjectKeyTooLong indicates the subject key exceeds MaxSubjectKeyLength.
	ErrSubjectKeyTooLong = errors.Wrap(errors.ErrInvalidInput, "subject key is too long")

	// ErrUnknownFieldType indicates an unrecognized field type label.
	ErrUnknownFieldType = errors.Wrap(errors.ErrInvalidInput, "unknown field type")
)
