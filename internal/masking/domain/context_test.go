package domain_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/pseudonym/internal/errors"
	"github.com/allisson/pseudonym/internal/masking/domain"
)

// fakeLocales supports only the listed tags.
type fakeLocales struct {
	tags []string
}

func (f fakeLocales) Supports(locale string) bool {
	for _, t := range f.tags {
		if t == locale {
			return true
		}
	}
	return false
}

func validConfig() domain.Config {
	return domain.Config{
		TenantID:   "demo-acme",
		MasterSalt: bytes.Repeat([]byte{0x42}, 32),
		Locale:     "en",
	}
}

func TestNewContext(t *testing.T) {
	locales := fakeLocales{tags: []string{"en", "de"}}

	t.Run("Success_ValidConfig", func(t *testing.T) {
		mctx, err := domain.NewContext(validConfig(), locales)

		require.NoError(t, err)
		assert.Equal(t, "demo-acme", mctx.TenantID())
		assert.Equal(t, "en", mctx.Locale())
		assert.False(t, mctx.PreserveEmailDomain())
	})

	t.Run("Success_MasterSaltCopiedOnConstructionAndRead", func(t *testing.T) {
		cfg := validConfig()
		mctx, err := domain.NewContext(cfg, locales)
		require.NoError(t, err)

		// Mutating the caller's slice or the returned copy must not leak
		// into the context.
		cfg.MasterSalt[0] = 0xff
		got := mctx.MasterSalt()
		got[1] = 0xff

		assert.Equal(t, bytes.Repeat([]byte{0x42}, 32), mctx.MasterSalt())
	})

	t.Run("Error_MissingTenantID", func(t *testing.T) {
		cfg := validConfig()
		cfg.TenantID = ""

		_, err := domain.NewContext(cfg, locales)

		assert.ErrorIs(t, err, domain.ErrMissingTenantID)
		assert.True(t, apperrors.Is(err, apperrors.ErrConfiguration))
	})

	t.Run("Error_MissingMasterSalt", func(t *testing.T) {
		cfg := validConfig()
		cfg.MasterSalt = nil

		_, err := domain.NewContext(cfg, locales)

		assert.ErrorIs(t, err, domain.ErrMissingMasterSalt)
	})

	t.Run("Error_ShortMasterSalt", func(t *testing.T) {
		cfg := validConfig()
		cfg.MasterSalt = []byte("too-short")

		_, err := domain.NewContext(cfg, locales)

		assert.ErrorIs(t, err, domain.ErrShortMasterSalt)
	})

	t.Run("Error_UnsupportedLocale", func(t *testing.T) {
		cfg := validConfig()
		cfg.Locale = "xx"

		_, err := domain.NewContext(cfg, locales)

		assert.ErrorIs(t, err, domain.ErrUnsupportedLocale)
	})

	t.Run("Error_EmptyLocale", func(t *testing.T) {
		cfg := validConfig()
		cfg.Locale = ""

		_, err := domain.NewContext(cfg, locales)

		assert.ErrorIs(t, err, domain.ErrUnsupportedLocale)
	})
}

func TestFieldType_IsValid(t *testing.T) {
	for _, ft := range domain.FieldTypes() {
		assert.True(t, ft.IsValid(), string(ft))
	}
	assert.False(t, domain.FieldType("ssn").IsValid())
}
