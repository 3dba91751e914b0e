package service

import (
	"context"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/pseudonym/internal/errors"
)

// localKeyURI is a gocloud.dev localsecrets URI with a fixed test key.
const localKeyURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

func TestMasterSaltService_Resolve(t *testing.T) {
	ctx := context.Background()
	kms := NewKMSService()

	t.Run("Success_PlainBase64", func(t *testing.T) {
		salt := []byte("0123456789abcdef0123456789abcdef")
		svc := NewMasterSaltService(MasterSaltConfig{
			PlainBase64: base64.StdEncoding.EncodeToString(salt),
		}, kms)

		resolved, err := svc.Resolve(ctx)

		require.NoError(t, err)
		assert.Equal(t, salt, resolved)
	})

	t.Run("Success_EncryptedWithLocalKeeper", func(t *testing.T) {
		salt := []byte("0123456789abcdef0123456789abcdef")

		keeper, err := kms.OpenKeeper(ctx, localKeyURI)
		require.NoError(t, err)
		ciphertext, err := keeper.Encrypt(ctx, salt)
		require.NoError(t, err)
		require.NoError(t, keeper.Close())

		svc := NewMasterSaltService(MasterSaltConfig{
			EncryptedBase64: base64.StdEncoding.EncodeToString(ciphertext),
			KMSKeyURI:       localKeyURI,
		}, kms)

		resolved, err := svc.Resolve(ctx)

		require.NoError(t, err)
		assert.Equal(t, salt, resolved)
	})

	t.Run("Error_InvalidBase64", func(t *testing.T) {
		svc := NewMasterSaltService(MasterSaltConfig{PlainBase64: "%%%"}, kms)

		_, err := svc.Resolve(ctx)

		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("Error_EncryptedWithoutKeyURI", func(t *testing.T) {
		svc := NewMasterSaltService(MasterSaltConfig{EncryptedBase64: "aGVsbG8="}, kms)

		_, err := svc.Resolve(ctx)

		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})

	t.Run("Error_NothingConfigured", func(t *testing.T) {
		svc := NewMasterSaltService(MasterSaltConfig{}, kms)

		_, err := svc.Resolve(ctx)

		assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	})
}
