package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKMSKeyURI = "base64key://smGbjm71Nxd1Ig5FS0wj9SlbzAIrnolCz9bQQ6uAhl4="

func TestRunGenerateMasterSalt(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_PlainSalt", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGenerateMasterSalt(ctx, "", io)
		require.NoError(t, err)

		output := out.String()
		require.True(t, strings.HasPrefix(output, `MASTER_SALT="`))

		encoded := strings.TrimSuffix(strings.TrimPrefix(strings.TrimSpace(output), `MASTER_SALT="`), `"`)
		salt, err := base64.StdEncoding.DecodeString(encoded)
		require.NoError(t, err)
		assert.Len(t, salt, masterSaltSize)
	})

	t.Run("Success_KMSWrappedSalt", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGenerateMasterSalt(ctx, testKMSKeyURI, io)
		require.NoError(t, err)

		output := out.String()
		assert.Contains(t, output, `MASTER_SALT_ENCRYPTED="`)
		assert.Contains(t, output, `KMS_KEY_URI="`+testKMSKeyURI+`"`)
		assert.NotContains(t, output, `MASTER_SALT="`)
	})

	t.Run("Success_DistinctSalts", func(t *testing.T) {
		var first, second bytes.Buffer

		require.NoError(t, RunGenerateMasterSalt(ctx, "", IOTuple{Writer: &first}))
		require.NoError(t, RunGenerateMasterSalt(ctx, "", IOTuple{Writer: &second}))

		assert.NotEqual(t, first.String(), second.String())
	})

	t.Run("Error_InvalidKMSKeyURI", func(t *testing.T) {
		var out bytes.Buffer
		io := IOTuple{Writer: &out}

		err := RunGenerateMasterSalt(ctx, "invalid-scheme://key", io)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to open kms keeper")
	})
}
