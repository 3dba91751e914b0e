package commands

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func setMaskEnv(t *testing.T) {
	t.Helper()
	salt := bytes.Repeat([]byte{0x42}, 32)
	t.Setenv("MASTER_SALT", base64.StdEncoding.EncodeToString(salt))
	t.Setenv("METRICS_ENABLED", "false")
}

func TestRunMask(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_MaskName", func(t *testing.T) {
		setMaskEnv(t)
		var out bytes.Buffer
		params := MaskParams{
			TenantID:   "demo-acme",
			FieldType:  "name",
			Value:      "John Smith",
			SubjectKey: "user-1",
		}

		err := RunMask(ctx, params, IOTuple{Writer: &out})
		require.NoError(t, err)

		var result maskOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.NotEmpty(t, result.Masked)
		require.NotEqual(t, "John Smith", result.Masked)
		require.NotEmpty(t, result.Hash)
	})

	t.Run("Success_Deterministic", func(t *testing.T) {
		setMaskEnv(t)
		params := MaskParams{
			TenantID:   "demo-acme",
			FieldType:  "email",
			Value:      "john@example.com",
			SubjectKey: "user-1",
		}

		var first, second bytes.Buffer
		require.NoError(t, RunMask(ctx, params, IOTuple{Writer: &first}))
		require.NoError(t, RunMask(ctx, params, IOTuple{Writer: &second}))
		require.Equal(t, first.String(), second.String())
	})

	t.Run("Success_SurrogateID", func(t *testing.T) {
		setMaskEnv(t)
		var out bytes.Buffer
		params := MaskParams{
			TenantID:   "demo-acme",
			FieldType:  "surrogate-id",
			SubjectKey: "user-1",
		}

		err := RunMask(ctx, params, IOTuple{Writer: &out})
		require.NoError(t, err)

		var result maskOutput
		require.NoError(t, json.Unmarshal(out.Bytes(), &result))
		require.Len(t, result.Masked, 36)
	})

	t.Run("Error_UnknownFieldType", func(t *testing.T) {
		setMaskEnv(t)
		var out bytes.Buffer
		params := MaskParams{
			TenantID:   "demo-acme",
			FieldType:  "ssn",
			Value:      "123",
			SubjectKey: "user-1",
		}

		err := RunMask(ctx, params, IOTuple{Writer: &out})
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown field type")
	})

	t.Run("Error_MissingMasterSalt", func(t *testing.T) {
		t.Setenv("MASTER_SALT", "")
		t.Setenv("MASTER_SALT_ENCRYPTED", "")
		t.Setenv("METRICS_ENABLED", "false")
		var out bytes.Buffer
		params := MaskParams{
			TenantID:   "demo-acme",
			FieldType:  "name",
			Value:      "John Smith",
			SubjectKey: "user-1",
		}

		err := RunMask(ctx, params, IOTuple{Writer: &out})
		require.Error(t, err)
	})
}
