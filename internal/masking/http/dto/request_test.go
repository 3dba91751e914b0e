package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

func TestMaskNameRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		request MaskNameRequest
		wantErr bool
	}{
		{
			name: "valid request",
			request: MaskNameRequest{
				TenantID:   "demo-acme",
				SubjectKey: "user-1",
				Value:      "John Smith",
			},
			wantErr: false,
		},
		{
			name: "valid request with locale and gender",
			request: MaskNameRequest{
				TenantID:   "demo-acme",
				Locale:     "de",
				SubjectKey: "user-1",
				Value:      "John Smith",
				Gender:     domain.GenderFemale,
			},
			wantErr: false,
		},
		{
			name: "missing tenant id",
			request: MaskNameRequest{
				SubjectKey: "user-1",
				Value:      "John Smith",
			},
			wantErr: true,
		},
		{
			name: "blank tenant id",
			request: MaskNameRequest{
				TenantID:   "   ",
				SubjectKey: "user-1",
				Value:      "John Smith",
			},
			wantErr: true,
		},
		{
			name: "missing subject key",
			request: MaskNameRequest{
				TenantID: "demo-acme",
				Value:    "John Smith",
			},
			wantErr: true,
		},
		{
			name: "invalid locale tag",
			request: MaskNameRequest{
				TenantID:   "demo-acme",
				Locale:     "not a locale",
				SubjectKey: "user-1",
			},
			wantErr: true,
		},
		{
			name: "invalid gender",
			request: MaskNameRequest{
				TenantID:   "demo-acme",
				SubjectKey: "user-1",
				Gender:     "unknown",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMaskNameRequest_Options(t *testing.T) {
	request := MaskNameRequest{Gender: domain.GenderMale}
	assert.Equal(t, domain.NameOptions{Gender: domain.GenderMale}, request.Options())
}

func TestMaskEmailRequest_Validate(t *testing.T) {
	preserve := true

	t.Run("valid request", func(t *testing.T) {
		request := MaskEmailRequest{
			TenantID:       "demo-acme",
			SubjectKey:     "user-1",
			Value:          "john@example.com",
			PreserveDomain: &preserve,
		}
		require.NoError(t, request.Validate())
		require.NotNil(t, request.Options().PreserveDomain)
		assert.True(t, *request.Options().PreserveDomain)
	})

	t.Run("missing tenant id", func(t *testing.T) {
		request := MaskEmailRequest{SubjectKey: "user-1"}
		assert.Error(t, request.Validate())
	})

	t.Run("nil preserve domain maps to nil option", func(t *testing.T) {
		request := MaskEmailRequest{TenantID: "demo-acme", SubjectKey: "user-1"}
		assert.Nil(t, request.Options().PreserveDomain)
	})
}

func TestMaskFreeTextRequest_Validate(t *testing.T) {
	t.Run("valid request with redact entities", func(t *testing.T) {
		request := MaskFreeTextRequest{
			TenantID:       "demo-acme",
			SubjectKey:     "user-1",
			Text:           "call 555-867-5309",
			RedactEntities: []string{"email", "phone"},
			MaxLength:      100,
		}
		require.NoError(t, request.Validate())

		opts := request.Options()
		assert.Equal(t, []domain.FieldType{domain.FieldTypeEmail, domain.FieldTypePhone}, opts.RedactEntities)
		assert.Equal(t, 100, opts.MaxLength)
	})

	t.Run("unknown redact entity", func(t *testing.T) {
		request := MaskFreeTextRequest{
			TenantID:       "demo-acme",
			SubjectKey:     "user-1",
			Text:           "hello",
			RedactEntities: []string{"ssn"},
		}
		assert.Error(t, request.Validate())
	})

	t.Run("negative max length", func(t *testing.T) {
		request := MaskFreeTextRequest{
			TenantID:   "demo-acme",
			SubjectKey: "user-1",
			Text:       "hello",
			MaxLength:  -1,
		}
		assert.Error(t, request.Validate())
	})
}

func TestSurrogateIDRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		request := SurrogateIDRequest{TenantID: "demo-acme", SubjectKey: "user-1"}
		assert.NoError(t, request.Validate())
	})

	t.Run("missing subject key", func(t *testing.T) {
		request := SurrogateIDRequest{TenantID: "demo-acme"}
		assert.Error(t, request.Validate())
	})
}

func TestDetectRequest_Validate(t *testing.T) {
	t.Run("valid request", func(t *testing.T) {
		request := DetectRequest{Text: "some text"}
		assert.NoError(t, request.Validate())
	})

	t.Run("missing text", func(t *testing.T) {
		request := DetectRequest{}
		assert.Error(t, request.Validate())
	})
}

func TestMaskRecordsRequest_Validate(t *testing.T) {
	validRecord := RecordPayload{
		SubjectKey: "user-1",
		Fields: []RecordFieldPayload{
			{Name: "full_name", Type: "name", Value: "John Smith"},
		},
	}

	t.Run("valid request", func(t *testing.T) {
		request := MaskRecordsRequest{
			TenantID: "demo-acme",
			Records:  []RecordPayload{validRecord},
		}
		require.NoError(t, request.Validate())

		records := request.DomainRecords()
		require.Len(t, records, 1)
		assert.Equal(t, "user-1", records[0].SubjectKey)
		assert.Equal(t, domain.FieldTypeName, records[0].Fields[0].Type)
	})

	t.Run("missing records", func(t *testing.T) {
		request := MaskRecordsRequest{TenantID: "demo-acme"}
		assert.Error(t, request.Validate())
	})

	t.Run("record without subject key", func(t *testing.T) {
		request := MaskRecordsRequest{
			TenantID: "demo-acme",
			Records: []RecordPayload{
				{Fields: []RecordFieldPayload{{Name: "full_name", Type: "name"}}},
			},
		}
		assert.Error(t, request.Validate())
	})

	t.Run("record with unknown field type", func(t *testing.T) {
		request := MaskRecordsRequest{
			TenantID: "demo-acme",
			Records: []RecordPayload{
				{
					SubjectKey: "user-1",
					Fields:     []RecordFieldPayload{{Name: "ssn", Type: "ssn"}},
				},
			},
		}
		assert.Error(t, request.Validate())
	})

	t.Run("record with unnamed field", func(t *testing.T) {
		request := MaskRecordsRequest{
			TenantID: "demo-acme",
			Records: []RecordPayload{
				{
					SubjectKey: "user-1",
					Fields:     []RecordFieldPayload{{Type: "name"}},
				},
			},
		}
		assert.Error(t, request.Validate())
	})
}
