// Package domain defines the pseudonymization engine's core models: field
// types, the per-tenant masking context, results, and statistics.
package domain

// FieldType labels the kind of value being masked. It is used purely for
// domain separation inside seed derivation: two field types never share
// derived randomness, even for the same subject key.
type FieldType string

// Supported field types.
const (
	FieldTypeName        FieldType = "name"
	FieldTypeEmail       FieldType = "email"
	FieldTypePhone       FieldType = "phone"
	FieldTypeAddress     FieldType = "address"
	FieldTypeBankID      FieldType = "bank-id"
	FieldTypeFreeText    FieldType = "free-text"
	FieldTypeSurrogateID FieldType = "surrogate-id"
)

// FieldTypes returns all supported field types.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeName,
		FieldTypeEmail,
		FieldTypePhone,
		FieldTypeAddress,
		FieldTypeBankID,
		FieldTypeFreeText,
		FieldTypeSurrogateID,
	}
}

// IsValid reports whether the field type is one of the supported labels.
func (ft FieldType) IsValid() bool {
	switch ft {
	case FieldTypeName, FieldTypeEmail, FieldTypePhone, FieldTypeAddress,
		FieldTypeBankID, FieldTypeFreeText, FieldTypeSurrogateID:
		return true
	default:
		return false
	}
}

// Gender buckets for name masking. The bucket is normally drawn
// deterministically; callers may override it via NameOptions.
const (
	GenderFemale = "female"
	GenderMale   = "male"
)

const (
	// MinMasterSaltLength is the minimum master salt size in bytes.
	// The salt is HMAC key material, so it must carry at least 256 bits.
	MinMasterSaltLength = 32

	// MaxSubjectKeyLength bounds caller-chosen subject keys.
	MaxSubjectKeyLength = 512
)
