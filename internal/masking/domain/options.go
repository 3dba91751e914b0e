package domain

// NameOptions adjusts name masking for one call.
type NameOptions struct {
	// Gender forces the gender bucket instead of drawing it.
	// Accepted values: GenderFemale, GenderMale. Empty means draw.
	Gender string
}

// EmailOptions adjusts email masking for one call.
type EmailOptions struct {
	// PreserveDomain overrides the context default when non-nil.
	PreserveDomain *bool
}

// PhoneOptions adjusts phone masking for one call.
type PhoneOptions struct {
	// PreserveCountryCode keeps the original international prefix and
	// replaces only the subscriber digits.
	PreserveCountryCode bool
}

// AddressOptions adjusts address masking for one call.
type AddressOptions struct {
	// PreserveCity retains the original city/country suffix and replaces
	// only street-level detail.
	PreserveCity bool
}

// BankIDOptions adjusts bank identifier masking for one call.
type BankIDOptions struct {
	// PreserveCountryCode keeps the original 2-letter country code.
	// Nil defaults to true; the country code is the part of a bank
	// identifier that carries format semantics rather than identity.
	PreserveCountryCode *bool
}

// FreeTextOptions adjusts free-text masking for one call.
type FreeTextOptions struct {
	// RedactEntities selects field types replaced with bracketed
	// placeholder tokens. Detected types not listed here are masked
	// through the matching per-type masker instead, so referential
	// consistency extends into free text.
	RedactEntities []FieldType

	// MaxLength truncates the result after substitution. Zero means no
	// truncation. A placeholder token is never split by truncation.
	MaxLength int
}

// RedactsType reports whether the given type is selected for placeholder
// redaction.
func (o FreeTextOptions) RedactsType(ft FieldType) bool {
	for _, t := range o.RedactEntities {
		if t == ft {
			return true
		}
	}
	return false
}
