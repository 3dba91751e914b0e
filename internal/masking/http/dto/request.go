// Package dto provides data transfer objects for HTTP request and response handling.
package dto

import (
	validation "github.com/jellydator/validation"

	"github.com/allisson/pseudonym/internal/masking/domain"
	customValidation "github.com/allisson/pseudonym/internal/validation"
)

// MaskNameRequest contains the parameters for masking a personal name.
type MaskNameRequest struct {
	TenantID   string `json:"tenant_id"`
	Locale     string `json:"locale"`
	SubjectKey string `json:"subject_key"`
	Value      string `json:"value"`
	Gender     string `json:"gender"`
}

// Validate checks if the mask name request is valid.
func (r *MaskNameRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
		validation.Field(&r.Gender, validation.When(r.Gender != "", validation.In(domain.GenderFemale, domain.GenderMale))),
	)
}

// Options maps the request to domain name options.
func (r *MaskNameRequest) Options() domain.NameOptions {
	return domain.NameOptions{Gender: r.Gender}
}

// MaskEmailRequest contains the parameters for masking an email address.
type MaskEmailRequest struct {
	TenantID       string `json:"tenant_id"`
	Locale         string `json:"locale"`
	SubjectKey     string `json:"subject_key"`
	Value          string `json:"value"`
	PreserveDomain *bool  `json:"preserve_domain"`
}

// Validate checks if the mask email request is valid.
func (r *MaskEmailRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
	)
}

// Options maps the request to domain email options.
func (r *MaskEmailRequest) Options() domain.EmailOptions {
	return domain.EmailOptions{PreserveDomain: r.PreserveDomain}
}

// MaskPhoneRequest contains the parameters for masking a phone number.
type MaskPhoneRequest struct {
	TenantID            string `json:"tenant_id"`
	Locale              string `json:"locale"`
	SubjectKey          string `json:"subject_key"`
	Value               string `json:"value"`
	PreserveCountryCode bool   `json:"preserve_country_code"`
}

// Validate checks if the mask phone request is valid.
func (r *MaskPhoneRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
	)
}

// Options maps the request to domain phone options.
func (r *MaskPhoneRequest) Options() domain.PhoneOptions {
	return domain.PhoneOptions{PreserveCountryCode: r.PreserveCountryCode}
}

// MaskAddressRequest contains the parameters for masking a postal address.
type MaskAddressRequest struct {
	TenantID     string `json:"tenant_id"`
	Locale       string `json:"locale"`
	SubjectKey   string `json:"subject_key"`
	Value        string `json:"value"`
	PreserveCity bool   `json:"preserve_city"`
}

// Validate checks if the mask address request is valid.
func (r *MaskAddressRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
	)
}

// Options maps the request to domain address options.
func (r *MaskAddressRequest) Options() domain.AddressOptions {
	return domain.AddressOptions{PreserveCity: r.PreserveCity}
}

// MaskBankIDRequest contains the parameters for masking a bank identifier.
type MaskBankIDRequest struct {
	TenantID            string `json:"tenant_id"`
	Locale              string `json:"locale"`
	SubjectKey          string `json:"subject_key"`
	Value               string `json:"value"`
	PreserveCountryCode *bool  `json:"preserve_country_code"`
}

// Validate checks if the mask bank identifier request is valid.
func (r *MaskBankIDRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
	)
}

// Options maps the request to domain bank identifier options.
func (r *MaskBankIDRequest) Options() domain.BankIDOptions {
	return domain.BankIDOptions{PreserveCountryCode: r.PreserveCountryCode}
}

// MaskFreeTextRequest contains the parameters for masking free-form text.
type MaskFreeTextRequest struct {
	TenantID       string   `json:"tenant_id"`
	Locale         string   `json:"locale"`
	SubjectKey     string   `json:"subject_key"`
	Text           string   `json:"text"`
	RedactEntities []string `json:"redact_entities"`
	MaxLength      int      `json:"max_length"`
}

// Validate checks if the mask free text request is valid.
func (r *MaskFreeTextRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
		validation.Field(&r.MaxLength, validation.Min(0)),
		validation.Field(&r.RedactEntities, validation.Each(validation.By(validFieldType))),
	)
}

// Options maps the request to domain free text options.
func (r *MaskFreeTextRequest) Options() domain.FreeTextOptions {
	entities := make([]domain.FieldType, 0, len(r.RedactEntities))
	for _, e := range r.RedactEntities {
		entities = append(entities, domain.FieldType(e))
	}
	return domain.FreeTextOptions{
		RedactEntities: entities,
		MaxLength:      r.MaxLength,
	}
}

// SurrogateIDRequest contains the parameters for generating a surrogate identifier.
type SurrogateIDRequest struct {
	TenantID   string `json:"tenant_id"`
	SubjectKey string `json:"subject_key"`
}

// Validate checks if the surrogate identifier request is valid.
func (r *SurrogateIDRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.SubjectKey, validation.Required),
	)
}

// DetectRequest contains the text to scan for PII-shaped substrings.
type DetectRequest struct {
	Text string `json:"text"`
}

// Validate checks if the detect request is valid.
func (r *DetectRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Text, validation.Required),
	)
}

// RecordFieldPayload is a single typed value inside a record payload.
type RecordFieldPayload struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value string `json:"value"`
}

// RecordPayload is one row of fields to mask as a unit.
type RecordPayload struct {
	SubjectKey string               `json:"subject_key"`
	Fields     []RecordFieldPayload `json:"fields"`
}

// MaskRecordsRequest contains a batch of records to mask.
type MaskRecordsRequest struct {
	TenantID string          `json:"tenant_id"`
	Locale   string          `json:"locale"`
	Records  []RecordPayload `json:"records"`
}

// Validate checks if the mask records request is valid.
func (r *MaskRecordsRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.TenantID, validation.Required, customValidation.NotBlank),
		validation.Field(&r.Locale, validation.When(r.Locale != "", customValidation.LocaleTag)),
		validation.Field(&r.Records, validation.Required, validation.Each(validation.By(validRecord))),
	)
}

// DomainRecords maps the payload to domain records.
func (r *MaskRecordsRequest) DomainRecords() []domain.Record {
	records := make([]domain.Record, 0, len(r.Records))
	for _, payload := range r.Records {
		fields := make([]domain.RecordField, 0, len(payload.Fields))
		for _, f := range payload.Fields {
			fields = append(fields, domain.RecordField{
				Name:  f.Name,
				Type:  domain.FieldType(f.Type),
				Value: f.Value,
			})
		}
		records = append(records, domain.Record{
			SubjectKey: payload.SubjectKey,
			Fields:     fields,
		})
	}
	return records
}

func validFieldType(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_field_type", "must be a string")
	}
	if !domain.FieldType(s).IsValid() {
		return validation.NewError("validation_field_type", "must be a known field type")
	}
	return nil
}

func validRecord(value interface{}) error {
	record, ok := value.(RecordPayload)
	if !ok {
		return validation.NewError("validation_record", "must be a record")
	}
	if record.SubjectKey == "" {
		return validation.NewError("validation_record", "subject_key is required")
	}
	for _, field := range record.Fields {
		if field.Name == "" {
			return validation.NewError("validation_record", "field name is required")
		}
		if !domain.FieldType(field.Type).IsValid() {
			return validation.NewError("validation_record", "field type must be a known field type")
		}
	}
	return nil
}
