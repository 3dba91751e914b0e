package domain

// MaskResult is the outcome of a single masking call.
//
// Hash is the subject's identity digest, hex-encoded. It is identical
// across all field types and calls for the same (tenant, subject key,
// master salt) triple, which is how downstream systems join masked
// records without ever seeing the original value.
type MaskResult struct {
	Masked string
	Hash   string
}

// DetectedSpan is a PII-shaped substring found in free text. Ephemeral:
// produced and consumed within a single detector call.
type DetectedSpan struct {
	Type     FieldType
	Start    int
	End      int
	RawMatch string
}

// Record is one row of fields to mask as a unit, all linked to one subject.
type Record struct {
	SubjectKey string
	Fields     []RecordField
}

// RecordField is a single typed value inside a Record.
type RecordField struct {
	Name  string
	Type  FieldType
	Value string
}

// RecordResult holds the masked fields of one record plus the subject's
// identity hash.
type RecordResult struct {
	Hash   string
	Fields map[string]string
}
