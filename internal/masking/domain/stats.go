package domain

// Stats is a point-in-time snapshot of one context's masking counters.
// The unique-subject set tracks identity hashes, never subject keys.
type Stats struct {
	TotalMasked    uint64
	DegradedInputs uint64
	ByType         map[FieldType]uint64
	UniqueSubjects int
}
