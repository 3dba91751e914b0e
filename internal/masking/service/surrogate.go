package service

import (
	"github.com/google/uuid"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

// GenerateSurrogateID returns a deterministic UUID-shaped token: 16
// drawn bytes with the version nibble forced to 4 and the variant bits
// forced to the RFC 4122 layout, so the token is syntactically a valid
// version-4 identifier while staying stable for the subject key.
func (m *Masker) GenerateSurrogateID(subjectKey string) (string, error) {
	if err := checkSubjectKey(subjectKey); err != nil {
		return "", err
	}

	src := m.source(subjectKey, domain.FieldTypeSurrogateID)

	raw := src.Bytes(16)
	raw[6] = (raw[6] & 0x0f) | 0x40
	raw[8] = (raw[8] & 0x3f) | 0x80

	id, err := uuid.FromBytes(raw)
	if err != nil {
		return "", err
	}

	m.stats.Record(domain.FieldTypeSurrogateID, m.IdentityHash(subjectKey))
	return id.String(), nil
}
