package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/allisson/pseudonym/internal/masking/domain"
)

const (
	// HKDF info strings, versioned for future algorithm changes.
	// Identity hashing and value derivation use separate keys so the
	// published identity hash cannot be related to any working seed.
	identityKeyInfo = "identity-hash-v1"
	valueKeyInfo    = "value-derivation-v1"

	// seedSize is the derived key and working seed length in bytes.
	seedSize = 32
)

// deriveKey expands the master salt into a 32-byte purpose-bound key
// using HKDF-SHA256.
func deriveKey(masterSalt []byte, info string) ([]byte, error) {
	reader := hkdf.New(sha256.New, masterSalt, nil, []byte(info))

	key := make([]byte, seedSize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, err
	}

	return key, nil
}

// identityHash computes the subject-level digest shared across all field
// types: HMAC-SHA256 over (tenant, subject), hex-encoded. The original
// PII value never participates.
func identityHash(identityKey []byte, tenantID, subjectKey string) string {
	mac := hmac.New(sha256.New, identityKey)
	mac.Write(canonicalMessage(tenantID, subjectKey))
	return hex.EncodeToString(mac.Sum(nil))
}

// workingSeed computes the field-scoped 32-byte seed: HMAC-SHA256 over
// (tenant, subject, field type). Folding the field type in means two
// field types never share derived randomness for the same subject.
func workingSeed(valueKey []byte, tenantID, subjectKey string, fieldType domain.FieldType) []byte {
	mac := hmac.New(sha256.New, valueKey)
	mac.Write(canonicalMessage(tenantID, subjectKey, string(fieldType)))
	return mac.Sum(nil)
}

// canonicalMessage encodes the parts with 4-byte big-endian length
// prefixes so adjacent fields cannot be reinterpreted across their
// boundary ("ab"+"c" must not collide with "a"+"bc").
func canonicalMessage(parts ...string) []byte {
	size := 0
	for _, part := range parts {
		size += 4 + len(part)
	}

	buf := make([]byte, 0, size)
	for _, part := range parts {
		buf = appendLengthPrefixed(buf, []byte(part))
	}
	return buf
}

// appendLengthPrefixed adds a 4-byte big-endian length prefix followed by data.
func appendLengthPrefixed(buf, data []byte) []byte {
	lengthBytes := make([]byte, 4)
	binary.BigEndian.PutUint32(lengthBytes, uint32(len(data)))
	buf = append(buf, lengthBytes...)
	return append(buf, data...)
}
