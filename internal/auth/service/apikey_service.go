package service

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/allisson/go-pwdhash"

	apperrors "github.com/allisson/pseudonym/internal/errors"
)

// apiKeyService implements APIKeyService using Argon2id hashing.
type apiKeyService struct {
	hasher *pwdhash.PasswordHasher
}

// NewAPIKeyService creates a new APIKeyService instance using Argon2id hashing.
// Uses the Moderate policy for a balance between security and performance.
func NewAPIKeyService() APIKeyService {
	hasher, err := pwdhash.New(
		pwdhash.WithPolicy(pwdhash.PolicyModerate),
	)
	if err != nil {
		// This should never happen with valid policy
		panic(err)
	}

	return &apiKeyService{
		hasher: hasher,
	}
}

// GenerateKey creates a new cryptographically secure 32-byte random API key.
// The key is base64-encoded for easy transmission.
func (s *apiKeyService) GenerateKey() (plainKey string, hashedKey string, err error) {
	randomBytes := make([]byte, 32)
	if _, err := rand.Read(randomBytes); err != nil {
		return "", "", apperrors.Wrap(err, "failed to generate random key")
	}

	plainKey = base64.URLEncoding.EncodeToString(randomBytes)

	hashedKey, err = s.HashKey(plainKey)
	if err != nil {
		return "", "", err
	}

	return plainKey, hashedKey, nil
}

// HashKey hashes a plaintext API key using Argon2id.
func (s *apiKeyService) HashKey(plainKey string) (string, error) {
	hashedKey, err := s.hasher.Hash([]byte(plainKey))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to hash key")
	}
	return hashedKey, nil
}

// CompareKey performs a constant-time comparison between a plaintext key and its hash.
func (s *apiKeyService) CompareKey(plainKey string, hashedKey string) bool {
	ok, err := s.hasher.Verify([]byte(plainKey), hashedKey)
	if err != nil {
		return false
	}
	return ok
}
