// Package service provides authentication-related services for API key
// generation and verification. Implements secure random key generation and
// Argon2id hashing so plaintext keys are never stored or logged.
package service

// APIKeyService defines the interface for API key generation and verification.
type APIKeyService interface {
	// GenerateKey creates a new random API key and its Argon2id hash.
	// The plaintext is shown to the operator once; only the hash is kept.
	GenerateKey() (plainKey string, hashedKey string, err error)

	// HashKey hashes a plaintext API key using Argon2id.
	HashKey(plainKey string) (hashedKey string, err error)

	// CompareKey performs a constant-time comparison between a plaintext key and its hash.
	CompareKey(plainKey string, hashedKey string) bool
}
