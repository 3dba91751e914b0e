// Package domain defines the crypto-facing types for key management.
package domain

import "context"

// KMSKeeper abstracts an external key management service used to unwrap
// the master salt. *secrets.Keeper from gocloud.dev implements it.
type KMSKeeper interface {
	Encrypt(ctx context.Context, plaintext []byte) ([]byte, error)
	Decrypt(ctx context.Context, ciphertext []byte) ([]byte, error)
	Close() error
}
