package commands

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	"github.com/allisson/pseudonym/internal/crypto/service"
	"github.com/allisson/pseudonym/internal/errors"
)

const masterSaltSize = 32

// RunGenerateMasterSalt generates a new random master salt and prints it in
// environment variable format. When kmsKeyURI is provided, the salt is
// encrypted with the KMS key and printed as MASTER_SALT_ENCRYPTED instead.
func RunGenerateMasterSalt(ctx context.Context, kmsKeyURI string, io IOTuple) error {
	salt := make([]byte, masterSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return errors.Wrap(err, "failed to generate random salt")
	}
	defer func() {
		for i := range salt {
			salt[i] = 0
		}
	}()

	if kmsKeyURI == "" {
		fmt.Fprintf(io.Writer, "MASTER_SALT=\"%s\"\n", base64.StdEncoding.EncodeToString(salt))
		return nil
	}

	kmsService := service.NewKMSService()
	keeper, err := kmsService.OpenKeeper(ctx, kmsKeyURI)
	if err != nil {
		return errors.Wrap(err, "failed to open kms keeper")
	}
	defer func() {
		_ = keeper.Close()
	}()

	ciphertext, err := keeper.Encrypt(ctx, salt)
	if err != nil {
		return errors.Wrap(err, "failed to encrypt salt")
	}

	fmt.Fprintf(io.Writer, "MASTER_SALT_ENCRYPTED=\"%s\"\n", base64.StdEncoding.EncodeToString(ciphertext))
	fmt.Fprintf(io.Writer, "KMS_KEY_URI=\"%s\"\n", kmsKeyURI)
	return nil
}
