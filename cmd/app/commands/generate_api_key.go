package commands

import (
	"fmt"

	"github.com/allisson/pseudonym/internal/auth/service"
	"github.com/allisson/pseudonym/internal/errors"
)

// RunGenerateAPIKey generates a new API key and prints the plain key together
// with its hash. The plain key is shown only once; the hash goes into the
// API_KEY_HASHES environment variable.
func RunGenerateAPIKey(io IOTuple) error {
	keyService := service.NewAPIKeyService()

	key, hash, err := keyService.GenerateKey()
	if err != nil {
		return errors.Wrap(err, "failed to generate api key")
	}

	fmt.Fprintf(io.Writer, "API key (store it now, it will not be shown again):\n%s\n\n", key)
	fmt.Fprintf(io.Writer, "API_KEY_HASHES=\"%s\"\n", hash)
	return nil
}
