package gateways

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ProtonMail/go-crypto/openpgp"
)

// SignatureVerifier checks a detached GPG signature over the source
// artifact before the step mutates anything. ProtonMail's go-crypto is
// a maintained fork of golang.org/x/crypto/openpgp.
type SignatureVerifier struct {
	keyring openpgp.EntityList
}

// NewSignatureVerifier creates a verifier with an empty keyring
func NewSignatureVerifier() *SignatureVerifier {
	return &SignatureVerifier{
		keyring: make(openpgp.EntityList, 0),
	}
}

// ImportKeyFiles loads public keys from the given paths. Armored keys
// are tried first, then binary keyrings.
func (v *SignatureVerifier) ImportKeyFiles(paths []string) error {
	if len(paths) == 0 {
		return fmt.Errorf("no key files provided")
	}

	for _, path := range paths {
		//nolint:gosec // G304: Key path comes from step configuration
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read key file %s: %w", path, err)
		}

		entities, err := openpgp.ReadArmoredKeyRing(bytes.NewReader(data))
		if err != nil {
			entities, err = openpgp.ReadKeyRing(bytes.NewReader(data))
			if err != nil {
				return fmt.Errorf("failed to parse key file %s: %w", path, err)
			}
		}

		v.keyring = append(v.keyring, entities...)
	}

	return nil
}

// VerifyDetached checks the detached signature at signaturePath over
// the file at filePath against the imported keyring.
func (v *SignatureVerifier) VerifyDetached(filePath, signaturePath string) error {
	if len(v.keyring) == 0 {
		return fmt.Errorf("no keys imported, cannot verify signature")
	}

	//nolint:gosec // G304: File path is the step's source artifact
	signed, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open signed file %s: %w", filePath, err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer signed.Close()

	//nolint:gosec // G304: Signature path comes from step configuration
	sigData, err := os.ReadFile(signaturePath)
	if err != nil {
		return fmt.Errorf("failed to read signature %s: %w", signaturePath, err)
	}

	_, err = openpgp.CheckArmoredDetachedSignature(v.keyring, signed, bytes.NewReader(sigData), nil)
	if err == nil {
		return nil
	}

	// Retry as a binary signature; release pipelines ship both kinds.
	if _, seekErr := signed.Seek(0, 0); seekErr != nil {
		return fmt.Errorf("failed to rewind signed file: %w", seekErr)
	}
	if _, binErr := openpgp.CheckDetachedSignature(v.keyring, signed, bytes.NewReader(sigData), nil); binErr != nil {
		return fmt.Errorf("signature verification failed for %s: %w", filePath, err)
	}

	return nil
}
