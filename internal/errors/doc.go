// Package errors provides typed error values for git-credential-pass.
//
// Using sentinel errors allows callers to handle specific error conditions
// programmatically with errors.Is() rather than string matching.
//
// # Error Categories
//
// Errors are grouped by category:
//
//   - Store errors: store directory or entry problems (ErrStoreNotFound)
//   - Decryption errors: external gpg failures (ErrGpgNotFound, ErrDecryptFailed)
//   - Protocol errors: malformed requests (ErrMalformedRequest)
//
// # Usage
//
// Wrap errors with additional context:
//
//	return fmt.Errorf("entry %s: %w", name, errors.ErrDecryptFailed)
//
// Handle in the CLI layer:
//
//	if errors.Is(err, kerrors.ErrGpgNotFound) {
//	    // Suggest installing gpg
//	}
package errors
