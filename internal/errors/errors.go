package errors

import "errors"

// Store errors indicate problems reaching or reading the password store.
var (
	// ErrStoreNotFound indicates the password store directory does not exist.
	ErrStoreNotFound = errors.New("password store not found")

	// ErrInvalidEntryName indicates an entry name would escape the store directory.
	ErrInvalidEntryName = errors.New("invalid store entry name")

	// ErrEntryReadFailed indicates a store entry exists but could not be read.
	ErrEntryReadFailed = errors.New("failed to read store entry")
)

// Decryption errors indicate failures of the external gpg invocation.
var (
	// ErrGpgNotFound indicates the gpg binary could not be located.
	ErrGpgNotFound = errors.New("gpg binary not found")

	// ErrDecryptFailed indicates gpg ran but could not decrypt the entry.
	ErrDecryptFailed = errors.New("failed to decrypt store entry")
)

// Protocol errors indicate a malformed credential request.
var (
	// ErrMalformedRequest indicates a request line was not a key=value pair.
	ErrMalformedRequest = errors.New("malformed credential request")

	// ErrMissingHost indicates the request carried no host attribute.
	ErrMissingHost = errors.New("credential request has no host")
)
