package store

import "context"

// Store is the capability the lookup pipeline needs from a secret store:
// existence probing and content reading. Reading may spawn a decryption
// subprocess, so it takes a context; existence checks are side-effect free.
type Store interface {
	Exists(name string) bool
	Read(ctx context.Context, name string) (string, error)
}
