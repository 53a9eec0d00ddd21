package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/git-credential-pass/internal/errors"
)

// PassStore reads a standard pass(1) password store: one gpg-encrypted file
// per entry, named <dir>/<entry>.gpg. Decryption is delegated to the gpg
// binary so no key material is handled in-process.
type PassStore struct {
	// Dir is the store root, usually ~/.password-store.
	Dir string
	// Gpg is the decryption executable.
	Gpg string
}

// entryPath maps an entry name to its file, rejecting names that would
// resolve outside the store directory.
func (s *PassStore) entryPath(name string) (string, error) {
	root := filepath.Clean(s.Dir)
	path := filepath.Join(root, name+".gpg")
	if path == root || !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q: %w", name, kerrors.ErrInvalidEntryName)
	}
	return path, nil
}

// Exists reports whether the named entry has an encrypted file in the store.
func (s *PassStore) Exists(name string) bool {
	path, err := s.entryPath(name)
	if err != nil {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Read decrypts the named entry and returns its text content.
//
// Stdin is passed through so an interactive pinentry can prompt the user;
// gpg's stderr is captured for diagnostics and never reaches stdout.
func (s *PassStore) Read(ctx context.Context, name string) (string, error) {
	path, err := s.entryPath(name)
	if err != nil {
		return "", err
	}

	cmd := exec.CommandContext(ctx, s.Gpg, "--quiet", "--batch", "--decrypt", path)
	cmd.Stdin = os.Stdin
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("%s: %w", s.Gpg, kerrors.ErrGpgNotFound)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			msg := strings.TrimSpace(stderr.String())
			if msg == "" {
				msg = exitErr.String()
			}
			return "", fmt.Errorf("entry %s: %s: %w", name, msg, kerrors.ErrDecryptFailed)
		}
		return "", fmt.Errorf("entry %s: %w", name, err)
	}

	return string(out), nil
}

// CountEntries walks the store and counts encrypted entries. Used by the
// doctor command only.
func (s *PassStore) CountEntries() (int, error) {
	count := 0
	err := filepath.WalkDir(s.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// pass keeps git data under .git and extension code under
			// .extensions; neither holds entries.
			if path != s.Dir && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(d.Name(), ".gpg") {
			count++
		}
		return nil
	})
	if err != nil {
		if os.IsNotExist(err) {
			return 0, fmt.Errorf("%s: %w", s.Dir, kerrors.ErrStoreNotFound)
		}
		return 0, err
	}
	return count, nil
}
