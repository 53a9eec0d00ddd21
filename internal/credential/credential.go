package credential

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	kerrors "github.com/PolarWolf314/git-credential-pass/internal/errors"
	"github.com/PolarWolf314/git-credential-pass/internal/match"
)

// Request holds the attributes of a credential request. It is constructed
// once by ParseRequest and not mutated afterwards.
type Request struct {
	Protocol string
	Host     string
	Path     string
	Username string
}

// ParseRequest reads "key=value" lines from r until a blank line or end of
// stream. Unknown keys are ignored, matching git's forward-compatibility
// expectations. A line without '=' makes the whole request malformed.
func ParseRequest(r io.Reader) (Request, error) {
	var req Request

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			return Request{}, fmt.Errorf("request line %q: %w", line, kerrors.ErrMalformedRequest)
		}

		switch key {
		case "protocol":
			req.Protocol = value
		case "host":
			req.Host = value
		case "path":
			req.Path = value
		case "username":
			req.Username = value
		}
	}
	if err := scanner.Err(); err != nil {
		return Request{}, fmt.Errorf("reading credential request: %w", err)
	}

	return req, nil
}

// WriteResponse writes the credential as protocol response lines. The
// username line is omitted when the credential carries none.
func WriteResponse(w io.Writer, cred match.Credential) error {
	if _, err := fmt.Fprintf(w, "password=%s\n", cred.Password); err != nil {
		return fmt.Errorf("writing credential response: %w", err)
	}
	if cred.HasUsername {
		if _, err := fmt.Fprintf(w, "username=%s\n", cred.Username); err != nil {
			return fmt.Errorf("writing credential response: %w", err)
		}
	}
	return nil
}
