package match

import (
	"regexp"
	"strings"
)

// userLinePattern matches a "user:" or "username:" line and captures the
// trailing value. Case-sensitive on purpose.
var userLinePattern = regexp.MustCompile(`^user(?:name)?:[ \t]*(.*)$`)

// Credential holds the fields extracted from a matched store entry.
// HasUsername distinguishes an absent username from an empty one, so the
// protocol writer can omit the field entirely.
type Credential struct {
	Password    string
	Username    string
	HasUsername bool
}

// ExtractCredential parses the raw text of a matched entry.
//
// The password is the first line verbatim, possibly empty. The username is
// taken from the first "user:" or "username:" line anywhere in the content.
// The scan deliberately includes the password line itself, so a password of
// the form "user: ..." is also reported as the username.
//
// When the request already supplied a username, the scan is skipped and no
// username is emitted; a caller-supplied value is never overridden.
func ExtractCredential(content, requestUsername string) Credential {
	lines := strings.Split(content, "\n")
	cred := Credential{Password: lines[0]}

	if requestUsername != "" {
		return cred
	}

	for _, line := range lines {
		if m := userLinePattern.FindStringSubmatch(line); m != nil {
			cred.Username = m[1]
			cred.HasUsername = true
			break
		}
	}
	return cred
}
