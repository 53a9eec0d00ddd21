package match

import "testing"

func TestExtractCredential_PasswordAndUsername(t *testing.T) {
	cred := ExtractCredential("secret\nuser: alice\n", "")
	if cred.Password != "secret" {
		t.Errorf("Expected password secret, got: %q", cred.Password)
	}
	if !cred.HasUsername || cred.Username != "alice" {
		t.Errorf("Expected username alice, got: %q (has=%t)", cred.Username, cred.HasUsername)
	}
}

func TestExtractCredential_PasswordOnly(t *testing.T) {
	cred := ExtractCredential("secret\n", "")
	if cred.Password != "secret" {
		t.Errorf("Expected password secret, got: %q", cred.Password)
	}
	if cred.HasUsername {
		t.Errorf("Expected no username, got: %q", cred.Username)
	}
}

func TestExtractCredential_CallerUsernameSkipsScan(t *testing.T) {
	// A caller-supplied username is never overridden and never re-emitted.
	cred := ExtractCredential("secret\nuser: alice\n", "bob")
	if cred.Password != "secret" {
		t.Errorf("Expected password secret, got: %q", cred.Password)
	}
	if cred.HasUsername {
		t.Errorf("Expected no username in result, got: %q", cred.Username)
	}
}

func TestExtractCredential_UsernameKeyword(t *testing.T) {
	cred := ExtractCredential("secret\nusername:dave\n", "")
	if !cred.HasUsername || cred.Username != "dave" {
		t.Errorf("Expected username dave, got: %q (has=%t)", cred.Username, cred.HasUsername)
	}
}

func TestExtractCredential_FirstMatchOnly(t *testing.T) {
	cred := ExtractCredential("secret\nuser: first\nuser: second\n", "")
	if cred.Username != "first" {
		t.Errorf("Expected username first, got: %q", cred.Username)
	}
}

func TestExtractCredential_CaseSensitive(t *testing.T) {
	cred := ExtractCredential("secret\nUser: alice\n", "")
	if cred.HasUsername {
		t.Errorf("Expected no username for capitalized key, got: %q", cred.Username)
	}
}

func TestExtractCredential_PasswordLineDoubleInterpretation(t *testing.T) {
	// The scan includes the password line, so a password shaped like a
	// user: line is also reported as the username.
	cred := ExtractCredential("user: carol\n", "")
	if cred.Password != "user: carol" {
		t.Errorf("Expected password to be the raw first line, got: %q", cred.Password)
	}
	if !cred.HasUsername || cred.Username != "carol" {
		t.Errorf("Expected username carol, got: %q (has=%t)", cred.Username, cred.HasUsername)
	}
}

func TestExtractCredential_EmptyContent(t *testing.T) {
	cred := ExtractCredential("", "")
	if cred.Password != "" {
		t.Errorf("Expected empty password, got: %q", cred.Password)
	}
	if cred.HasUsername {
		t.Errorf("Expected no username, got: %q", cred.Username)
	}
}

func TestExtractCredential_EmptyUsernameValue(t *testing.T) {
	cred := ExtractCredential("secret\nuser:\n", "")
	if !cred.HasUsername || cred.Username != "" {
		t.Errorf("Expected empty-but-present username, got: %q (has=%t)", cred.Username, cred.HasUsername)
	}
}
