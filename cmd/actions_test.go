package cmd

import (
	"testing"
)

func TestStoreCommand_IsNoOp(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)

	input := "protocol=https\nhost=github.com\nusername=alice\npassword=secret\n\n"
	out, err := runHelper(t, input, "store", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no output from store, got: %q", out)
	}
}

func TestEraseCommand_IsNoOp(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)

	input := "protocol=https\nhost=github.com\n\n"
	out, err := runHelper(t, input, "erase", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no output from erase, got: %q", out)
	}
}

func TestUnknownAction_IsAcceptedSilently(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)

	out, err := runHelper(t, "protocol=https\nhost=github.com\n\n",
		"capability", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected unsupported actions to succeed, got: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no output for unsupported action, got: %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	setupHelperTest(t)

	out, err := runHelper(t, "", "version")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out == "" {
		t.Errorf("Expected version output")
	}
}
