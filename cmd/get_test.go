package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PolarWolf314/git-credential-pass/internal/configs"
)

// setupHelperTest builds a temp password store with a stub gpg binary and
// points the config lookup at an empty temp directory, so tests never touch
// the real user environment.
func setupHelperTest(t *testing.T) (storeDir, gpg string) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "credpass-cmd-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}

	storeDir = filepath.Join(tmpDir, "store")
	if err := os.MkdirAll(storeDir, 0700); err != nil {
		t.Fatalf("Failed to create store dir: %v", err)
	}

	gpg = filepath.Join(tmpDir, "stub-gpg")
	// The stub stands in for gpg --quiet --batch --decrypt <file>.
	// #nosec G306 -- the stub must be executable.
	if err := os.WriteFile(gpg, []byte("#!/bin/sh\ncat \"$4\"\n"), 0700); err != nil {
		t.Fatalf("Failed to create stub gpg: %v", err)
	}

	originalConfigs := configs.UserConfigsPath
	configs.UserConfigsPath = filepath.Join(tmpDir, "config")
	t.Cleanup(func() {
		configs.UserConfigsPath = originalConfigs
		ResetGlobalState()
		os.RemoveAll(tmpDir)
	})

	return storeDir, gpg
}

// addStoreEntry writes a fake encrypted entry under the store directory.
func addStoreEntry(t *testing.T, storeDir, name, content string) {
	t.Helper()
	path := filepath.Join(storeDir, name+".gpg")
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		t.Fatalf("Failed to create entry dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to create entry: %v", err)
	}
}

// runHelper executes the root command with the given args and stdin.
func runHelper(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := GetRootCmd()
	root.SetIn(strings.NewReader(input))
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestGetCommand_HostOnlyEntry(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)
	addStoreEntry(t, storeDir, "git/github.com", "secret\nuser: alice\n")

	input := "protocol=https\nhost=github.com\npath=cassava/repo.git\n\n"
	out, err := runHelper(t, input, "get", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	want := "password=secret\nusername=alice\n"
	if out != want {
		t.Errorf("Expected %q, got: %q", want, out)
	}
}

func TestGetCommand_MoreSpecificEntryWins(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)
	addStoreEntry(t, storeDir, "git/github.com", "generic\n")
	addStoreEntry(t, storeDir, "git/github.com/cassava", "specific\n")

	input := "protocol=https\nhost=github.com\npath=cassava/repo.git\n\n"
	out, err := runHelper(t, input, "get", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if out != "password=specific\n" {
		t.Errorf("Expected the path-specific entry, got: %q", out)
	}
}

func TestGetCommand_NoMatchIsSilent(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)

	input := "protocol=https\nhost=github.com\n\n"
	out, err := runHelper(t, input, "get", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected no error for a miss, got: %v", err)
	}
	if out != "" {
		t.Errorf("Expected no output for a miss, got: %q", out)
	}
}

func TestGetCommand_CallerUsernameNotEchoed(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)
	addStoreEntry(t, storeDir, "git/github.com", "secret\nuser: alice\n")

	input := "protocol=https\nhost=github.com\nusername=bob\n\n"
	out, err := runHelper(t, input, "get", "--store-dir", storeDir, "--gpg", gpg)
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out != "password=secret\n" {
		t.Errorf("Expected password line only, got: %q", out)
	}
}

func TestGetCommand_InjectedHostSkipsStdin(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)
	addStoreEntry(t, storeDir, "git/gitlab.example.com/group", "s3cret\n")

	out, err := runHelper(t, "", "get",
		"--store-dir", storeDir, "--gpg", gpg,
		"--host", "gitlab.example.com", "--path", "group/repo.git")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if out != "password=s3cret\n" {
		t.Errorf("Expected injected request to resolve, got: %q", out)
	}
}

func TestGetCommand_MissingHost(t *testing.T) {
	storeDir, gpg := setupHelperTest(t)

	_, err := runHelper(t, "protocol=https\n\n", "get", "--store-dir", storeDir, "--gpg", gpg)
	if err == nil {
		t.Errorf("Expected an error for a request without host")
	}
}
