package configs

import (
	"log"
	"os"
	"path/filepath"
)

// Settings holds the effective configuration for a credential lookup.
// Resolution order is flags > environment > config file > defaults; the
// cmd layer applies flag overrides last.
type Settings struct {
	// StoreDir is the password store root directory.
	StoreDir string
	// Prefix is prepended to every candidate ("git" by default, so entries
	// live under git/ inside the store).
	Prefix string
	// Suffix is appended to every candidate. Empty by default.
	Suffix string
	// GpgBinary is the decryption executable used to read entries.
	GpgBinary string
	// AuditEnabled turns on the JSONL lookup audit log.
	AuditEnabled bool
	// AuditPath is the audit log location.
	AuditPath string
}

var (
	// HelperSettings is the process-wide settings instance.
	HelperSettings *Settings

	// UserConfigsPath is the directory holding config.toml and the default
	// audit log.
	UserConfigsPath string
)

func init() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Fatalf("error getting home directory: %s", err)
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		log.Fatalf("error getting config directory: %s", err)
	}

	storeDir := os.Getenv("PASSWORD_STORE_DIR")
	if storeDir == "" {
		storeDir = filepath.Join(homeDir, ".password-store")
	}

	UserConfigsPath = filepath.Join(configDir, "git-credential-pass")

	HelperSettings = &Settings{
		StoreDir:  storeDir,
		Prefix:    "git",
		Suffix:    "",
		GpgBinary: "gpg",
		AuditPath: filepath.Join(UserConfigsPath, "audit.jsonl"),
	}
}
