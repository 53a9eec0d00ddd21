// Package configs manages configuration for git-credential-pass.
//
// Configuration is resolved in order of precedence:
//
//  1. Command-line flags (applied by the cmd layer)
//  2. Environment (PASSWORD_STORE_DIR)
//  3. config.toml in os.UserConfigDir()/git-credential-pass/
//  4. Built-in defaults (~/.password-store, prefix "git", gpg)
//
// # Config File
//
// The optional config.toml looks like:
//
//	[store]
//	dir = "/home/me/.password-store"
//	prefix = "git"
//	suffix = ""
//	gpg = "gpg2"
//
//	[audit]
//	enabled = false
//	path = ""
//
// A missing config file is not an error. HelperSettings is initialized at
// startup with environment and defaults; call LoadFileConfig().Apply() to
// overlay the file values.
package configs
