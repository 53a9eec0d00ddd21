package cmd

import (
	"io"
	"strings"

	"github.com/PolarWolf314/git-credential-pass/internal/configs"
	logger "github.com/PolarWolf314/git-credential-pass/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	verbose bool
	debug   bool

	storeDir  string
	prefix    string
	suffix    string
	gpgBinary string

	Logger logger.Logger

	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "git-credential-pass <action>",
		Short: "A git credential helper backed by the pass password store",
		Long: `git-credential-pass resolves git credential requests against a pass(1)
password store.

For a request with host and path, entry names are tried from most to least
specific: the host is shortened one leading label at a time (never below the
primary domain) and the path one trailing segment at a time, down to a
host-only entry. The first entry that exists in the store answers the
request: its first line is the password, and a "user:" or "username:" line
supplies the username.

Entries live under a prefix inside the store, git/ by default:

  git/github.com/cassava      # host and path
  git/github.com              # host only
  git/host#8080               # '#' may stand in for ':' in port entries

Configure git to use the helper with:

  git config --global credential.helper pass

Actions other than "get" are accepted and ignored, as gitcredentials(7)
expects from helpers that do not support them.`,
		// Unknown actions must reach Run below instead of failing arg
		// validation, per the helper protocol's tolerance for them.
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			Logger = logger.Logger{Verbose: verbose, Debug: debug}

			fileConfig, err := configs.LoadFileConfig()
			if err != nil {
				return err
			}
			fileConfig.Apply(configs.HelperSettings)
			applyFlagOverrides()

			s := configs.HelperSettings
			Logger.Debugf("settings: store=%s prefix=%q suffix=%q gpg=%s",
				s.StoreDir, s.Prefix, s.Suffix, s.GpgBinary)
			return nil
		},
		// Unsupported actions (store, erase, anything newer git invents) are
		// consumed silently with a success exit status.
		Run: func(cmd *cobra.Command, args []string) {
			if len(args) == 0 {
				_ = cmd.Help()
				return
			}
			Logger.Debugf("ignoring unsupported action %q", args[0])
			_, _ = io.Copy(io.Discard, cmd.InOrStdin())
		},
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVarP(&debug, "debug", "d", false, "enable debug output")
	flags.StringVar(&storeDir, "store-dir", "", "password store directory (default $PASSWORD_STORE_DIR or ~/.password-store)")
	flags.StringVar(&prefix, "prefix", "", `entry name prefix inside the store (default "git")`)
	flags.StringVar(&suffix, "suffix", "", "entry name suffix")
	flags.StringVar(&gpgBinary, "gpg", "", `decryption binary (default "gpg")`)
	flags.SetNormalizeFunc(normalizeFlagName)

	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(eraseCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// normalizeFlagName lets underscores stand in for dashes in flag names.
func normalizeFlagName(f *pflag.FlagSet, name string) pflag.NormalizedName {
	return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
}

// applyFlagOverrides overlays explicitly-set persistent flags onto the
// settings. Flags outrank both the environment and the config file.
func applyFlagOverrides() {
	s := configs.HelperSettings
	pf := rootCmd.PersistentFlags()
	if pf.Changed("store-dir") {
		s.StoreDir = storeDir
	}
	if pf.Changed("prefix") {
		s.Prefix = prefix
	}
	if pf.Changed("suffix") {
		s.Suffix = suffix
	}
	if pf.Changed("gpg") {
		s.GpgBinary = gpgBinary
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Helper functions for testing

// GetRootCmd returns the root command for testing.
func GetRootCmd() *cobra.Command {
	return rootCmd
}

// ResetGlobalState resets all global flag variables to their defaults for testing.
func ResetGlobalState() {
	verbose = false
	debug = false
	storeDir = ""
	prefix = ""
	suffix = ""
	gpgBinary = ""
	resetGetCommandState()
	resetConfigCommandState()
	resetDoctorCommandState()
}

// SetLogger sets the logger for testing.
func SetLogger(l logger.Logger) {
	Logger = l
}
