package cmd

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/git-credential-pass/internal/configs"
	"github.com/PolarWolf314/git-credential-pass/internal/ui"
	"github.com/spf13/cobra"
)

var configForce bool

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}

func resetConfigCommandState() {
	configForce = false
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the helper configuration file",
	Long: `Inspect or create the helper's config.toml. The config file is optional;
flags and PASSWORD_STORE_DIR take precedence over it.`,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with the current effective settings",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath := configs.ConfigFilePath()
		if _, err := os.Stat(configPath); err == nil && !configForce {
			fmt.Println(ui.Error.Sprint("✗") + " Config file already exists at " + ui.Path.Sprint(configPath))
			fmt.Println(ui.Info.Sprint("→") + " Use " + ui.Code.Sprint("--force") + " to overwrite it")
			return nil
		}

		s := configs.HelperSettings
		fileConfig := &configs.FileConfig{
			Store: configs.StoreConfig{
				Dir:    s.StoreDir,
				Prefix: s.Prefix,
				Suffix: s.Suffix,
				Gpg:    s.GpgBinary,
			},
			Audit: configs.AuditConfig{
				Enabled: s.AuditEnabled,
				Path:    s.AuditPath,
			},
		}
		if err := configs.SaveFileConfig(fileConfig); err != nil {
			printError("Failed to write config file", err)
			return err
		}

		fmt.Println(ui.Success.Sprint("✓") + " Config file written to " + ui.Path.Sprint(configPath))
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Run: func(cmd *cobra.Command, args []string) {
		s := configs.HelperSettings
		fmt.Fprintf(cmd.OutOrStdout(), "store dir: %s\n", s.StoreDir)
		fmt.Fprintf(cmd.OutOrStdout(), "prefix:    %s\n", s.Prefix)
		fmt.Fprintf(cmd.OutOrStdout(), "suffix:    %s\n", s.Suffix)
		fmt.Fprintf(cmd.OutOrStdout(), "gpg:       %s\n", s.GpgBinary)
		fmt.Fprintf(cmd.OutOrStdout(), "audit:     %t (%s)\n", s.AuditEnabled, s.AuditPath)
	},
}
