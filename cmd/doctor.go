package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/PolarWolf314/git-credential-pass/internal/configs"
	"github.com/PolarWolf314/git-credential-pass/internal/match"
	"github.com/PolarWolf314/git-credential-pass/internal/store"
	"github.com/PolarWolf314/git-credential-pass/internal/ui"
	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var (
	doctorJSONOutput bool
	// doctorExitFunc is the function called to exit with a specific code.
	// Can be overridden for testing.
	doctorExitFunc = os.Exit
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSONOutput, "json", false, "output in JSON format")
}

func resetDoctorCommandState() {
	doctorJSONOutput = false
	doctorExitFunc = os.Exit
}

// SetDoctorExitFunc sets the exit function for testing purposes.
func SetDoctorExitFunc(f func(int)) {
	doctorExitFunc = f
}

// checkStatus represents the result status of a health check.
type checkStatus int

const (
	checkPass checkStatus = iota
	checkWarning
	checkError
)

// String returns a string representation of checkStatus.
func (s checkStatus) String() string {
	switch s {
	case checkPass:
		return "pass"
	case checkWarning:
		return "warning"
	case checkError:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalJSON implements json.Marshaler for checkStatus.
func (s checkStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// checkResult holds the result of a single health check.
type checkResult struct {
	Name       string      `json:"name"`
	Status     checkStatus `json:"status"`
	Message    string      `json:"message"`
	Suggestion string      `json:"suggestion,omitempty"`
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the helper can reach the password store and gpg",
	Long: `Runs a series of health checks on the helper's environment and reports
issues.

The doctor command checks:
  - Password store directory existence and initialization
  - gpg binary availability
  - Config file validity
  - Presence of entries under the configured prefix

Exit codes:
  0 - All checks passed
  1 - Warnings found (non-critical issues)
  2 - Errors found (critical issues)

Use --json for machine-readable output.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	Logger.Infof("Starting doctor command")

	if !doctorJSONOutput {
		fmt.Println()
		banner := figure.NewColorFigure("pass", "alligator2", "green", true)
		banner.Print()
		fmt.Println()
	}

	spinner, cleanup := startSpinner("Running health checks...", verbose)
	defer cleanup()

	checks := runChecks()

	errors := 0
	warnings := 0
	for _, check := range checks {
		Logger.Debugf("Check %s: status=%s, message=%s", check.Name, check.Status.String(), check.Message)
		switch check.Status {
		case checkWarning:
			warnings++
		case checkError:
			errors++
		}
	}

	if doctorJSONOutput {
		spinner.FinalMSG = ""
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(checks); err != nil {
			printError("Failed to encode results", err)
			return err
		}
	} else {
		spinner.FinalMSG = ""
		printDoctorResults(checks, errors, warnings)
	}

	if errors > 0 {
		doctorExitFunc(2)
	}
	if warnings > 0 {
		doctorExitFunc(1)
	}
	return nil
}

// runChecks runs every health check against the effective settings.
func runChecks() []checkResult {
	s := configs.HelperSettings
	var checks []checkResult

	// Store directory.
	if info, err := os.Stat(s.StoreDir); err != nil || !info.IsDir() {
		checks = append(checks, checkResult{
			Name:       "store",
			Status:     checkError,
			Message:    "password store not found at " + s.StoreDir,
			Suggestion: "run " + ui.Code.Sprint("pass init <gpg-id>") + " or set " + ui.Code.Sprint("PASSWORD_STORE_DIR"),
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "store",
			Status:  checkPass,
			Message: "password store at " + ui.Path.Sprint(s.StoreDir),
		})

		// Store initialization (.gpg-id is written by pass init).
		if _, err := os.Stat(filepath.Join(s.StoreDir, ".gpg-id")); err != nil {
			checks = append(checks, checkResult{
				Name:       "store-init",
				Status:     checkWarning,
				Message:    "store has no .gpg-id file",
				Suggestion: "the directory may not be a pass store; run " + ui.Code.Sprint("pass init <gpg-id>"),
			})
		} else {
			checks = append(checks, checkResult{
				Name:    "store-init",
				Status:  checkPass,
				Message: "store is initialized",
			})
		}
	}

	// gpg binary.
	if path, err := exec.LookPath(s.GpgBinary); err != nil {
		checks = append(checks, checkResult{
			Name:       "gpg",
			Status:     checkError,
			Message:    s.GpgBinary + " not found in PATH",
			Suggestion: "install gnupg or point the " + ui.Code.Sprint("--gpg") + " flag at your binary",
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "gpg",
			Status:  checkPass,
			Message: "decryption binary at " + ui.Path.Sprint(path),
		})
	}

	// Config file.
	if _, err := os.Stat(configs.ConfigFilePath()); os.IsNotExist(err) {
		checks = append(checks, checkResult{
			Name:    "config",
			Status:  checkPass,
			Message: "no config file, defaults in use",
		})
	} else if _, err := configs.LoadFileConfig(); err != nil {
		checks = append(checks, checkResult{
			Name:       "config",
			Status:     checkWarning,
			Message:    "config file could not be parsed: " + err.Error(),
			Suggestion: "fix or remove " + ui.Path.Sprint(configs.ConfigFilePath()),
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "config",
			Status:  checkPass,
			Message: "config file at " + ui.Path.Sprint(configs.ConfigFilePath()),
		})
	}

	// Entries under the configured prefix.
	prefixStore := &store.PassStore{Dir: filepath.Join(s.StoreDir, s.Prefix), Gpg: s.GpgBinary}
	if s.Prefix == "" {
		prefixStore.Dir = s.StoreDir
	}
	if count, err := prefixStore.CountEntries(); err != nil || count == 0 {
		checks = append(checks, checkResult{
			Name:       "entries",
			Status:     checkWarning,
			Message:    "no entries found under prefix " + ui.Highlight.Sprint(s.Prefix),
			Suggestion: "add one with " + ui.Code.Sprint("pass insert "+match.EntryName(s.Prefix, "<host>", s.Suffix)),
		})
	} else {
		checks = append(checks, checkResult{
			Name:    "entries",
			Status:  checkPass,
			Message: fmt.Sprintf("%d credential entries under prefix %s", count, ui.Highlight.Sprint(s.Prefix)),
		})
	}

	return checks
}

// printDoctorResults prints the doctor results in a human-readable format.
func printDoctorResults(checks []checkResult, errors, warnings int) {
	for _, check := range checks {
		var statusIcon string
		switch check.Status {
		case checkPass:
			statusIcon = ui.Success.Sprint("✓")
		case checkWarning:
			statusIcon = ui.Warning.Sprint("⚠")
		case checkError:
			statusIcon = ui.Error.Sprint("✗")
		}
		fmt.Printf("%s %s\n", statusIcon, check.Message)
		if check.Suggestion != "" {
			fmt.Printf("  %s %s\n", ui.Info.Sprint("→"), check.Suggestion)
		}
	}

	fmt.Println()
	fmt.Printf("Summary: %d passed", len(checks)-errors-warnings)
	if warnings > 0 {
		fmt.Printf(", %s", ui.Warning.Sprint(fmt.Sprintf("%d warning(s)", warnings)))
	}
	if errors > 0 {
		fmt.Printf(", %s", ui.Error.Sprint(fmt.Sprintf("%d error(s)", errors)))
	}
	fmt.Println()
}
