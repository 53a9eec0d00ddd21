package cmd

import (
	"github.com/PolarWolf314/git-credential-pass/internal/audit"
	"github.com/PolarWolf314/git-credential-pass/internal/configs"
	"github.com/PolarWolf314/git-credential-pass/internal/credential"
	kerrors "github.com/PolarWolf314/git-credential-pass/internal/errors"
	"github.com/PolarWolf314/git-credential-pass/internal/match"
	"github.com/PolarWolf314/git-credential-pass/internal/store"
	"github.com/spf13/cobra"
)

var (
	testHost string
	testPath string
)

func init() {
	getCmd.Flags().StringVar(&testHost, "host", "", "look up this host instead of reading a request from stdin")
	getCmd.Flags().StringVar(&testPath, "path", "", "path to use together with --host")
}

func resetGetCommandState() {
	testHost = ""
	testPath = ""
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Resolve a credential request read from stdin",
	Long: `Reads a git credential request (key=value lines, blank-line terminated)
from stdin and writes the matching password and username, if any, to stdout.

No matching store entry is not an error: the helper stays silent and exits
zero so git can fall through to the next helper or prompt the user.

The --host and --path flags replace the stdin request, which is handy for
inspecting what a given request would resolve to:

  git-credential-pass get --host gitlab.example.com --path group/repo`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var req credential.Request
		if testHost != "" {
			req = credential.Request{Host: testHost, Path: testPath}
			Logger.Debugf("using injected request host=%s path=%s", req.Host, req.Path)
		} else {
			var err error
			req, err = credential.ParseRequest(cmd.InOrStdin())
			if err != nil {
				return err
			}
		}
		if req.Host == "" {
			return kerrors.ErrMissingHost
		}

		s := configs.HelperSettings
		candidates := match.Candidates(req.Host, req.Path)
		for _, c := range candidates {
			Logger.Debugf("candidate %s", match.EntryName(s.Prefix, c, s.Suffix))
		}

		passStore := &store.PassStore{Dir: s.StoreDir, Gpg: s.GpgBinary}

		entry := audit.NewEntry(req.Host, req.Path)
		entry.Probed = len(candidates)

		candidate, ok := match.ResolveEntry(candidates, s.Prefix, s.Suffix, passStore)
		if !ok {
			audit.Log(s, entry)
			Logger.Infof("no store entry matched for %s", req.Host)
			return nil
		}
		entry.Matched = candidate
		audit.Log(s, entry)

		name := match.EntryName(s.Prefix, candidate, s.Suffix)
		Logger.Infof("matched store entry %s", name)

		content, err := passStore.Read(cmd.Context(), name)
		if err != nil {
			return err
		}

		cred := match.ExtractCredential(content, req.Username)
		return credential.WriteResponse(cmd.OutOrStdout(), cred)
	},
}
