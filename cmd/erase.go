package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var eraseCmd = &cobra.Command{
	Use:   "erase",
	Short: "Accept an erase request without erasing anything",
	Long: `Store entries are managed with pass(1) itself, so the helper does not
delete credentials. The request is consumed and discarded with a success
exit status, the convention for helpers that do not support an action.`,
	Run: func(cmd *cobra.Command, args []string) {
		Logger.Debugf("erase action is a no-op, discarding request")
		_, _ = io.Copy(io.Discard, cmd.InOrStdin())
	},
}
