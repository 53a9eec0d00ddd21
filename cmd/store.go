package cmd

import (
	"io"

	"github.com/spf13/cobra"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Accept a store request without storing anything",
	Long: `Store entries are managed with pass(1) itself, so the helper does not
write credentials. The request is consumed and discarded with a success
exit status, the convention for helpers that do not support an action.`,
	Run: func(cmd *cobra.Command, args []string) {
		Logger.Debugf("store action is a no-op, discarding request")
		_, _ = io.Copy(io.Discard, cmd.InOrStdin())
	},
}
