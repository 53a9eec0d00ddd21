package main

import (
	"fmt"
	"os"

	"github.com/PolarWolf314/git-credential-pass/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Stdout belongs to the credential protocol; errors go to stderr.
		fmt.Fprintln(os.Stderr, "git-credential-pass:", err)
		os.Exit(1)
	}
}
