// Package logger provides leveled logging for git-credential-pass commands.
//
// All output goes to stderr: git reads credential responses from stdout, so
// diagnostics must never be interleaved with protocol lines.
//
// Verbosity is controlled by two flags:
//
//   - --verbose: shows info messages
//   - --debug: shows debug details
//
// Warnings and errors are always shown.
//
// Commands create a logger in their PersistentPreRun:
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Debugf("probing %d candidates", len(candidates))
package logger
