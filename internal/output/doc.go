// Package output provides structured output handling for the wrkit CLI.
//
// The Printer is the single interface commands use to talk to the
// terminal. It switches between human-readable and JSON output based on
// the --json flag and disables lipgloss styling when stdout is not a
// terminal (or when --color never is in effect):
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "wrote ideas.md", "entries": 12})
//	printer.Warn("skipping %s: %v", path, err)
//	printer.Error(err)
//
// In JSON mode success output is the data map encoded as JSON, warnings
// become {"warning": "..."} objects and errors become
// {"error": "message", "code": N}.
//
// # Exit codes
//
// Errors created through the package constructors carry process exit
// codes:
//
//	output.NewUserError("missing required flag: --src")  // exit 1
//	output.NewSystemError("cannot write output file")    // exit 2
//
// The main entry point extracts the code with output.GetExitCode. A run
// that only produced per-document warnings still exits 0.
package output
