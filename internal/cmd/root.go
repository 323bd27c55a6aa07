package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for accountscan
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accountscan",
		Short: "Report duplicated actions in the Tafsilk AccountController",
		Long: `accountscan reads AccountController.cs and prints the line numbers of
duplicated declarations left behind by a bad merge:

  - VerifyEmail(string token), first and second declaration
  - the [HttpGet] ResendVerificationEmail() action, first and second declaration
  - the TailorPolicy-guarded CompleteTailorProfile past line 1200

Line numbers are zero-based; -1 means not found. The file is only read,
never modified.

Exit code: 0 when the scan completes (duplicates or not), 1 if the file
cannot be read or is not valid UTF-8.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		RunE:          runCommand,
		SilenceUsage:  true,
		SilenceErrors: true, // main prints the error
	}

	cmd.Flags().String("config", "", "Path to config file (default: ./.accountscan.yaml)")
	cmd.Flags().String("log-level", "", "Log verbosity on stderr: trace, debug, info, warn, error")
	cmd.Flags().String("color", "", "Color output: auto, always, never")
	cmd.Flags().String("export", "", "Also write the findings as YAML to this file")

	return cmd
}
