package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mojiscan [path]",
	Short: "Find files damaged by encoding errors",
	Long: asciiLogo + `

mojiscan walks a directory tree, decodes every file as UTF-8, and prints
the path of each file whose text contains the Unicode replacement
character U+FFFD, the telltale of mojibake and lossy re-encoding.

Flagged paths go to stdout, one per line. Everything else goes to
stderr, so the output pipes cleanly into xargs, editors, and CI checks.

Running mojiscan with no subcommand scans the given path (default: the
current directory).

Exit Codes:
  0  - Success (whether or not any files were flagged)
  1  - General error (scan aborted)
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Scan root missing or not a directory
  12 - Refused to overwrite an existing config file`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
	SilenceUsage:      true,
}

// Execute dispatches the CLI. The --version spelling is honored before
// cobra parses anything so it works from any argument position habit.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for mojiscan")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
