package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/mojiscan/mojiscan/internal/config"
	"github.com/mojiscan/mojiscan/internal/decode"
	"github.com/mojiscan/mojiscan/internal/extset"
	"github.com/mojiscan/mojiscan/internal/files/scanner"
	"github.com/mojiscan/mojiscan/internal/logging"
	"github.com/mojiscan/mojiscan/internal/services"
	"github.com/mojiscan/mojiscan/pkg/mojiscan"
	"github.com/spf13/cobra"
)

var scanCmd = &cobra.Command{
	Use:   "scan [path]",
	Short: "Scan a directory tree for replacement characters",
	Long: `Scan walks a directory tree, decodes each file as UTF-8, and prints
the path of every file whose decoded text contains the Unicode
replacement character U+FFFD.

The scan command:
1. Walks the directory recursively in lexical order
2. Skips binary-like extensions and non-regular files
3. Decodes each remaining file as UTF-8 (invalid bytes become U+FFFD)
4. Prints the path of each flagged file to stdout, one per line

Arguments:
  path    Directory to scan (default: current directory)

Output:
  Flagged paths go to stdout; diagnostics go to stderr. A scan that
  finds nothing prints nothing. Findings exit 0 just like a clean run;
  the output, not the exit code, is the signal. To fail a CI job on
  findings, test whether the output is empty:
    test -z "$(mojiscan scan .)"

Skip List:
  Extensions match exactly and case-sensitively against the file name
  suffix. The built-in list covers common binary formats (.png, .jpg,
  .jpeg, .gif, .pdf, .zip, .ico, .woff, .woff2, .ttf). Additional
  extensions extend the list; nothing can remove a built-in entry.
  Precedence for additions: mojiscan.yaml < $MOJISCAN_SKIP_EXT < --skip-ext

Examples:
  # Scan the current directory
  mojiscan scan

  # Scan a specific directory
  mojiscan scan ./docs

  # Skip SVG and log files as well
  mojiscan scan --skip-ext .svg --skip-ext .log

  # Same, comma-separated via the environment
  MOJISCAN_SKIP_EXT=.svg,.log mojiscan scan

  # Open every damaged file in an editor
  mojiscan scan . | xargs -r code`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runScan,
}

type scanFlagValues struct {
	skipExts []string
}

var scanFlags scanFlagValues

func init() {
	rootCmd.AddCommand(scanCmd)

	// The bare root command doubles as scan, so both carry the same flags.
	for _, cmd := range []*cobra.Command{scanCmd, rootCmd} {
		cmd.Flags().StringSliceVar(&scanFlags.skipExts, "skip-ext", nil,
			"Additional file extensions to skip (can be specified multiple times)\n"+
				"Extends the built-in list; matching is exact and case-sensitive\n"+
				"Example: --skip-ext .svg --skip-ext .log")
		_ = cmd.RegisterFlagCompletionFunc("skip-ext", completeSkipExtensions)
	}
}

// buildScanConfig builds a ScanConfig from CLI flags, the project config
// file, and environment variables.
// This function is extracted for testability and separation of concerns.
//
// Skip extensions merge additively across every source; the built-in
// list can be extended but never shrunk:
//
//	built-in < mojiscan.yaml < $MOJISCAN_SKIP_EXT < --skip-ext
//
// Parameters:
//   - root: Directory to scan
//   - verbose: Verbose flag value as given on the command line
//
// Returns:
//   - Fully resolved ScanConfig ready for scanning
//   - Error if mojiscan.yaml exists but cannot be parsed
func buildScanConfig(cmd *cobra.Command, root string, verbose bool) (mojiscan.ScanConfig, error) {
	_ = godotenv.Load()

	projectCfg, err := config.Load(root)
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return mojiscan.ScanConfig{}, fmt.Errorf("failed to load %s: %v: %w", config.ConfigFileName, err, mojiscan.ErrInvalidConfig)
	}

	groups := [][]string{mojiscan.DefaultSkipExtensions()}
	if projectCfg != nil {
		groups = append(groups, projectCfg.SkipExtensions)
	}
	groups = append(groups,
		extset.ParseList(os.Getenv("MOJISCAN_SKIP_EXT")),
		scanFlags.skipExts,
	)

	// Verbose from mojiscan.yaml applies unless the flag was given explicitly
	if projectCfg != nil && projectCfg.Verbose && !cmd.Flags().Changed("verbose") {
		verbose = true
	}

	cfg := mojiscan.ScanConfig{
		Root:           root,
		SkipExtensions: extset.Merge(groups...),
		Verbose:        verbose,
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] Scan configured:\n")
		fmt.Fprintf(os.Stderr, "  Root: %s\n", cfg.Root)
		fmt.Fprintf(os.Stderr, "  Skip extensions: %s\n", strings.Join(cfg.SkipExtensions, ", "))
	}

	return cfg, nil
}

func runScan(cmd *cobra.Command, args []string) error {
	root := "."
	if len(args) > 0 {
		root = args[0]
	}
	verbose := getVerboseFlag(cmd)

	cfg, err := buildScanConfig(cmd, root, verbose)
	if err != nil {
		return err
	}

	// Create dependencies
	logger := logging.NewConsoleLogger(cfg.Verbose)
	fileScanner := scanner.NewScanner(decode.New(), logger)
	service := services.NewScanService(fileScanner, logger)

	// Setup context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Create a separate goroutine to handle signals
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling scan...")
		cancel()
	}()

	if err := service.Run(ctx, cfg, os.Stdout); err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	return nil
}
