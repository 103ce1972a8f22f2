package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mojiscan/mojiscan/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	initTemplate string
	initList     bool
	initForce    bool
)

var initCmd = &cobra.Command{
	Use:   "init [target_path]",
	Short: "Initialize mojiscan configuration in a directory",
	Long: `Initialize mojiscan configuration into the specified directory.

The init command sets up a directory for scanning with:
- mojiscan.yaml configuration file
- CI workflow wiring (ci template)

Unlike tools that scaffold whole projects, init drops its files into an
existing repository. It refuses to overwrite files that are already
there unless --force is given.

Examples:
  mojiscan init                  # Initialize in current directory
  mojiscan init ./docs           # Initialize in ./docs
  mojiscan init --template ci    # Include a GitHub Actions workflow

Available templates:
  minimal - Config file with built-in defaults, quiet output
  ci      - Verbose config plus a GitHub Actions workflow

Use 'mojiscan templates list' to see all available templates with descriptions.`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initTemplate, "template", "t", "minimal", "Template to use (minimal, ci)")
	initCmd.Flags().BoolVar(&initList, "list", false, "List available templates")
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if initList {
		names, err := scaffold.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to list templates: %w", err)
		}
		writeTemplateIndex(os.Stderr, names)
		return nil
	}

	targetPath := "."
	if len(args) > 0 {
		targetPath = args[0]
	}

	if !scaffold.IsValidTemplate(initTemplate) {
		known, _ := scaffold.ListTemplates()
		return fmt.Errorf("invalid template '%s'. Available templates: %v\n\nUse 'mojiscan templates list' for detailed descriptions", initTemplate, known)
	}

	scaffolder := scaffold.NewScaffolder(getVerboseFlag(cmd))
	created, err := scaffolder.CreateConfig(projectNameFor(targetPath), initTemplate, targetPath, initForce)
	if err != nil {
		return fmt.Errorf("failed to initialize project: %w", err)
	}

	fmt.Fprintf(os.Stderr, "\n✓ Scan configuration initialized in '%s' using template '%s'\n\n", targetPath, initTemplate)
	fmt.Fprintln(os.Stderr, "Created files:")
	fmt.Fprint(os.Stderr, scaffold.BuildFileTree(created))

	fmt.Fprintln(os.Stderr, "\nNext steps:")
	if targetPath != "." {
		fmt.Fprintf(os.Stderr, "  cd %s\n", targetPath)
	}
	fmt.Fprintln(os.Stderr, "  mojiscan scan .")
	fmt.Fprintln(os.Stderr, "  # Or with a wider skip list:")
	fmt.Fprintln(os.Stderr, "  mojiscan scan . --skip-ext .svg")

	return nil
}

// projectNameFor derives a project name for template substitution from
// the target directory, falling back to the working directory's name.
func projectNameFor(targetPath string) string {
	name := filepath.Base(targetPath)
	if name != "." && name != ".." {
		return name
	}
	if cwd, err := os.Getwd(); err == nil {
		return filepath.Base(cwd)
	}
	return "project"
}
