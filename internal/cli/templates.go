package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mojiscan/mojiscan/internal/scaffold"
	"github.com/spf13/cobra"
)

// TemplateDescription is the human-facing metadata shown by
// `templates list` and `templates describe`.
type TemplateDescription struct {
	Short     string
	Long      string
	Structure []string
	Features  []string
	BestFor   string
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage configuration templates",
	Long: `List and describe available configuration templates.

Templates provide different starting points for scanning a repository,
from a bare config file to full CI gating.`,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in config templates",
	Long:  `List all available configuration templates with descriptions.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := scaffold.ListTemplates()
		if err != nil {
			return fmt.Errorf("failed to enumerate templates: %w", err)
		}
		writeTemplateIndex(os.Stderr, names)
		return nil
	},
}

var templatesDescribeCmd = &cobra.Command{
	Use:               "describe <template_name>",
	Short:             "Describe one template in detail",
	Long:              `Prints a template's layout, features, and intended use.`,
	Args:              RequireTemplateName,
	ValidArgsFunction: completeTemplateNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if !scaffold.IsValidTemplate(name) {
			known, _ := scaffold.ListTemplates()
			return fmt.Errorf("template '%s' not found. Available templates: %v\n\nUse 'mojiscan templates list' to see all templates", name, known)
		}
		desc, ok := getTemplateDescriptions()[name]
		if !ok {
			return fmt.Errorf("no description available for template '%s'", name)
		}
		writeTemplateDetail(os.Stderr, name, desc)
		return nil
	},
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesDescribeCmd)
	rootCmd.AddCommand(templatesCmd)
}

func writeTemplateIndex(w io.Writer, names []string) {
	descriptions := getTemplateDescriptions()

	fmt.Fprintln(w, "Available templates:")
	fmt.Fprintln(w)
	for _, name := range names {
		desc, ok := descriptions[name]
		if !ok {
			desc = TemplateDescription{Short: "No description available"}
		}
		fmt.Fprintf(w, "  %-12s %s\n", name, desc.Short)
		if desc.Long != "" {
			fmt.Fprintf(w, "               %s\n", desc.Long)
		}
		if desc.BestFor != "" {
			fmt.Fprintf(w, "               Best for: %s\n", desc.BestFor)
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Use: mojiscan init [path] --template <template_name>")
}

func writeTemplateDetail(w io.Writer, name string, desc TemplateDescription) {
	fmt.Fprintf(w, "Template: %s\n", name)
	fmt.Fprintf(w, "Description: %s\n", desc.Short)
	if desc.Long != "" {
		fmt.Fprintf(w, "\n%s\n", desc.Long)
	}
	if len(desc.Structure) > 0 {
		fmt.Fprintln(w, "\nStructure:")
		for _, line := range desc.Structure {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	if len(desc.Features) > 0 {
		fmt.Fprintln(w, "\nFeatures:")
		for _, feature := range desc.Features {
			fmt.Fprintf(w, "  - %s\n", feature)
		}
	}
	if desc.BestFor != "" {
		fmt.Fprintf(w, "\nBest for: %s\n", desc.BestFor)
	}
	fmt.Fprintf(w, "\nUsage:\n  mojiscan init --template %s\n", name)
}

func getTemplateDescriptions() map[string]TemplateDescription {
	return map[string]TemplateDescription{
		"minimal": {
			Short: "Config file with built-in defaults",
			Long:  "A commented mojiscan.yaml that starts from the built-in skip list and quiet output. Add extensions as the repository needs them.",
			Structure: []string{
				"└── mojiscan.yaml",
			},
			Features: []string{
				"Commented starter config",
				"Built-in skip list only",
				"Quiet output suited to pipes",
			},
			BestFor: "Local use, editors, one-off scans",
		},
		"ci": {
			Short: "Verbose config plus GitHub Actions workflow",
			Long:  "A mojiscan.yaml tuned for CI logs and a ready-made GitHub Actions workflow that fails the build when a scan flags files.",
			Structure: []string{
				"├── mojiscan.yaml",
				"└── .github/",
				"    └── workflows/",
				"        └── mojiscan.yml",
			},
			Features: []string{
				"Verbose diagnostics on stderr",
				"Workflow fails when findings are non-empty",
				"Push and pull request triggers",
			},
			BestFor: "Repositories that gate merges on clean UTF-8",
		},
	}
}
