package cli

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mojiscan/mojiscan/internal/config"
	"github.com/mojiscan/mojiscan/internal/tui"
	"github.com/mojiscan/mojiscan/internal/tui/components"
	"github.com/mojiscan/mojiscan/internal/tui/wizards"
)

var configCmd = &cobra.Command{
	Use:   "config [path]",
	Short: "Interactively create or edit mojiscan.yaml configuration",
	Long: `Launches an interactive wizard that builds a mojiscan.yaml step by step.

The wizard walks three choices:
  1. Starting template (minimal or ci)
  2. Extra skip extensions beyond the built-in list
  3. Verbose output

An interactive terminal is required; in scripts, prefer 'mojiscan init'
or write mojiscan.yaml by hand.

Examples:
  # mojiscan.yaml in the current directory
  mojiscan config

  # mojiscan.yaml under ./docs
  mojiscan config ./docs`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeDirectories,
	RunE:              runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	targetDir := "."
	if len(args) > 0 {
		targetDir = args[0]
	}

	if !tui.IsInteractive() {
		return fmt.Errorf("the config wizard needs an interactive terminal\n" +
			"For scripted use, run 'mojiscan init' or write mojiscan.yaml by hand")
	}

	// An existing mojiscan.yaml is only replaced with consent
	if existing, err := config.Load(targetDir); err == nil && existing != nil {
		fmt.Println("Found existing mojiscan.yaml")
		if !tui.PromptContinue("Overwrite existing configuration?") {
			fmt.Println("Cancelled, nothing written.")
			return nil
		}
	}

	template, err := pickTemplate()
	if err != nil {
		return fmt.Errorf("template selection failed: %w", err)
	}
	if template == "" {
		fmt.Println("Cancelled, nothing written.")
		return nil
	}

	result, err := wizards.RunConfigWizard(template)
	if err != nil {
		return fmt.Errorf("config wizard failed: %w", err)
	}
	if result.Cancelled {
		fmt.Println("Cancelled, nothing written.")
		return nil
	}

	return saveProjectConfig(targetDir, result.Config)
}

func saveProjectConfig(targetDir string, cfg config.ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	configPath := filepath.Join(targetDir, config.ConfigFileName)
	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Printf("\n✓ Wrote %s\n", configPath)
	return nil
}

// pickTemplate runs the standalone template selector. Returns the
// selected template name, or "" when the user cancelled.
func pickTemplate() (string, error) {
	selector := components.NewSelector("mojiscan - Starting Template", []components.Choice{
		{Label: "minimal", Description: "Built-in skip list, quiet output", Value: "minimal"},
		{Label: "ci", Description: "Verbose diagnostics for CI logs", Value: "ci"},
	})

	model, err := tea.NewProgram(selector, tea.WithAltScreen()).Run()
	if err != nil {
		return "", err
	}

	picked := model.(components.Selector)
	if picked.Cancelled() || !picked.Submitted() {
		return "", nil
	}
	return picked.Value(), nil
}
