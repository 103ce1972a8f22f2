package cli

import (
	"fmt"
	"strings"

	"github.com/mojiscan/mojiscan/internal/ai"
	"github.com/spf13/cobra"
)

// The ai command group emits machine-readable markdown on stdout for
// coding assistants. Diagnostics never share the stream.

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Documentation and skills for AI assistants",
	Long: `Structured documentation intended for AI coding assistants.

Assistants (Claude Code, GitHub Copilot, Gemini CLI, and friends) can
run these commands to learn mojiscan's output contract, conventions,
and pitfalls without scraping --help text.

Typical assistant session:
  1. mojiscan ai                      # Overview and index
  2. mojiscan ai skills               # List available skills
  3. mojiscan ai skill mojiscan-scan  # Load scanning conventions`,
	RunE: func(cmd *cobra.Command, args []string) error {
		overview, err := ai.Overview()
		if err != nil {
			return fmt.Errorf("failed to read AI overview: %w", err)
		}
		return emitDoc(cmd, overview)
	},
}

var aiSkillsCmd = &cobra.Command{
	Use:   "skills",
	Short: "List the embedded AI skills",
	Long:  `List every embedded skill together with its description.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		skills, err := ai.Skills()
		if err != nil {
			return fmt.Errorf("failed to enumerate skills: %w", err)
		}
		return emitDoc(cmd, renderSkillIndex(skills))
	},
}

var aiSkillCmd = &cobra.Command{
	Use:               "skill <name>",
	Short:             "Print one skill in full",
	Long:              `Print the full markdown body of one skill.`,
	Args:              RequireSkillName,
	ValidArgsFunction: completeSkillNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		body, err := ai.Skill(args[0])
		if err != nil {
			return err
		}
		return emitDoc(cmd, body)
	},
}

var aiTemplatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List AI-facing template docs",
	Long:  `List template documentation written for AI assistants.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		docs, err := ai.TemplateDocs()
		if err != nil {
			return fmt.Errorf("failed to enumerate template docs: %w", err)
		}
		return emitDoc(cmd, renderTemplateDocIndex(docs))
	},
}

var aiTemplateCmd = &cobra.Command{
	Use:               "template <name>",
	Short:             "Print AI guidance for one template",
	Long:              `Print the assistant-facing guidance for one template.`,
	Args:              RequireTemplateName,
	ValidArgsFunction: completeAITemplateNames,
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]
		body, err := ai.TemplateDoc(name)
		if err != nil {
			return fmt.Errorf("template documentation '%s' not found.\n\nUse `mojiscan templates describe %s` for basic info, or start from `mojiscan init --template %s`", name, name, name)
		}
		return emitDoc(cmd, body)
	},
}

func init() {
	aiCmd.AddCommand(aiSkillsCmd, aiSkillCmd, aiTemplatesCmd, aiTemplateCmd)
	rootCmd.AddCommand(aiCmd)
}

// emitDoc writes assistant-facing markdown to the command's stdout.
func emitDoc(cmd *cobra.Command, doc string) error {
	_, err := fmt.Fprint(cmd.OutOrStdout(), doc)
	return err
}

func renderSkillIndex(skills []ai.SkillInfo) string {
	var b strings.Builder
	b.WriteString("# Available mojiscan Skills\n\n")
	b.WriteString("Use `mojiscan ai skill <name>` to get full skill content.\n\n")
	b.WriteString("| Skill | Description |\n")
	b.WriteString("|-------|-------------|\n")
	for _, s := range skills {
		desc := s.Description
		if desc == "" {
			desc = "(undocumented)"
		}
		fmt.Fprintf(&b, "| `%s` | %s |\n", s.Name, desc)
	}
	fmt.Fprintf(&b, "\nTotal: %d skills\n", len(skills))
	return b.String()
}

func renderTemplateDocIndex(docs []string) string {
	var b strings.Builder
	b.WriteString("# mojiscan Template Documentation\n\n")
	b.WriteString("Use `mojiscan ai template <name>` for detailed AI guidance.\n\n")

	if len(docs) == 0 {
		b.WriteString("No template documentation embedded yet.\n\n")
		b.WriteString("Available templates (use `mojiscan templates list`):\n")
		b.WriteString("  - minimal: Config file with built-in defaults\n")
		b.WriteString("  - ci: Verbose config plus GitHub Actions workflow\n")
		return b.String()
	}

	b.WriteString("| Template | Command |\n")
	b.WriteString("|----------|---------|\n")
	for _, doc := range docs {
		fmt.Fprintf(&b, "| %s | `mojiscan ai template %s` |\n", doc, doc)
	}
	return b.String()
}
