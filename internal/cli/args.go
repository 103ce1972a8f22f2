package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// requireOneArg builds a PositionalArgs validator for commands that take
// exactly one named argument. The error text carries an example invocation
// and a discovery hint so a bare command is self-explanatory.
func requireOneArg(placeholder, example, hint string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < 1 {
			return fmt.Errorf(`missing required argument: <%s>

Usage: %s <%s>

Example:
  %s %s

%s`, placeholder, cmd.UseLine(), placeholder, cmd.CommandPath(), example, hint)
		}
		if len(args) > 1 {
			return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
		}
		return nil
	}
}

// RequireTemplateName validates that exactly one template_name argument is provided.
var RequireTemplateName = requireOneArg("template_name", "minimal",
	"Use 'mojiscan templates list' to see available templates.")

// RequireSkillName validates that exactly one skill name argument is provided.
var RequireSkillName = requireOneArg("name", "mojiscan-scan",
	"Use 'mojiscan ai skills' to see available skills.")
