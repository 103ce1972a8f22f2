package cli

import (
	"strings"

	"github.com/mojiscan/mojiscan/internal/ai"
	"github.com/mojiscan/mojiscan/internal/scaffold"
	"github.com/spf13/cobra"
)

// commonSkipExtensions lists extensions users often add to the skip
// list, offered as --skip-ext completions. The built-in defaults are
// always skipped and never need to be suggested.
var commonSkipExtensions = []string{".svg", ".webp", ".bmp", ".mp3", ".mp4", ".gz", ".tar", ".exe", ".dll", ".so"}

// completeOneArg adapts a candidate source into a cobra completion
// function for commands that take a single positional argument. Once an
// argument is present there is nothing left to complete.
func completeOneArg(source func() ([]string, error)) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		candidates, err := source()
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		return prefixMatches(candidates, toComplete), cobra.ShellCompDirectiveNoFileComp
	}
}

// prefixMatches filters candidates down to those starting with the
// partial word the shell passed in.
func prefixMatches(candidates []string, toComplete string) []string {
	var matches []string
	for _, c := range candidates {
		if strings.HasPrefix(c, toComplete) {
			matches = append(matches, c)
		}
	}
	return matches
}

var (
	completeTemplateNames = completeOneArg(scaffold.ListTemplates)
	completeSkillNames    = completeOneArg(ai.SkillNames)

	// AI template docs may lag behind the scaffold templates; fall
	// back to the scaffold list so completion never goes dark.
	completeAITemplateNames = completeOneArg(func() ([]string, error) {
		if docs, err := ai.TemplateDocs(); err == nil && len(docs) > 0 {
			return docs, nil
		}
		return scaffold.ListTemplates()
	})
)

// completeSkipExtensions suggests --skip-ext values.
func completeSkipExtensions(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	return prefixMatches(commonSkipExtensions, toComplete), cobra.ShellCompDirectiveNoFileComp
}

// completeDirectories defers the scan root argument to the shell's own
// directory completion.
func completeDirectories(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return nil, cobra.ShellCompDirectiveFilterDirs
}
