package tui

import "fmt"

// PromptContinue asks a yes/no question on the terminal. Returns true
// in non-interactive environments so scripted runs never block.
func PromptContinue(message string) bool {
	if !IsInteractive() {
		return true
	}

	fmt.Printf("%s [Y/n]: ", message)

	var answer string
	fmt.Scanln(&answer)
	switch answer {
	case "", "y", "Y":
		return true
	}
	return false
}
