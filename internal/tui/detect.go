package tui

import (
	"os"

	"golang.org/x/term"
)

// Mode represents the interaction mode for mojiscan.
type Mode int

const (
	// ModeNonInteractive covers CI pipelines, scripts, and piped input.
	ModeNonInteractive Mode = iota
	// ModeInteractive means a human is sitting at the terminal.
	ModeInteractive
)

// DetectMode determines whether mojiscan should run in interactive or
// non-interactive mode. The environment is consulted first, then both
// stdin and stdout must be terminals for a TUI to render correctly.
func DetectMode() Mode {
	if envForcesNonInteractive() {
		return ModeNonInteractive
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return ModeNonInteractive
	}

	return ModeInteractive
}

// envForcesNonInteractive reports whether the environment opts out of
// interactive prompts. MOJISCAN_NON_INTERACTIVE requires the exact value
// "1"; CI and NO_COLOR count when set to anything, following the common
// CI/CD and accessibility conventions.
func envForcesNonInteractive() bool {
	if os.Getenv("MOJISCAN_NON_INTERACTIVE") == "1" {
		return true
	}
	return os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != ""
}

// IsInteractive reports whether a TUI can run right now.
func IsInteractive() bool {
	return DetectMode() == ModeInteractive
}
