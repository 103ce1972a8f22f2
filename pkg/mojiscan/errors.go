package mojiscan

import (
	"errors"
	"strings"
)

// Sentinel errors for mojiscan operations.
// Use errors.Is to check for these conditions:
//
//	if errors.Is(err, mojiscan.ErrRootNotFound) {
//	    // handle missing scan root
//	}
var (
	// ErrInvalidConfig indicates a scan configuration failed validation.
	ErrInvalidConfig = errors.New("invalid scan configuration")

	// ErrRootNotFound indicates the scan root does not exist or cannot
	// be accessed.
	ErrRootNotFound = errors.New("scan root not found")

	// ErrRootNotDirectory indicates the scan root exists but is not a
	// directory.
	ErrRootNotDirectory = errors.New("scan root is not a directory")

	// ErrConfigExists indicates a configuration file already exists at
	// the target location and would be overwritten.
	ErrConfigExists = errors.New("configuration file already exists")
)

// usageErrorPatterns are substrings of errors produced by flag and
// argument parsing. Cobra returns plain errors for these, so they are
// classified by message.
var usageErrorPatterns = []string{
	"unknown flag",
	"unknown shorthand flag",
	"unknown command",
	"invalid argument",
	"required flag",
	"missing required argument",
	"accepts",
}

// ExitCodeForError maps an error to the appropriate process exit code.
// Returns ExitSuccess for nil errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrRootNotFound):
		return ExitRootError
	case errors.Is(err, ErrRootNotDirectory):
		return ExitRootError
	case errors.Is(err, ErrConfigExists):
		return ExitConfigExists
	}

	msg := err.Error()
	for _, pattern := range usageErrorPatterns {
		if strings.Contains(msg, pattern) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
