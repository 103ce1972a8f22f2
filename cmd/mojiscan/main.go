package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/mojiscan/mojiscan/internal/cli"
	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

func main() {
	// A panic still exits with a distinct code and a stack trace
	// instead of the runtime's default status 2.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(mojiscan.ExitPanic)
		}
	}()

	if os.Getenv("MOJISCAN_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(mojiscan.ExitCodeForError(err))
	}
}
