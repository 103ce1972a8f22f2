package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
)

// captureStderr swaps os.Stderr for a pipe, runs fn, and returns what
// it wrote.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	saved := os.Stderr
	os.Stderr = w
	defer func() { os.Stderr = saved }()

	collected := make(chan string, 1)
	go func() {
		data, _ := io.ReadAll(r)
		collected <- string(data)
	}()

	fn()
	w.Close()
	return <-collected
}

func TestConsoleLogger_Output(t *testing.T) {
	tests := []struct {
		name    string
		verbose bool
		log     func(l *ConsoleLogger)
		want    string
	}{
		{
			name:    "verbose enabled",
			verbose: true,
			log:     func(l *ConsoleLogger) { l.Verbose("scanning %s", "./docs") },
			want:    "[VERBOSE] scanning ./docs\n",
		},
		{
			name:    "verbose disabled",
			verbose: false,
			log:     func(l *ConsoleLogger) { l.Verbose("scanning %s", "./docs") },
			want:    "",
		},
		{
			name:    "verbose without args leaves percent signs alone",
			verbose: true,
			log:     func(l *ConsoleLogger) { l.Verbose("literal %s stays untouched") },
			want:    "[VERBOSE] literal %s stays untouched\n",
		},
		{
			name: "info has no prefix",
			log:  func(l *ConsoleLogger) { l.Info("scanned %d files", 42) },
			want: "scanned 42 files\n",
		},
		{
			name: "error prefix",
			log:  func(l *ConsoleLogger) { l.Error("cannot open %s", "./missing") },
			want: "[ERROR] cannot open ./missing\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureStderr(t, func() {
				tt.log(NewConsoleLogger(tt.verbose))
			})
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConsoleLogger_ConcurrentWritesStayWhole(t *testing.T) {
	out := captureStderr(t, func() {
		logger := NewConsoleLogger(true)
		var wg sync.WaitGroup
		for worker := range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				logger.Info("walked subtree %d", worker)
				logger.Verbose("decoded file %d", worker)
				logger.Error("unreadable entry %d", worker)
			}()
		}
		wg.Wait()
	})

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 30 {
		t.Fatalf("got %d lines, want 30", len(lines))
	}
	for i, line := range lines {
		if !strings.Contains(line, "walked") &&
			!strings.Contains(line, "decoded") &&
			!strings.Contains(line, "unreadable") {
			t.Errorf("line %d looks interleaved: %q", i, line)
		}
	}
}

func TestNullLogger_DiscardsEverything(t *testing.T) {
	out := captureStderr(t, func() {
		logger := NewNullLogger()
		logger.Verbose("verbose")
		logger.Info("info")
		logger.Error("error")
	})
	if out != "" {
		t.Errorf("NullLogger wrote %q, want nothing", out)
	}
}

func TestNullLogger_ConcurrentUse(t *testing.T) {
	logger := NewNullLogger()

	var wg sync.WaitGroup
	for worker := range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("walked subtree %d", worker)
			logger.Verbose("decoded file %d", worker)
			logger.Error("unreadable entry %d", worker)
		}()
	}
	wg.Wait()
}

func BenchmarkConsoleLogger_Verbose(b *testing.B) {
	saved := os.Stderr
	os.Stderr, _ = os.Open(os.DevNull)
	defer func() { os.Stderr = saved }()

	logger := NewConsoleLogger(true)
	for b.Loop() {
		logger.Verbose("decoded %s", "file.txt")
	}
}

func BenchmarkConsoleLogger_VerboseDisabled(b *testing.B) {
	logger := NewConsoleLogger(false)
	for b.Loop() {
		logger.Verbose("decoded %s", "file.txt")
	}
}

func ExampleNullLogger() {
	logger := NewNullLogger()
	logger.Info("nothing reaches stderr")
	logger.Verbose("not this either")
	logger.Error("nor this")
	fmt.Println("scan output stays clean")
	// Output:
	// scan output stays clean
}
