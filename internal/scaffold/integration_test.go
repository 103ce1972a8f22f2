package scaffold_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mojiscan/mojiscan/internal/config"
	"github.com/mojiscan/mojiscan/internal/decode"
	"github.com/mojiscan/mojiscan/internal/extset"
	"github.com/mojiscan/mojiscan/internal/files/scanner"
	"github.com/mojiscan/mojiscan/internal/logging"
	"github.com/mojiscan/mojiscan/internal/scaffold"
	"github.com/mojiscan/mojiscan/internal/services"
	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

// TestTemplateScan initializes each template into a real directory and
// runs a full scan over the result, exercising the same service stack
// the CLI wires up.
func TestTemplateScan(t *testing.T) {
	templates := []string{"minimal", "ci"}

	for _, templateName := range templates {
		t.Run(templateName, func(t *testing.T) {
			testTemplateScan(t, templateName)
		})
	}
}

func testTemplateScan(t *testing.T, templateName string) {
	ctx := context.Background()
	targetDir := t.TempDir()

	// Step 1: Initialize config files from the template
	scaffolder := scaffold.NewScaffolder(testing.Verbose())
	created, err := scaffolder.CreateConfig("demo", templateName, targetDir, false)
	if err != nil {
		t.Fatalf("CreateConfig failed for %s: %v", templateName, err)
	}
	if len(created) == 0 {
		t.Fatal("Expected template to create files")
	}

	// Step 2: The generated mojiscan.yaml must load
	projectCfg, err := config.Load(targetDir)
	if err != nil {
		t.Fatalf("Generated config failed to load: %v", err)
	}
	wantVerbose := templateName == "ci"
	if projectCfg.Verbose != wantVerbose {
		t.Errorf("Generated verbose = %v, want %v", projectCfg.Verbose, wantVerbose)
	}

	// Step 3: Plant files around the config, one of them damaged
	writeFile(t, targetDir, "docs/clean.md", []byte("wholesome text\n"))
	writeFile(t, targetDir, "docs/broken.md", []byte{'b', 'a', 'd', ' ', 0xFF, '\n'})
	writeFile(t, targetDir, "chart.png", []byte{0x89, 'P', 'N', 'G', 0xFF, 0xFE})

	// Step 4: Scan the initialized directory end to end
	cfg := mojiscan.ScanConfig{
		Root:           targetDir,
		SkipExtensions: extset.Merge(mojiscan.DefaultSkipExtensions(), projectCfg.SkipExtensions),
	}

	logger := logging.NewNullLogger()
	service := services.NewScanService(scanner.NewScanner(decode.New(), logger), logger)

	var out bytes.Buffer
	if err := service.Run(ctx, cfg, &out); err != nil {
		t.Fatalf("Scan over initialized directory failed: %v", err)
	}

	// Only the damaged markdown file may be flagged: the template's own
	// files are clean and the PNG sits on the built-in skip list
	lines := splitNonEmpty(out.String())
	if len(lines) != 1 {
		t.Fatalf("Expected exactly one finding, got %d:\n%s", len(lines), out.String())
	}
	if !strings.HasSuffix(lines[0], "docs/broken.md") {
		t.Errorf("Expected finding to end in docs/broken.md, got %q", lines[0])
	}
}

func writeFile(t *testing.T, dir, rel string, content []byte) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", rel, err)
	}
}

func splitNonEmpty(s string) []string {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
