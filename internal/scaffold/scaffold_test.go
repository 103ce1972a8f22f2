package scaffold

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

// mustWrite seeds a file, creating parent directories as needed.
func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("seed %s: %v", path, err)
	}
}

// TestCreateConfig_RefusesExistingFiles tests that a collision with any
// template file aborts the operation before anything is written.
func TestCreateConfig_RefusesExistingFiles(t *testing.T) {
	tests := []struct {
		name     string
		template string
		existing string // relative path created before the call
	}{
		{
			name:     "minimal collides on mojiscan.yaml",
			template: "minimal",
			existing: "mojiscan.yaml",
		},
		{
			name:     "ci collides on mojiscan.yaml",
			template: "ci",
			existing: "mojiscan.yaml",
		},
		{
			name:     "ci collides on workflow file",
			template: "ci",
			existing: ".github/workflows/mojiscan.yml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()

			existingPath := filepath.Join(dir, filepath.FromSlash(tt.existing))
			mustWrite(t, existingPath, "keep me")

			sc := NewScaffolder(false)
			created, err := sc.CreateConfig("testproject", tt.template, dir, false)

			if err == nil {
				t.Fatal("Expected error for existing file, got nil")
			}
			if !errors.Is(err, mojiscan.ErrConfigExists) {
				t.Errorf("Expected error wrapping ErrConfigExists, got: %v", err)
			}
			if !strings.Contains(err.Error(), "already exists") {
				t.Errorf("Error message should mention 'already exists', got: %s", err)
			}
			if created != nil {
				t.Errorf("Expected no created files on refusal, got %v", created)
			}

			// The collision must leave the existing file untouched
			content, readErr := os.ReadFile(existingPath)
			if readErr != nil {
				t.Fatalf("Failed to read existing file back: %v", readErr)
			}
			if string(content) != "keep me" {
				t.Errorf("Existing file was modified: %q", content)
			}
		})
	}
}

// TestCreateConfig_RefusalWritesNothing verifies the all-or-nothing
// collision check: a late collision must not leave earlier files behind.
func TestCreateConfig_RefusalWritesNothing(t *testing.T) {
	dir := t.TempDir()

	// mojiscan.yaml sorts after the workflow file in walk order, so a
	// naive one-pass writer would have created .github/ already.
	mustWrite(t, filepath.Join(dir, "mojiscan.yaml"), "old")

	sc := NewScaffolder(false)
	if _, err := sc.CreateConfig("testproject", "ci", dir, false); err == nil {
		t.Fatal("Expected error for existing file, got nil")
	}

	if _, err := os.Stat(filepath.Join(dir, ".github")); !os.IsNotExist(err) {
		t.Error("Refused CreateConfig should not have created .github/")
	}
}

// TestCreateConfig_ForceOverwrites tests that overwrite replaces
// colliding files in place.
func TestCreateConfig_ForceOverwrites(t *testing.T) {
	dir := t.TempDir()

	configPath := filepath.Join(dir, "mojiscan.yaml")
	mustWrite(t, configPath, "stale: true")

	sc := NewScaffolder(false)
	created, err := sc.CreateConfig("testproject", "minimal", dir, true)
	if err != nil {
		t.Fatalf("Expected no error with overwrite, got: %v", err)
	}
	if len(created) != 1 || created[0] != "mojiscan.yaml" {
		t.Errorf("Expected created=[mojiscan.yaml], got %v", created)
	}

	content, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}
	if strings.Contains(string(content), "stale") {
		t.Error("Expected existing config to be replaced")
	}
	if !strings.Contains(string(content), "testproject") {
		t.Errorf("Expected project name in generated config, got:\n%s", content)
	}
}

// TestCreateConfig_AcceptsNonexistentDirectory tests that CreateConfig
// creates the target directory when it does not exist.
func TestCreateConfig_AcceptsNonexistentDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "newproject")

	sc := NewScaffolder(false)
	created, err := sc.CreateConfig("testproject", "minimal", dir, false)
	if err != nil {
		t.Fatalf("Expected no error for nonexistent directory, got: %v", err)
	}
	if len(created) != 1 {
		t.Fatalf("Expected one created file, got %v", created)
	}

	if _, err := os.Stat(filepath.Join(dir, "mojiscan.yaml")); os.IsNotExist(err) {
		t.Error("Expected mojiscan.yaml to be created")
	}
}

// TestCreateConfig_CITemplateFiles tests the ci template's full file set.
func TestCreateConfig_CITemplateFiles(t *testing.T) {
	dir := t.TempDir()

	sc := NewScaffolder(false)
	created, err := sc.CreateConfig("testproject", "ci", dir, false)
	if err != nil {
		t.Fatalf("CreateConfig failed: %v", err)
	}

	want := []string{".github/workflows/mojiscan.yml", "mojiscan.yaml"}
	if len(created) != len(want) {
		t.Fatalf("Expected created=%v, got %v", want, created)
	}
	for i, rel := range want {
		if created[i] != rel {
			t.Errorf("created[%d] = %q, want %q", i, created[i], rel)
		}
		if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); err != nil {
			t.Errorf("Expected %s on disk: %v", rel, err)
		}
	}
}

// TestCreateConfig_UnknownTemplate tests the error for a template that
// is not embedded.
func TestCreateConfig_UnknownTemplate(t *testing.T) {
	sc := NewScaffolder(false)
	_, err := sc.CreateConfig("testproject", "nope", t.TempDir(), false)

	if err == nil {
		t.Fatal("Expected error for unknown template, got nil")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Errorf("Error message should mention 'not found', got: %s", err)
	}
}

// TestCreateConfig_ProcessesProjectName tests {{PROJECT_NAME}} substitution.
func TestCreateConfig_ProcessesProjectName(t *testing.T) {
	dir := t.TempDir()

	sc := NewScaffolder(false)
	if _, err := sc.CreateConfig("acme-docs", "minimal", dir, false); err != nil {
		t.Fatalf("CreateConfig failed: %v", err)
	}

	content, err := os.ReadFile(filepath.Join(dir, "mojiscan.yaml"))
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	if strings.Contains(string(content), "{{PROJECT_NAME}}") {
		t.Error("Expected {{PROJECT_NAME}} placeholder to be replaced")
	}
	if !strings.Contains(string(content), "acme-docs") {
		t.Errorf("Expected project name in config, got:\n%s", content)
	}
}

// TestListTemplates tests embedded template discovery.
func TestListTemplates(t *testing.T) {
	templates, err := ListTemplates()
	if err != nil {
		t.Fatalf("ListTemplates failed: %v", err)
	}

	want := map[string]bool{"minimal": false, "ci": false}
	for _, name := range templates {
		if _, ok := want[name]; ok {
			want[name] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected template %q in %v", name, templates)
		}
	}
}

// TestIsValidTemplate tests template name validation.
func TestIsValidTemplate(t *testing.T) {
	tests := []struct {
		name  string
		valid bool
	}{
		{"minimal", true},
		{"ci", true},
		{"basic", false},
		{"", false},
		{"MINIMAL", false},
	}

	for _, tt := range tests {
		if got := IsValidTemplate(tt.name); got != tt.valid {
			t.Errorf("IsValidTemplate(%q) = %v, want %v", tt.name, got, tt.valid)
		}
	}
}

// TestBuildFileTree tests tree rendering from a path list.
func TestBuildFileTree(t *testing.T) {
	tree := BuildFileTree([]string{
		".github/workflows/mojiscan.yml",
		"mojiscan.yaml",
	})

	expected := "├── .github/\n" +
		"│   └── workflows/\n" +
		"│       └── mojiscan.yml\n" +
		"└── mojiscan.yaml\n"

	if tree != expected {
		t.Errorf("BuildFileTree mismatch.\nGot:\n%s\nWant:\n%s", tree, expected)
	}
}

// TestBuildFileTree_SingleFile tests the degenerate one-entry tree.
func TestBuildFileTree_SingleFile(t *testing.T) {
	tree := BuildFileTree([]string{"mojiscan.yaml"})

	if tree != "└── mojiscan.yaml\n" {
		t.Errorf("Expected single leaf, got:\n%s", tree)
	}
}

// TestBuildFileTree_Empty tests that no paths render to no output.
func TestBuildFileTree_Empty(t *testing.T) {
	if tree := BuildFileTree(nil); tree != "" {
		t.Errorf("Expected empty tree, got %q", tree)
	}
}

// TestBuildFileTree_SharedParent tests sibling grouping under one directory.
func TestBuildFileTree_SharedParent(t *testing.T) {
	tree := BuildFileTree([]string{
		"docs/a.md",
		"docs/b.md",
		"mojiscan.yaml",
	})

	expected := "├── docs/\n" +
		"│   ├── a.md\n" +
		"│   └── b.md\n" +
		"└── mojiscan.yaml\n"

	if tree != expected {
		t.Errorf("BuildFileTree mismatch.\nGot:\n%s\nWant:\n%s", tree, expected)
	}
}
