package scaffold

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

//go:embed all:templates
var templatesFS embed.FS

const templateRoot = "templates"

// Scaffolder writes configuration templates into a directory.
type Scaffolder struct {
	verbose bool
}

// NewScaffolder returns a Scaffolder. When verbose is set it narrates
// each file it writes on stderr.
func NewScaffolder(verbose bool) *Scaffolder {
	return &Scaffolder{verbose: verbose}
}

// CreateConfig writes the named template's files into targetPath and
// returns the relative paths it created, in walk order.
//
// The target directory may already contain a project; only collisions
// with the template's own files matter. Unless overwrite is set, any
// collision aborts the whole operation before a single byte is written,
// with an error wrapping mojiscan.ErrConfigExists.
func (s *Scaffolder) CreateConfig(projectName, templateName, targetPath string, overwrite bool) ([]string, error) {
	root := path.Join(templateRoot, templateName)
	if _, err := templatesFS.ReadDir(root); err != nil {
		return nil, fmt.Errorf("template '%s' not found: %w", templateName, err)
	}

	files, err := templateFiles(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read template: %w", err)
	}

	// Check every collision up front so a refusal leaves the target untouched
	if !overwrite {
		for _, rel := range files {
			if _, err := os.Stat(filepath.Join(targetPath, filepath.FromSlash(rel))); err == nil {
				return nil, fmt.Errorf("'%s' already exists in %s (rerun with --force to overwrite): %w", rel, targetPath, mojiscan.ErrConfigExists)
			}
		}
	}

	if err := os.MkdirAll(targetPath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create target directory: %w", err)
	}

	s.say("Writing config for '%s' at %s with template '%s'", projectName, targetPath, templateName)

	for _, rel := range files {
		raw, err := templatesFS.ReadFile(path.Join(root, rel))
		if err != nil {
			return nil, fmt.Errorf("failed to read template file %s: %w", rel, err)
		}

		dest := filepath.Join(targetPath, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return nil, fmt.Errorf("failed to create directory for %s: %w", rel, err)
		}

		s.say("Creating file: %s", rel)
		rendered := expandVars(string(raw), projectName)
		if err := os.WriteFile(dest, []byte(rendered), 0644); err != nil {
			return nil, fmt.Errorf("failed to write file %s: %w", dest, err)
		}
	}

	s.say("Configuration written successfully")
	return files, nil
}

// templateFiles lists a template's files relative to its root, in
// lexical walk order. Directories are implied by the paths.
func templateFiles(root string) ([]string, error) {
	var files []string
	err := fs.WalkDir(templatesFS, root, func(p string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir():
			return nil
		}
		files = append(files, strings.TrimPrefix(p, root+"/"))
		return nil
	})
	return files, err
}

// expandVars substitutes the placeholders templates may carry.
func expandVars(content, projectName string) string {
	return strings.ReplaceAll(content, "{{PROJECT_NAME}}", projectName)
}

func (s *Scaffolder) say(format string, args ...interface{}) {
	if s.verbose {
		fmt.Fprintf(os.Stderr, "[VERBOSE] "+format+"\n", args...)
	}
}

// ListTemplates returns the names of the embedded templates.
func ListTemplates() ([]string, error) {
	entries, err := templatesFS.ReadDir(templateRoot)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names, nil
}

// IsValidTemplate reports whether a template with the given name is embedded.
func IsValidTemplate(name string) bool {
	names, err := ListTemplates()
	if err != nil {
		return false
	}
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// BuildFileTree renders a list of slash-separated relative paths as a
// tree for display. Intermediate directories are inferred from the
// paths themselves; nothing touches the filesystem.
func BuildFileTree(paths []string) string {
	root := &treeNode{}
	for _, p := range paths {
		root.insert(strings.Split(filepath.ToSlash(p), "/"))
	}

	var sb strings.Builder
	root.render(&sb, "")
	return sb.String()
}

type treeNode struct {
	name     string
	isDir    bool
	children []*treeNode
}

func (n *treeNode) insert(parts []string) {
	if len(parts) == 0 || parts[0] == "" {
		return
	}
	child := n.child(parts[0])
	if len(parts) > 1 {
		child.isDir = true
		child.insert(parts[1:])
	}
}

func (n *treeNode) child(name string) *treeNode {
	for _, c := range n.children {
		if c.name == name {
			return c
		}
	}
	c := &treeNode{name: name}
	n.children = append(n.children, c)
	return c
}

func (n *treeNode) render(sb *strings.Builder, indent string) {
	for i, child := range n.children {
		branch, childIndent := "├── ", indent+"│   "
		if i == len(n.children)-1 {
			branch, childIndent = "└── ", indent+"    "
		}

		label := child.name
		if child.isDir {
			label += "/"
		}

		sb.WriteString(indent + branch + label + "\n")
		child.render(sb, childIndent)
	}
}
