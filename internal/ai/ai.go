// Package ai serves the AI-digestible documentation embedded in the
// mojiscan binary, so coding assistants can learn the tool's output
// contract straight from the CLI (e.g. `mojiscan ai skills`).
package ai

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed all:content
var docsFS embed.FS

// SkillInfo is the metadata carried in a skill's YAML frontmatter.
type SkillInfo struct {
	Name        string
	Description string
	FilePath    string
}

// Overview returns the main AI overview document.
func Overview() (string, error) {
	raw, err := docsFS.ReadFile("content/overview.md")
	if err != nil {
		return "", fmt.Errorf("embedded overview unreadable: %w", err)
	}
	return string(raw), nil
}

// Skills returns every embedded skill with its metadata, sorted by name.
func Skills() ([]SkillInfo, error) {
	matches, err := fs.Glob(docsFS, "content/skills/*.md")
	if err != nil {
		return nil, err
	}

	skills := make([]SkillInfo, 0, len(matches))
	for _, docPath := range matches {
		raw, err := docsFS.ReadFile(docPath)
		if err != nil {
			return nil, fmt.Errorf("embedded skill %s unreadable: %w", docPath, err)
		}
		skills = append(skills, parseSkillFrontmatter(string(raw), docPath))
	}

	sort.Slice(skills, func(i, j int) bool { return skills[i].Name < skills[j].Name })
	return skills, nil
}

// Skill returns the full body of one skill. The not-found error
// lists the skills that do exist, since assistants act on error text.
func Skill(name string) (string, error) {
	raw, err := docsFS.ReadFile("content/skills/" + name + ".md")
	if err == nil {
		return string(raw), nil
	}

	names, listErr := SkillNames()
	if listErr != nil || len(names) == 0 {
		return "", fmt.Errorf("skill %q not found", name)
	}
	return "", fmt.Errorf("skill %q not found; available: %s", name, strings.Join(names, ", "))
}

// SkillNames returns just the skill names, sorted.
func SkillNames() ([]string, error) {
	skills, err := Skills()
	if err != nil {
		return nil, err
	}

	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names, nil
}

// skillFrontmatter is the subset of skill frontmatter mojiscan cares about.
// Skills may carry extra keys for other consumers; those are ignored.
type skillFrontmatter struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// parseSkillFrontmatter extracts name and description from YAML frontmatter.
// Documents without frontmatter, or with frontmatter that does not parse,
// fall back to the filename as the skill name.
func parseSkillFrontmatter(content, docPath string) SkillInfo {
	info := SkillInfo{
		Name:     strings.TrimSuffix(path.Base(docPath), ".md"),
		FilePath: docPath,
	}

	if !strings.HasPrefix(content, "---") {
		return info
	}
	body := content[3:]
	end := strings.Index(body, "---")
	if end == -1 {
		return info
	}

	var meta skillFrontmatter
	if err := yaml.Unmarshal([]byte(body[:end]), &meta); err != nil {
		return info
	}
	if meta.Name != "" {
		info.Name = strings.TrimSpace(meta.Name)
	}
	info.Description = strings.TrimSpace(meta.Description)
	return info
}

// TemplateDoc returns the assistant-facing documentation for a template.
func TemplateDoc(name string) (string, error) {
	raw, err := docsFS.ReadFile("content/templates/" + name + ".md")
	if err != nil {
		return "", fmt.Errorf("no embedded doc for template %q", name)
	}
	return string(raw), nil
}

// TemplateDocs returns the names of the embedded template docs.
func TemplateDocs() ([]string, error) {
	matches, err := fs.Glob(docsFS, "content/templates/*.md")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(matches))
	for _, docPath := range matches {
		names = append(names, strings.TrimSuffix(path.Base(docPath), ".md"))
	}
	return names, nil
}
