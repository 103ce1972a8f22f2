package wizards

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/mojiscan/mojiscan/internal/config"
	"github.com/mojiscan/mojiscan/pkg/mojiscan"
)

var (
	wizTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).MarginBottom(1)
	wizStepStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).MarginBottom(1)
	wizActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	wizInactiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	wizDetailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginLeft(4)
	wizHelpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	wizDoneStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("34"))
)

type configStep int

const (
	configStepTemplate configStep = iota
	configStepExtensions
	configStepVerbose
	configStepReview
	configStepDone
)

type templateChoice struct {
	Name        string
	Description string
}

// ConfigResult is what the wizard hands back to the config command.
type ConfigResult struct {
	Cancelled bool
	Config    config.ProjectConfig
	Template  string
}

// ConfigWizard walks through template choice, extra skip extensions,
// and the verbose toggle, then shows the YAML it is about to write.
type ConfigWizard struct {
	step configStep

	templates   []templateChoice
	templateIdx int

	extensions []string
	extIdx     int
	editingExt bool
	extInput   textinput.Model

	verbose bool

	result ConfigResult

	width  int
	height int
}

// NewConfigWizard creates a wizard positioned at the template step.
func NewConfigWizard() ConfigWizard {
	return ConfigWizard{
		step: configStepTemplate,
		templates: []templateChoice{
			{Name: "minimal", Description: "Built-in skip list, quiet output"},
			{Name: "ci", Description: "Verbose diagnostics for CI logs"},
		},
		extensions: []string{},
		width:      80,
		height:     24,
	}
}

// WithTemplate presets the starting template (from the template selector)
// and skips straight to the extensions step.
func (w ConfigWizard) WithTemplate(name string) ConfigWizard {
	for i, tpl := range w.templates {
		if tpl.Name == name {
			w.templateIdx = i
		}
	}
	w.verbose = w.templates[w.templateIdx].Name == "ci"
	w.step = configStepExtensions
	return w
}

// Init implements tea.Model.
func (w ConfigWizard) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (w ConfigWizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width, w.height = msg.Width, msg.Height
		return w, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return w.cancel()
		}
		switch w.step {
		case configStepTemplate:
			return w.stepTemplate(msg)
		case configStepExtensions:
			if w.editingExt {
				return w.stepExtensionEdit(msg)
			}
			return w.stepExtensions(msg)
		case configStepVerbose:
			return w.stepVerbose(msg)
		case configStepReview:
			return w.stepReview(msg)
		}
	}

	return w, nil
}

func (w ConfigWizard) cancel() (tea.Model, tea.Cmd) {
	w.result.Cancelled = true
	return w, tea.Quit
}

func (w ConfigWizard) stepTemplate(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if w.templateIdx > 0 {
			w.templateIdx--
		}
	case "down", "j":
		if w.templateIdx < len(w.templates)-1 {
			w.templateIdx++
		}
	case "enter":
		// The ci template starts with verbose diagnostics on
		w.verbose = w.templates[w.templateIdx].Name == "ci"
		w.step = configStepExtensions
	case "esc":
		return w.cancel()
	}
	return w, nil
}

func (w ConfigWizard) stepExtensions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if w.extIdx > 0 {
			w.extIdx--
		}
	case "down", "j":
		// The cursor can rest one row past the list, on the add row
		if w.extIdx < len(w.extensions) {
			w.extIdx++
		}
	case "enter":
		seed := ""
		if w.extIdx < len(w.extensions) {
			seed = w.extensions[w.extIdx]
		}
		w.editingExt = true
		w.extInput = newExtensionInput(seed)
		return w, w.extInput.Focus()
	case "d":
		if w.extIdx < len(w.extensions) {
			w.extensions = append(w.extensions[:w.extIdx], w.extensions[w.extIdx+1:]...)
			if w.extIdx > 0 && w.extIdx >= len(w.extensions) {
				w.extIdx--
			}
		}
	case "n":
		w.step = configStepVerbose
	case "esc":
		w.step = configStepTemplate
	}
	return w, nil
}

func (w ConfigWizard) stepExtensionEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		if ext := normalizeExtension(w.extInput.Value()); ext != "" {
			if w.extIdx < len(w.extensions) {
				w.extensions[w.extIdx] = ext
			} else {
				w.extensions = append(w.extensions, ext)
			}
		}
		w.editingExt = false
		return w, nil
	case "esc":
		w.editingExt = false
		return w, nil
	}

	var cmd tea.Cmd
	w.extInput, cmd = w.extInput.Update(msg)
	return w, cmd
}

func (w ConfigWizard) stepVerbose(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		w.verbose = true
	case "n":
		w.verbose = false
	case " ", "tab":
		w.verbose = !w.verbose
	case "enter":
		w.step = configStepReview
	case "esc":
		w.step = configStepExtensions
	}
	return w, nil
}

func (w ConfigWizard) stepReview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		w.result = ConfigResult{
			Config: config.ProjectConfig{
				SkipExtensions: append([]string(nil), w.extensions...),
				Verbose:        w.verbose,
			},
			Template: w.templates[w.templateIdx].Name,
		}
		w.step = configStepDone
		return w, tea.Quit
	case "esc":
		w.step = configStepVerbose
	}
	return w, nil
}

func newExtensionInput(value string) textinput.Model {
	input := textinput.New()
	input.Placeholder = ".svg"
	input.CharLimit = 32
	input.Width = 20
	input.SetValue(value)
	return input
}

// normalizeExtension trims whitespace and ensures a leading dot.
func normalizeExtension(raw string) string {
	ext := strings.TrimSpace(raw)
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

// View implements tea.Model.
func (w ConfigWizard) View() string {
	body := ""
	switch w.step {
	case configStepTemplate:
		body = w.viewTemplate()
	case configStepExtensions:
		body = w.viewExtensions()
	case configStepVerbose:
		body = w.viewVerbose()
	case configStepReview:
		body = w.viewReview()
	}
	return wizTitleStyle.Render("mojiscan - Configuration Builder") + "\n" + body
}

func (w ConfigWizard) viewTemplate() string {
	var b strings.Builder

	b.WriteString(wizStepStyle.Render("Starting Template"))
	b.WriteString("\n\n")
	for i, tpl := range w.templates {
		b.WriteString(renderChoice(tpl.Name, i == w.templateIdx))
		b.WriteString("\n")
		b.WriteString(wizDetailStyle.Render(tpl.Description))
		b.WriteString("\n")
	}
	b.WriteString(wizHelpStyle.Render("\n↑/↓ navigate • enter select • esc quit"))

	return b.String()
}

func (w ConfigWizard) viewExtensions() string {
	var b strings.Builder

	b.WriteString(wizDoneStyle.Render("✓ Template: "))
	b.WriteString(w.templates[w.templateIdx].Name)
	b.WriteString("\n\n")
	b.WriteString(wizStepStyle.Render("Skip Extensions"))
	b.WriteString("\n")
	b.WriteString(wizDetailStyle.Render(
		fmt.Sprintf("Always skipped: %s", strings.Join(mojiscan.DefaultSkipExtensions(), ", "))))
	b.WriteString("\n")
	b.WriteString(wizDetailStyle.Render("Add extra extensions to exclude (optional)"))
	b.WriteString("\n\n")

	if w.editingExt {
		b.WriteString("Extension: ")
		b.WriteString(w.extInput.View())
		b.WriteString("\n\n")
		b.WriteString(wizHelpStyle.Render("enter save • esc cancel"))
		return b.String()
	}

	for i, ext := range w.extensions {
		b.WriteString(renderRow(ext, i == w.extIdx))
		b.WriteString("\n")
	}
	b.WriteString(renderRow("+ Add extension", w.extIdx == len(w.extensions)))
	b.WriteString("\n\n")
	b.WriteString(wizHelpStyle.Render("↑/↓ navigate • enter edit • d delete • n next step"))

	return b.String()
}

func (w ConfigWizard) viewVerbose() string {
	var b strings.Builder

	b.WriteString(wizStepStyle.Render("Verbose Output"))
	b.WriteString("\n")
	b.WriteString(wizDetailStyle.Render("Log per-file diagnostics to stderr during scans"))
	b.WriteString("\n\n")
	b.WriteString("  ")
	b.WriteString(renderToggle("enabled", w.verbose))
	b.WriteString("\n  ")
	b.WriteString(renderToggle("disabled", !w.verbose))
	b.WriteString("\n")
	b.WriteString(wizHelpStyle.Render("\ny/n/space toggle • enter next step • esc back"))

	return b.String()
}

func (w ConfigWizard) viewReview() string {
	var b strings.Builder

	b.WriteString(wizStepStyle.Render("Review Configuration"))
	b.WriteString("\n\n")

	preview := previewYAML(config.ProjectConfig{
		SkipExtensions: w.extensions,
		Verbose:        w.verbose,
	})
	for _, line := range strings.Split(preview, "\n") {
		b.WriteString(wizDetailStyle.Render("  " + line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(wizHelpStyle.Render("enter save to mojiscan.yaml • esc go back"))

	return b.String()
}

func renderChoice(label string, active bool) string {
	if active {
		return wizActiveStyle.Render("● " + label)
	}
	return "  " + wizInactiveStyle.Render("○ "+label)
}

func renderRow(label string, active bool) string {
	if active {
		return wizActiveStyle.Render(label)
	}
	return "  " + wizInactiveStyle.Render(label)
}

func renderToggle(label string, on bool) string {
	if on {
		return wizActiveStyle.Render("● " + label)
	}
	return wizInactiveStyle.Render("○ " + label)
}

func previewYAML(cfg config.ProjectConfig) string {
	data, _ := yaml.Marshal(cfg)
	preview := strings.TrimRight(string(data), "\n")
	if preview == "{}" {
		return "# built-in defaults only"
	}
	return preview
}

// Result reports what the finished (or cancelled) wizard produced.
func (w ConfigWizard) Result() ConfigResult {
	return w.result
}

// RunConfigWizard executes the config wizard. A non-empty template name
// (from the template selector) skips the template step.
func RunConfigWizard(template string) (ConfigResult, error) {
	wizard := NewConfigWizard()
	if template != "" {
		wizard = wizard.WithTemplate(template)
	}

	model, err := tea.NewProgram(wizard, tea.WithAltScreen()).Run()
	if err != nil {
		return ConfigResult{Cancelled: true}, err
	}
	return model.(ConfigWizard).Result(), nil
}
