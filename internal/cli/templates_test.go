package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mojiscan/mojiscan/internal/scaffold"
)

func TestTemplateDescriptions(t *testing.T) {
	descriptions := getTemplateDescriptions()

	tests := []struct {
		name         string
		wantShort    string
		minStructure int
	}{
		{name: "minimal", wantShort: "Config file with built-in defaults", minStructure: 1},
		{name: "ci", wantShort: "Verbose config plus GitHub Actions workflow", minStructure: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, ok := descriptions[tt.name]
			require.True(t, ok, "template %q has no description", tt.name)

			assert.Equal(t, tt.wantShort, desc.Short)
			assert.NotEmpty(t, desc.BestFor)
			assert.GreaterOrEqual(t, len(desc.Features), 3)
			assert.GreaterOrEqual(t, len(desc.Structure), tt.minStructure)
		})
	}
}

// The description map and the embedded template set must stay in sync
// in both directions.
func TestTemplateDescriptionsMatchEmbedded(t *testing.T) {
	descriptions := getTemplateDescriptions()

	embedded, err := scaffold.ListTemplates()
	require.NoError(t, err)

	for _, name := range embedded {
		_, ok := descriptions[name]
		assert.True(t, ok, "embedded template %q has no description", name)
	}
	for name := range descriptions {
		assert.True(t, scaffold.IsValidTemplate(name), "description %q has no embedded template", name)
	}
}

func TestWriteTemplateIndex(t *testing.T) {
	var b strings.Builder
	writeTemplateIndex(&b, []string{"minimal", "mystery"})
	out := b.String()

	assert.Contains(t, out, "Available templates:")
	assert.Contains(t, out, "minimal")
	assert.Contains(t, out, "Config file with built-in defaults")
	assert.Contains(t, out, "No description available")
	assert.Contains(t, out, "mojiscan init [path] --template")
}

func TestWriteTemplateDetail(t *testing.T) {
	var b strings.Builder
	writeTemplateDetail(&b, "ci", getTemplateDescriptions()["ci"])
	out := b.String()

	assert.Contains(t, out, "Template: ci")
	assert.Contains(t, out, "Structure:")
	assert.Contains(t, out, "Features:")
	assert.Contains(t, out, "Best for:")
	assert.Contains(t, out, "mojiscan init --template ci")
}
