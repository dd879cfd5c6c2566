package styles_test

import (
	"testing"

	"github.com/arthur-debert/phint/pkg/ui/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleRegistry(t *testing.T) {
	expected := []string{
		"Header", "Success", "Error", "Warning", "Info",
		"Muted", "Bold", "FilePath", "Key", "ErrorCode",
	}

	for _, name := range expected {
		t.Run(name, func(t *testing.T) {
			_, exists := styles.StyleRegistry[name]
			assert.True(t, exists, "style %s should exist", name)
		})
	}
}

func TestEmbeddedStyleAttributes(t *testing.T) {
	assert.True(t, styles.GetStyle("Error").GetBold())
	assert.True(t, styles.GetStyle("ErrorCode").GetItalic())
	assert.Equal(t, 1, styles.GetStyle("ErrorCode").GetPaddingLeft())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#FF6B6B"},
		styles.GetStyle("Error").GetForeground())
}

func TestGetStyleUnknown(t *testing.T) {
	style := styles.GetStyle("NoSuchStyle")

	assert.False(t, style.GetBold())
	assert.Equal(t, "plain", styles.Render("NoSuchStyle", "plain"))
}

func TestLoadStylesFromData(t *testing.T) {
	original := styles.StyleRegistry
	t.Cleanup(func() { styles.StyleRegistry = original })

	data := []byte(`
colors:
  accent:
    light: "#000000"
    dark: "#FFFFFF"
styles:
  Accent:
    underline: true
    foreground: accent
  Dangling:
    foreground: missing
`)
	require.NoError(t, styles.LoadStylesFromData(data))

	assert.True(t, styles.GetStyle("Accent").GetUnderline())
	assert.Equal(t, lipgloss.AdaptiveColor{Light: "#000000", Dark: "#FFFFFF"},
		styles.GetStyle("Accent").GetForeground())
	assert.Equal(t, lipgloss.NoColor{}, styles.GetStyle("Dangling").GetForeground())

	assert.Error(t, styles.LoadStylesFromData([]byte("styles: [")))
}
