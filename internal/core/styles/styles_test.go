package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultPalette) })

	p := DefaultPalette
	p.Error = lipgloss.Color("#ff0000")
	SetTheme(p)

	assert.Equal(t, lipgloss.Color("#ff0000"), TextErrorStyle.GetForeground())
	assert.True(t, TextPrimaryBoldStyle.GetBold())
	assert.Contains(t, TextMutedStyle.Render("hello"), "hello")
}
