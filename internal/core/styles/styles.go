// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

// Palette defines a minimal semantic color palette.
type Palette struct {
	Primary    lipgloss.TerminalColor
	Foreground lipgloss.TerminalColor
	Muted      lipgloss.TerminalColor
	Success    lipgloss.TerminalColor
	Warning    lipgloss.TerminalColor
	Error      lipgloss.TerminalColor
}

// DefaultPalette adapts to light and dark terminals.
var DefaultPalette = Palette{
	Primary:    lipgloss.AdaptiveColor{Light: "#2e7de9", Dark: "#7aa2f7"},
	Foreground: lipgloss.AdaptiveColor{Light: "#3760bf", Dark: "#c0caf5"},
	Muted:      lipgloss.AdaptiveColor{Light: "#848cb5", Dark: "#565f89"},
	Success:    lipgloss.AdaptiveColor{Light: "#587539", Dark: "#9ece6a"},
	Warning:    lipgloss.AdaptiveColor{Light: "#8c6c3e", Dark: "#e0af68"},
	Error:      lipgloss.AdaptiveColor{Light: "#f52a65", Dark: "#f7768e"},
}

var (
	TextPrimaryBoldStyle    lipgloss.Style
	TextForegroundBoldStyle lipgloss.Style
	TextMutedStyle          lipgloss.Style
	TextSuccessStyle        lipgloss.Style
	TextWarningStyle        lipgloss.Style
	TextErrorStyle          lipgloss.Style
)

func init() {
	SetTheme(DefaultPalette)
}

// SetTheme rebuilds the package styles from p.
func SetTheme(p Palette) {
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	TextForegroundBoldStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextWarningStyle = lipgloss.NewStyle().Foreground(p.Warning)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)
}
