package console

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Adaptive colors chosen to be readable on both light and dark backgrounds.
var (
	ColorError   = lipgloss.AdaptiveColor{Light: "124", Dark: "203"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "130", Dark: "214"}
	ColorSuccess = lipgloss.AdaptiveColor{Light: "28", Dark: "42"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "25", Dark: "39"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "243", Dark: "245"}
)

// Messages target stderr, so styling decisions (TTY, color profile) are
// made against stderr rather than lipgloss's default stdout renderer.
var renderer = lipgloss.NewRenderer(os.Stderr)

var (
	errorStyle    = renderer.NewStyle().Foreground(ColorError).Bold(true)
	warningStyle  = renderer.NewStyle().Foreground(ColorWarning)
	successStyle  = renderer.NewStyle().Foreground(ColorSuccess)
	infoStyle     = renderer.NewStyle().Foreground(ColorInfo)
	verboseStyle  = renderer.NewStyle().Foreground(ColorMuted)
	progressStyle = renderer.NewStyle().Foreground(ColorInfo)
)
