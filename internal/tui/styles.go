package tui

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles
var (
	baseFg    = lipgloss.Color("#E6E6E6")
	baseDimFg = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#6B7280"}
	accentFg  = lipgloss.Color("#7C3AED")
	borderCol = lipgloss.Color("#243141")

	appStyle   = lipgloss.NewStyle().Foreground(baseFg)
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderCol).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Foreground(accentFg).Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(baseDimFg)
)

var (
	hoverCold, _ = colorful.Hex("#FFA500")
	hoverHot, _  = colorful.Hex("#FF2D55")
)

// hoverColor shifts the hover marker from orange towards red as the view
// zooms in, reaching full red at zoomMax.
func hoverColor(zoom float64) lipgloss.Color {
	t := 0.0
	if zoom > 1 {
		t = math.Min(1, math.Log(zoom)/math.Log(zoomMax))
	}
	return lipgloss.Color(hoverCold.BlendLab(hoverHot, t).Clamped().Hex())
}
