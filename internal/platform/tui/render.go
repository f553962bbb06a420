package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/go-fish/internal/core"
)

// palette maps each core.Color to an ANSI 256 color code.
var palette = map[core.Color]string{
	core.ColorRed:          "1",
	core.ColorGreen:        "2",
	core.ColorYellow:       "3",
	core.ColorBlue:         "4",
	core.ColorMagenta:      "5",
	core.ColorCyan:         "6",
	core.ColorWhite:        "7",
	core.ColorBrightYellow: "11",
	core.ColorBrightCyan:   "14",
	core.ColorOrange:       "208",
	core.ColorGray:         "245",
}

// highlights are drawn bold, used for catch banners and high scores.
var highlights = map[core.Color]bool{
	core.ColorBrightYellow: true,
	core.ColorOrange:       true,
}

// cellStyles is built once from the palette.
var cellStyles = buildCellStyles()

func buildCellStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range palette {
		st := lipgloss.NewStyle().Foreground(lipgloss.Color(code))
		if highlights[c] {
			st = st.Bold(true)
		}
		styles[c] = st
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is emitted as runs of equal color; uncolored blanks at the end
// of a row are dropped, since most of the fishing screen is empty water
// to the right of the panel.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

// renderRow writes row y up to its last visible cell.
func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	end := s.Width()
	for end > 0 {
		cell := s.GetCell(end-1, y)
		if cell.Rune != ' ' || cell.Color != core.ColorDefault {
			break
		}
		end--
	}

	var run strings.Builder
	for x := 0; x < end; {
		color := s.GetCell(x, y).Color
		run.Reset()
		for x < end && s.GetCell(x, y).Color == color {
			run.WriteRune(s.GetCell(x, y).Rune)
			x++
		}
		sb.WriteString(styleFor(color).Render(run.String()))
	}
}
