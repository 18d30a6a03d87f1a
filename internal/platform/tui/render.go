package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgb-alchemy/internal/core"
)

// styleKey identifies a foreground/background pair.
type styleKey struct {
	fg, bg string
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
// Colors are true-color hex values; the renderer downsamples them to what
// the terminal supports.
func RenderScreen(r *lipgloss.Renderer, s *core.Screen) string {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	styles := make(map[styleKey]lipgloss.Style)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.Get(x, y)
			k := styleKey{fg: cell.Fg, bg: cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.Get(x, y)
				if cell.Fg != k.fg || cell.Bg != k.bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if k == (styleKey{}) {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[k]
			if !ok {
				style = newStyle(r, k)
				styles[k] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

func newStyle(r *lipgloss.Renderer, k styleKey) lipgloss.Style {
	style := r.NewStyle()
	if k.fg != "" {
		style = style.Foreground(lipgloss.Color(k.fg))
	}
	if k.bg != "" {
		style = style.Background(lipgloss.Color(k.bg))
	}
	return style
}
