package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Label renders text as an error label for w, styled only when w is a terminal
func Label(w io.Writer, text string) string {
	if !IsColorEnabled(w, ColorAuto) {
		return text
	}

	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(termenv.ANSI256)
	return renderer.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true).
		Render(text)
}
