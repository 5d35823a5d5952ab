// Package display renders the startup banner and the human-readable
// durations and sizes used in run summaries.
package display

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/backmassage/xnbverter/internal/term"
)

// PrintBanner prints the boxed program name and version; magenta if colors
// are enabled.
func PrintBanner(w io.Writer, version string) {
	r := lipgloss.NewRenderer(w)
	if term.Enabled() {
		r.SetColorProfile(termenv.ANSI256)
	} else {
		r.SetColorProfile(termenv.Ascii)
	}
	box := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("13")).
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	fmt.Fprintln(w, box.Render("XNBVerter "+version))
}
