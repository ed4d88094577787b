package screen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderStatusBar draws the bottom line: rejected-key flashes take over
// the whole bar, otherwise it shows the last save and any warnings.
func renderStatusBar(m *Model) string {
	width := m.contentWidth()

	if m.flash != "" && m.flashIsErr {
		return m.theme.StatusBar.Width(width).Render(" " + m.theme.Warn.Render(m.flash))
	}

	left := " "
	if m.savedAt != "" {
		left += m.theme.Good.Render(fmt.Sprintf("Saved %s at %s", filepath.Base(m.ledger.Path()), m.savedAt))
	}

	right := ""
	if m.inputStale {
		right = m.theme.Warn.Render("⚠ input file changed on disk") + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return m.theme.StatusBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
