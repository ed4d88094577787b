package screen

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papersift-io/papersift/internal/models"
)

// renderHeader draws the top block: a title bar with session counts and
// a progress line beneath it.
func renderHeader(m *Model) string {
	width := m.contentWidth()
	stats := m.ledger.Stats()

	name := filepath.Base(m.set.Path)
	left := fmt.Sprintf(" papersift  %s", name)

	counts := fmt.Sprintf("included %d  excluded %d  pending %d",
		stats.Included, stats.Excluded, stats.Pending)
	right := counts + " "

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := m.theme.Header.Width(width).Render(left + strings.Repeat(" ", gap) + right)

	return lipgloss.JoinVertical(lipgloss.Left, bar, renderProgress(m, stats), "")
}

// renderProgress shows how far the screening has come. Themes that carry
// a gradient get a bar; plain mode falls back to a counter.
func renderProgress(m *Model, stats *models.Stats) string {
	counter := fmt.Sprintf("%d/%d decided", stats.Decided(), stats.Total)
	if rec, ok := m.currentRecord(); ok {
		counter = fmt.Sprintf("Record #%d   %s", rec.Row, counter)
	}

	if m.theme.GradFrom == "" {
		return " " + counter
	}
	return " " + m.progress.ViewAs(stats.Fraction()) + "  " + m.theme.Dim.Render(counter)
}
