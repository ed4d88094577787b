package screen

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papersift-io/papersift/internal/models"
)

// renderSummary draws the end-of-queue panel with the session tallies.
func renderSummary(m *Model) string {
	stats := m.ledger.Stats()

	title := "Screening complete"
	if stats.Pending > 0 {
		title = "End of queue"
	}

	lines := []string{
		m.theme.Prompt.Render(title),
		"",
		summaryRow(m, "total", stats.Total, nil),
		summaryRow(m, "included", stats.Included, &m.theme.Good),
		summaryRow(m, "excluded", stats.Excluded, &m.theme.Bad),
	}
	lines = append(lines, reasonRows(m, stats)...)
	lines = append(lines,
		summaryRow(m, "pending", stats.Pending, &m.theme.Warn),
		"",
		m.theme.Dim.Render(fmt.Sprintf("Decisions saved to %s", m.ledger.Path())),
		m.theme.Dim.Render("Press any key to exit"),
	)

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(1, 3).
		Render(strings.Join(lines, "\n"))

	return lipgloss.NewStyle().
		Width(m.width).
		Height(m.height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(panel)
}

func summaryRow(m *Model, label string, n int, style *lipgloss.Style) string {
	count := fmt.Sprintf("%6d", n)
	if style != nil {
		count = style.Render(count)
	}
	return m.theme.Label.Width(12).Render(label) + count
}

// reasonRows breaks the exclusions down by reason, most frequent first.
func reasonRows(m *Model, stats *models.Stats) []string {
	if len(stats.Reasons) == 0 {
		return nil
	}
	reasons := make([]string, 0, len(stats.Reasons))
	for r := range stats.Reasons {
		reasons = append(reasons, r)
	}
	sort.Slice(reasons, func(i, j int) bool {
		if stats.Reasons[reasons[i]] != stats.Reasons[reasons[j]] {
			return stats.Reasons[reasons[i]] > stats.Reasons[reasons[j]]
		}
		return reasons[i] < reasons[j]
	})

	rows := make([]string, 0, len(reasons))
	for _, r := range reasons {
		rows = append(rows, "  "+m.theme.Dim.Width(14).Render(r)+fmt.Sprintf("%4d", stats.Reasons[r]))
	}
	return rows
}
