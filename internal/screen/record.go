package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/papersift-io/papersift/internal/models"
)

// renderRecord draws one record as a stack of labeled panels, one per
// display column, with keyword matches highlighted.
func renderRecord(m *Model, rec models.Record) string {
	width := m.contentWidth()
	inner := width - 4
	if inner < 10 {
		inner = 10
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 1).
		Width(inner)

	var sections []string

	if prior, ok := m.ledger.Get(rec.Identity); ok && prior.Decided() {
		sections = append(sections, " "+renderVerdict(m, prior))
	}

	for _, col := range m.displayColumns {
		idx := m.set.ColumnIndex(col)
		if idx < 0 {
			continue
		}
		value := strings.TrimSpace(rec.Value(idx))
		if value == "" {
			value = m.theme.Dim.Render("(empty)")
		} else if !m.matcher.Empty() {
			value = m.matcher.Highlight(value, func(s string) string {
				return m.theme.Keyword.Render(s)
			})
		}
		label := m.theme.Label.Render(" " + col)
		sections = append(sections, label, box.Render(value))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderVerdict shows the stored decision for a record that the session
// is revisiting.
func renderVerdict(m *Model, d models.Decision) string {
	switch d.Verdict {
	case models.VerdictInclude:
		return m.theme.Good.Render("currently: include")
	case models.VerdictExclude:
		msg := fmt.Sprintf("currently: exclude (%s)", d.Reason)
		if d.Note != "" {
			msg = fmt.Sprintf("currently: exclude (%s: %s)", d.Reason, d.Note)
		}
		return m.theme.Bad.Render(msg)
	}
	return ""
}
