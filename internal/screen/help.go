package screen

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpSection struct {
	title string
	keys  []helpKey
}

type helpKey struct {
	key  string
	desc string
}

var helpSections = []helpSection{
	{
		title: "Deciding",
		keys: []helpKey{
			{"i", "Include this record"},
			{"e", "Exclude (opens the reason menu)"},
			{"s", "Skip, decide later"},
			{"j/k ↑/↓", "Scroll the record"},
			{"PgUp/PgDn", "Scroll half a page"},
			{"q / Ctrl+c", "Save and quit"},
		},
	},
	{
		title: "Reason menu",
		keys: []helpKey{
			{"1-9", "Pick an exclusion reason"},
			{"Esc", "Back to the record"},
		},
	},
	{
		title: "Note",
		keys: []helpKey{
			{"Enter", "Confirm the exclusion"},
			{"Esc", "Back to the reason menu"},
		},
	},
}

// renderHelp renders the help overlay content.
func renderHelp(m *Model) string {
	maxWidth := 52
	if m.width-4 < maxWidth {
		maxWidth = m.width - 4
	}
	if maxWidth < 30 {
		maxWidth = 30
	}

	lines := make([]string, 0, len(helpSections)*6+3)
	lines = append(lines, m.theme.Prompt.Render("Keys"))

	for _, sec := range helpSections {
		lines = append(lines, "", m.theme.Label.Render(sec.title))
		for _, k := range sec.keys {
			keyCol := m.theme.Key.Width(12).Render(k.key)
			lines = append(lines, "  "+keyCol+m.theme.Hint.Render(k.desc))
		}
	}

	lines = append(lines, "", m.theme.Dim.Render("Press any key to close"))

	panel := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.BorderColor).
		Padding(0, 2)
	return panel.Width(maxWidth).Render(strings.Join(lines, "\n"))
}
