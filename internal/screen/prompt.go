package screen

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderPrompt draws the area between the record and the status bar.
// Its height varies with the mode, see promptHeight.
func renderPrompt(m *Model) string {
	switch m.mode {
	case modeReason:
		return renderReasonMenu(m)
	case modeNote:
		return renderNoteInput(m)
	}

	hints := keyHint(m, "i", "include") + "  " +
		keyHint(m, "e", "exclude") + "  " +
		keyHint(m, "s", "skip") + "  " +
		keyHint(m, "q", "save & quit") + "  " +
		keyHint(m, "?", "help")
	left := " " + hints

	right := ""
	if !m.viewport.AtBottom() {
		right = m.theme.Dim.Render("↓ more") + " "
	}

	gap := m.contentWidth() - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func renderReasonMenu(m *Model) string {
	lines := make([]string, 0, len(m.reasons)+2)
	lines = append(lines, " "+m.theme.Prompt.Render("Why exclude this record?"))
	for i, reason := range m.reasons {
		lines = append(lines, fmt.Sprintf("   %s %s", m.theme.Key.Render(fmt.Sprintf("%d.", i+1)), reason))
	}
	lines = append(lines, " "+keyHint(m, "Esc", "back"))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderNoteInput(m *Model) string {
	title := " " + m.theme.Prompt.Render(fmt.Sprintf("Excluding (%s), add a short note:", m.pendingReason))
	hint := " " + keyHint(m, "Enter", "confirm") + "  " + keyHint(m, "Esc", "back")
	return lipgloss.JoinVertical(lipgloss.Left, title, " "+m.noteInput.View(), hint)
}

func keyHint(m *Model, k, desc string) string {
	return m.theme.Key.Render(k) + " " + m.theme.Hint.Render(desc)
}
