package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/docent/internal/session"
	"github.com/abhisek/docent/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	inputLine := m.renderInput()

	chromeHeight := lipgloss.Height(header) + lipgloss.Height(footer) + lipgloss.Height(inputLine)
	bodyHeight := m.height - chromeHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	body := m.renderTranscript(bodyHeight)

	v.SetContent(lipgloss.JoinVertical(lipgloss.Left, header, body, inputLine, footer))
	return v
}

func (m Model) renderHeader() string {
	title := "docent"
	if syl, err := m.ctrl.Syllabus(); err == nil {
		title = syl.Name
	}

	progress := ""
	if stage, err := m.ctrl.CurrentStage(); err == nil {
		idx, total := m.ctrl.Progress()
		progress = theme.StageBadge.Render(fmt.Sprintf("stage %s (%d/%d)", stage.ID, idx+1, total))
	}

	left := theme.Title.Render(title)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(progress) - 4
	if gap < 1 {
		gap = 1
	}
	return theme.Header.Width(m.width).Render(left + strings.Repeat(" ", gap) + progress)
}

func (m Model) renderTranscript(height int) string {
	wrap := lipgloss.NewStyle().Width(m.width - 2)

	var lines []string
	for _, e := range m.transcript {
		lines = append(lines, renderEntry(e, wrap), "")
	}

	// Keep the tail of the conversation in view.
	joined := strings.Split(strings.Join(lines, "\n"), "\n")
	if len(joined) > height {
		joined = joined[len(joined)-height:]
	}
	return strings.Join(joined, "\n")
}

func renderEntry(e entry, wrap lipgloss.Style) string {
	if e.notice {
		return theme.NoticeText.Render("• ") + theme.NoticeText.Render(wrap.Render(e.content))
	}

	label := theme.TutorLabel.Render("tutor")
	if e.role == session.RoleLearner {
		label = theme.LearnerLabel.Render("you")
	}

	badge := ""
	if e.badge != "" {
		badge = " " + verdictBadge(e.badge)
	}

	return label + badge + "\n" + theme.Body.Render(wrap.Render(e.content))
}

func verdictBadge(outcome string) string {
	switch outcome {
	case "correct":
		return theme.Correct.Render("✓ correct")
	case "partial":
		return theme.PartialBadge.Render("◐ partial")
	case "incorrect":
		return theme.Incorrect.Render("✗ incorrect")
	default:
		return theme.Hint.Render(outcome)
	}
}

func (m Model) renderInput() string {
	if m.busy {
		return theme.Hint.Render("  " + m.status)
	}

	var b strings.Builder
	if len(m.pending) > 0 {
		names := make([]string, 0, len(m.pending))
		for _, ref := range m.pending {
			names = append(names, fmt.Sprintf("%s:%s", ref.Kind, ref.Locator))
		}
		b.WriteString(theme.Hint.Render("  attachments: " + strings.Join(names, ", ")))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString(theme.ErrorText.Render("  " + m.status))
		b.WriteString("\n")
	}
	b.WriteString("> " + m.input.View())
	return b.String()
}

func (m Model) renderFooter() string {
	return theme.Footer.Width(m.width).Render("Enter submit · /help commands · Ctrl+C quit")
}
