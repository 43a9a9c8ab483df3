package question

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/ui/theme"
)

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.content())
	return v
}

func (m Model) content() string {
	switch {
	case m.errMsg != "":
		return m.renderError()
	case m.feedback != nil:
		return m.renderFeedback()
	case m.result == nil:
		return m.renderLoading()
	default:
		return m.renderQuestion()
	}
}

func (m Model) renderLoading() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + m.spin.View() + " Picking your next question...")
}

func (m Model) renderError() string {
	return lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to close.", m.errMsg))
}

// renderQuestion shows the topic line, the multiple-choice block, and
// the key hints.
func (m Model) renderQuestion() string {
	q := m.result.Question

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s · %s", q.Topic, q.Level))
	b.WriteString(info)

	tag := sourceTag(m.result.Source())
	if tag != "" {
		b.WriteString("  ")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(tag))
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(m.width-4, 1))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.choice.View()))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Select (1-4) or arrows + Enter · Esc to dismiss"))

	return b.String()
}

// renderFeedback shows the graded options and the explanation.
func (m Model) renderFeedback() string {
	fb := m.feedback

	var b strings.Builder
	b.WriteString("\n")

	if fb.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(m.width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Correct answer: " + fb.CorrectAnswer))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.choice.View()))
	b.WriteString("\n")

	if fb.Explanation != "" {
		expStyle := lipgloss.NewStyle().
			Width(min(m.width-8, 70)).
			Foreground(theme.Text)
		b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, expStyle.Render(fb.Explanation)))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(m.width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to close..."))

	return b.String()
}

// sourceTag annotates non-AI sources so the learner knows when the
// question did not come from a fresh generation.
func sourceTag(source string) string {
	switch source {
	case quiz.SourceCache:
		return "(from cache)"
	case quiz.SourceStaticFallback:
		return "(AI unavailable, from the built-in bank)"
	default:
		return ""
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
