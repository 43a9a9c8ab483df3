// Package question is the popup quiz window: one question in, one
// answer out. It fetches a question through the selector, grades the
// answer, records the attempt in the ledger, and shows feedback.
package question

import (
	"context"
	"fmt"
	"os"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizmate/internal/ledger"
	"github.com/abhisek/quizmate/internal/quiz"
	"github.com/abhisek/quizmate/internal/selector"
	"github.com/abhisek/quizmate/internal/ui/components"
	"github.com/abhisek/quizmate/internal/ui/theme"
)

// Model is the Bubble Tea model for a single question round.
type Model struct {
	sel   *selector.Selector
	led   *ledger.Service
	prefs selector.Prefs

	width  int
	height int

	result   *selector.Result
	choice   components.MultiChoice
	spin     spinner.Model
	feedback *quiz.Feedback
	askedAt  time.Time
	errMsg   string

	now func() time.Time
}

// New creates a question round over the given selector and ledger.
func New(sel *selector.Selector, led *ledger.Service, prefs selector.Prefs) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return Model{
		sel:   sel,
		led:   led,
		prefs: prefs,
		spin:  sp,
		now:   time.Now,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetchQuestion(), m.spin.Tick)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case questionReadyMsg:
		return m.handleQuestionReady(msg)

	case answerRecordedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.feedback = msg.Feedback
		return m, nil

	case spinner.TickMsg:
		if m.result == nil && m.errMsg == "" {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleQuestionReady(msg questionReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	q := msg.Result.Question
	m.result = msg.Result
	m.choice = components.NewMultiChoice(q.Question, q.Options, q.Correct)
	m.askedAt = m.now()
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if key == "ctrl+c" {
		m.sel.Abandon()
		return m, tea.Quit
	}

	// Error state. Any key closes the window.
	if m.errMsg != "" {
		return m, tea.Quit
	}

	// Feedback overlay. Any key closes the window.
	if m.feedback != nil {
		return m, tea.Quit
	}

	// Still fetching.
	if m.result == nil {
		if key == "esc" {
			return m, tea.Quit
		}
		return m, nil
	}

	switch key {
	case "esc", "q":
		// Dismissed without answering. The question is dropped and not
		// counted against the learner.
		m.sel.Abandon()
		return m, tea.Quit
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(m.choice.Options) {
			m.choice.Selected = idx
			m.choice.Submitted = true
			m.choice.ChosenIndex = idx
			return m, m.submitAnswer()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	if m.choice.Submitted && m.feedback == nil {
		return m, m.submitAnswer()
	}
	return m, cmd
}

// submitAnswer grades the chosen option and appends the attempt to the
// ledger, off the update loop.
func (m Model) submitAnswer() tea.Cmd {
	sel := m.sel
	led := m.led
	q := m.result.Question
	source := m.result.Source()
	answer := m.choice.ChosenIndex
	elapsed := m.now().Sub(m.askedAt).Milliseconds()

	return func() tea.Msg {
		fb, err := sel.CheckAnswer(q.ID, answer)
		if err != nil {
			return answerRecordedMsg{Err: fmt.Errorf("check answer: %w", err)}
		}
		ctx := context.Background()
		if _, err := led.RecordAttempt(ctx, q.Topic, q.Level, source, answer, q.Correct, elapsed); err != nil {
			return answerRecordedMsg{Err: fmt.Errorf("record attempt: %w", err)}
		}
		return answerRecordedMsg{Feedback: fb}
	}
}

// fetchQuestion asks the selector for the next question asynchronously.
func (m Model) fetchQuestion() tea.Cmd {
	sel := m.sel
	prefs := m.prefs
	return func() tea.Msg {
		result, err := sel.Next(context.Background(), prefs)
		if err != nil {
			return questionReadyMsg{Err: err}
		}
		return questionReadyMsg{Result: result}
	}
}

// Run shows one question round and blocks until it is answered or
// dismissed.
func Run(sel *selector.Selector, led *ledger.Service, prefs selector.Prefs) error {
	p := tea.NewProgram(New(sel, led, prefs))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running question window:", err)
		return err
	}
	return nil
}
