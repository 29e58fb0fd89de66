package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/groundwork/internal/catalog"
	"github.com/alexanderramin/groundwork/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type quizKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultQuizKeyMap() quizKeyMap {
	return quizKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "answer")),
		Back:   key.NewBinding(key.WithKeys("left", "backspace"), key.WithHelp("←", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// quizModel steps through the readiness questions one at a time. When the
// last question is answered it quits with done set; answers holds the
// selected option index per question.
type quizModel struct {
	questions []catalog.AssessmentQuestion
	keys      quizKeyMap
	current   int
	cursor    int
	answers   []int
	done      bool
	aborted   bool
}

func newQuizModel(questions []catalog.AssessmentQuestion) *quizModel {
	answers := make([]int, len(questions))
	for i := range answers {
		answers[i] = -1
	}
	return &quizModel{
		questions: questions,
		keys:      defaultQuizKeyMap(),
		answers:   answers,
	}
}

func (m *quizModel) Init() tea.Cmd { return nil }

func (m *quizModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.questions[m.current].Options)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Back):
		if m.current > 0 {
			m.current--
			m.cursor = m.answers[m.current]
		}

	case key.Matches(keyMsg, m.keys.Select):
		m.answers[m.current] = m.cursor
		if m.current == len(m.questions)-1 {
			m.done = true
			return m, tea.Quit
		}
		m.current++
		m.cursor = 0
		if prev := m.answers[m.current]; prev >= 0 {
			m.cursor = prev
		}
	}
	return m, nil
}

func (m *quizModel) View() string {
	if m.done || m.aborted {
		return ""
	}
	q := m.questions[m.current]

	var b strings.Builder
	b.WriteString("\n  " + formatter.Dim(fmt.Sprintf("Question %d of %d", m.current+1, len(m.questions))) + "\n")
	b.WriteString("  " + formatter.Bold(q.Prompt) + "\n\n")
	for i, opt := range q.Options {
		marker := "  "
		label := opt.Label
		if i == m.cursor {
			marker = formatter.StyleHeader.Render("> ")
			label = formatter.StyleFg.Render(label)
		} else {
			label = formatter.Dim(label)
		}
		fmt.Fprintf(&b, "  %s%s\n", marker, label)
	}
	b.WriteString("\n  " + formatter.Dim("↑/↓ move · enter answer · ← back · q quit") + "\n")
	return b.String()
}

// points maps the selected option indexes to their point values.
func (m *quizModel) points() []int {
	pts := make([]int, len(m.answers))
	for i, a := range m.answers {
		if a >= 0 && a < len(m.questions[i].Options) {
			pts[i] = m.questions[i].Options[a].Points
		}
	}
	return pts
}
