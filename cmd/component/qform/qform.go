// Package qform is the create/edit form for a question: title, answer and a
// comma-delimited tag field with a suggestion box rendered underneath it.
//
// Each form instance owns its own suggest.Session keyed by the field key, so
// the create form and the edit form never share suggestion state.
package qform

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/suggest"
)

const (
	fieldTitle = iota
	fieldAnswer
	fieldTags
	fieldCount
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).PaddingTop(1)
	helpStyle  = lipgloss.NewStyle().Faint(true).PaddingTop(1)
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			PaddingLeft(1).
			PaddingRight(1)
	pickedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
)

type Model struct {
	heading string

	title   textinput.Model
	answer  textarea.Model
	tags    textinput.Model
	session *suggest.Session

	focus   int
	done    bool
	aborted bool
}

// New builds an empty form. fieldKey names the input surface ("create",
// "edit") and keys the suggestion session.
func New(fieldKey string, index suggest.Index) Model {
	title := textinput.New()
	title.Placeholder = "How does a goroutine differ from an OS thread?"
	title.Prompt = "? "
	title.CharLimit = 200
	title.Focus()

	answer := textarea.New()
	answer.Placeholder = "Write the answer here, markdown works"
	answer.SetHeight(8)
	answer.CharLimit = 0

	tags := textinput.New()
	tags.Placeholder = "golang, concurrency"
	tags.Prompt = "# "

	return Model{
		heading: "New question",
		title:   title,
		answer:  answer,
		tags:    tags,
		session: suggest.NewSession(fieldKey, index),
	}
}

// NewEdit builds a form prefilled from an existing question.
func NewEdit(fieldKey string, index suggest.Index, q model.Question) Model {
	m := New(fieldKey, index)
	m.heading = "Edit question"
	m.title.SetValue(q.Title)
	m.answer.SetValue(q.Answer)
	m.tags.SetValue(strings.Join(q.Tags, ", "))
	return m
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Done reports that the user submitted the form.
func (m Model) Done() bool {
	return m.done
}

// Aborted reports that the user cancelled the form.
func (m Model) Aborted() bool {
	return m.aborted
}

// Retry reopens a submitted form with the user's input intact. Called when
// the mutation fails so nothing the user typed is lost.
func (m Model) Retry() Model {
	m.done = false
	return m
}

// Draft is the payload to send: trimmed title, answer as typed, tags
// tokenized the same way the suggestion engine tokenizes them.
func (m Model) Draft() model.Draft {
	return model.Draft{
		Title:  strings.TrimSpace(m.title.Value()),
		Answer: m.answer.Value(),
		Tags:   suggest.ParseTags(m.tags.Value()),
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.done || m.aborted {
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		width := msg.Width - 6
		if width > 76 {
			width = 76
		}
		if width > 0 {
			m.title.Width = width
			m.tags.Width = width
			m.answer.SetWidth(width)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, nil

		case "ctrl+s":
			m.done = true
			return m, nil

		case "tab":
			return m.moveFocus(1), nil

		case "shift+tab":
			return m.moveFocus(-1), nil

		case "ctrl+n", "down":
			if m.focus == fieldTags {
				m.session.Move(1)
				return m, nil
			}

		case "ctrl+p", "up":
			if m.focus == fieldTags {
				m.session.Move(-1)
				return m, nil
			}

		case "enter":
			switch m.focus {
			case fieldTitle:
				return m.moveFocus(1), nil
			case fieldTags:
				if raw, ok := m.session.Commit(m.tags.Value()); ok {
					m.tags.SetValue(raw)
					m.tags.CursorEnd()
					return m, nil
				}
				m.done = true
				return m, nil
			}
		}
	}

	return m.updateFocused(msg)
}

func (m Model) moveFocus(delta int) Model {
	m.blur()
	m.focus = (m.focus + delta + fieldCount) % fieldCount
	switch m.focus {
	case fieldTitle:
		m.title.Focus()
	case fieldAnswer:
		m.answer.Focus()
	case fieldTags:
		m.tags.Focus()
		// recompute on focus, same as on every keystroke
		m.session.Refresh(m.tags.Value())
	}
	return m
}

func (m *Model) blur() {
	m.title.Blur()
	m.answer.Blur()
	m.tags.Blur()
}

func (m Model) updateFocused(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case fieldTitle:
		m.title, cmd = m.title.Update(msg)
	case fieldAnswer:
		m.answer, cmd = m.answer.Update(msg)
	case fieldTags:
		m.tags, cmd = m.tags.Update(msg)
		m.session.Refresh(m.tags.Value())
	}
	return m, cmd
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(labelStyle.Render(m.heading))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Answer"))
	b.WriteString("\n")
	b.WriteString(m.answer.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Tags"))
	b.WriteString("\n")
	b.WriteString(m.tags.View())
	b.WriteString("\n")

	if m.focus == fieldTags {
		if box := m.suggestionBox(); box != "" {
			b.WriteString(box)
			b.WriteString("\n")
		}
	}

	b.WriteString(helpStyle.Render("tab: next field • enter: pick tag • ctrl+s: save • esc: cancel"))
	return b.String()
}

// suggestionBox renders the candidate tags under the tag field. An empty
// candidate list renders nothing at all.
func (m Model) suggestionBox() string {
	items := m.session.Items()
	if len(items) == 0 {
		return ""
	}

	const maxRows = 6
	cursor := m.session.Cursor()
	start := 0
	if cursor >= maxRows {
		start = cursor - maxRows + 1
	}
	end := start + maxRows
	if end > len(items) {
		end = len(items)
	}

	var rows []string
	for i := start; i < end; i++ {
		if i == cursor {
			rows = append(rows, pickedStyle.Render("› "+items[i]))
			continue
		}
		rows = append(rows, "  "+items[i])
	}
	return boxStyle.Render(strings.Join(rows, "\n"))
}
