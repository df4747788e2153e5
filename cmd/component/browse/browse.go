// Package browse is the interactive question browser: a list with inline
// answer expansion, create/edit forms and a delete confirmation, all driven
// by the workflow controller and the question store.
package browse

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prepqhq/prepq-cli/cmd/component/qform"
	"github.com/prepqhq/prepq-cli/model"
	"github.com/prepqhq/prepq-cli/render"
	"github.com/prepqhq/prepq-cli/suggest"
	"github.com/prepqhq/prepq-cli/workflow"
)

var (
	docStyle    = lipgloss.NewStyle().Margin(1, 2)
	statusErr   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	statusOK    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	confirmBox  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3)
	answerTitle = lipgloss.NewStyle().Bold(true).PaddingBottom(1)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

type mode int

const (
	modeList mode = iota
	modeAnswer
	modeForm
	modeConfirm
)

type item struct {
	q     model.Question
	chips string
}

var _ list.DefaultItem = item{}

func (i item) Title() string       { return render.Title(i.q) }
func (i item) Description() string { return i.chips }
func (i item) FilterValue() string {
	return strings.Join(append([]string{i.q.Title}, i.q.Tags...), " ")
}

type confirmState struct {
	id    model.ID
	title string
}

// mutationDoneMsg reports a finished create/update/delete.
type mutationDoneMsg struct {
	verb string
	err  error
}

type Model struct {
	ctl      *workflow.Controller
	renderer *render.Terminal
	index    suggest.Index

	list     list.Model
	viewport viewport.Model
	form     qform.Model
	confirm  confirmState

	mode    mode
	openID  model.ID // question whose answer is expanded
	status  string
	isErr   bool
	width   int
	height  int
	editing model.ID // zero while the form creates
}

func New(ctl *workflow.Controller, renderer *render.Terminal, index suggest.Index) Model {
	m := Model{
		ctl:      ctl,
		renderer: renderer,
		index:    index,
	}

	m.list = list.New(nil, list.NewDefaultDelegate(), 0, 0)
	m.viewport = viewport.New(0, 0)
	m.list.Title = "Interview questions"
	m.list.AdditionalShortHelpKeys = extraKeys
	m.list.AdditionalFullHelpKeys = extraKeys
	m.list.SetItems(m.items())
	return m
}

func extraKeys() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "expand answer")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy answer")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) items() []list.Item {
	questions := m.ctl.Store().List()
	items := make([]list.Item, 0, len(questions))
	for _, q := range questions {
		items = append(items, item{q: q, chips: m.renderer.Chips(q)})
	}
	return items
}

func (m Model) selected() (model.Question, bool) {
	it, ok := m.list.SelectedItem().(item)
	if !ok {
		return model.Question{}, false
	}
	return it.q, true
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)
		m.viewport.Width = msg.Width - h
		m.viewport.Height = msg.Height - v - 4
		if m.mode == modeForm {
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		}
		return m, nil

	case mutationDoneMsg:
		return m.finishMutation(msg)
	}

	switch m.mode {
	case modeList:
		return m.updateList(msg)
	case modeAnswer:
		return m.updateAnswer(msg)
	case modeForm:
		return m.updateForm(msg)
	case modeConfirm:
		return m.updateConfirm(msg)
	}
	return m, nil
}

func (m Model) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		// single-key actions are disabled while the list filter is typing
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit

			case "enter":
				return m.expandSelected()

			case "a":
				m.form = qform.New("create", m.index)
				m.editing = ""
				m.mode = modeForm
				m.status = ""
				return m, m.form.Init()

			case "e":
				q, ok := m.selected()
				if !ok {
					return m, nil
				}
				m.form = qform.NewEdit("edit", m.index, q)
				m.editing = q.ID
				m.mode = modeForm
				m.status = ""
				return m, m.form.Init()

			case "x":
				q, ok := m.selected()
				if !ok {
					return m, nil
				}
				m.confirm = confirmState{id: q.ID, title: render.Title(q)}
				m.mode = modeConfirm
				return m, nil

			case "y":
				return m.copySelected()

			case "r":
				return m, m.mutate("reload", func(ctx context.Context) error {
					return m.ctl.Refresh(ctx)
				})
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// expandSelected opens the selected question's answer. The expansion is pure
// view state keyed by the question id; nothing in the store changes.
func (m Model) expandSelected() (tea.Model, tea.Cmd) {
	q, ok := m.selected()
	if !ok {
		return m, nil
	}

	answer, err := m.renderer.Answer(q)
	if err != nil {
		m.status, m.isErr = err.Error(), true
		return m, nil
	}

	m.openID = q.ID
	m.viewport.SetContent(answer)
	m.viewport.GotoTop()
	m.mode = modeAnswer
	return m, nil
}

func (m Model) updateAnswer(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "enter", "esc", "q":
			// collapse
			m.openID = ""
			m.mode = modeList
			return m, nil
		case "y":
			return m.copySelected()
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)

	if m.form.Aborted() {
		m.mode = modeList
		return m, nil
	}

	if m.form.Done() {
		draft := m.form.Draft()
		if m.editing != "" {
			id := m.editing
			return m, m.mutate("update", func(ctx context.Context) error {
				_, err := m.ctl.Update(ctx, id, draft)
				return err
			})
		}
		return m, m.mutate("create", func(ctx context.Context) error {
			_, err := m.ctl.Create(ctx, draft)
			return err
		})
	}
	return m, cmd
}

func (m Model) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "y", "enter":
		id := m.confirm.id
		m.mode = modeList
		return m, m.mutate("delete", func(ctx context.Context) error {
			_, err := m.ctl.Delete(ctx, id, nil)
			return err
		})
	case "n", "esc", "q", "ctrl+c":
		// declined: straight back to the list, no call leaves the machine
		m.mode = modeList
		return m, nil
	}
	return m, nil
}

// mutate runs op off the update loop and reports back via mutationDoneMsg.
func (m Model) mutate(verb string, op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return mutationDoneMsg{verb: verb, err: op(context.Background())}
	}
}

func (m Model) finishMutation(msg mutationDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// keep the form open with the user's input intact
		if m.mode == modeForm {
			m.form = m.form.Retry()
		}
		m.status, m.isErr = msg.err.Error(), true
		return m, nil
	}

	if m.mode == modeForm {
		m.mode = modeList
	}
	m.renderer.Invalidate()

	switch msg.verb {
	case "create":
		m.status, m.isErr = "Question added", false
	case "update":
		m.status, m.isErr = "Question updated", false
	case "delete":
		m.status, m.isErr = "Question deleted", false
	default:
		m.status, m.isErr = "", false
	}
	return m, m.list.SetItems(m.items())
}

func (m Model) copySelected() (tea.Model, tea.Cmd) {
	q, ok := m.selected()
	if !ok {
		return m, nil
	}
	if err := clipboard.WriteAll(q.Answer); err != nil {
		m.status, m.isErr = "clipboard unavailable: "+err.Error(), true
		return m, nil
	}
	m.status, m.isErr = "Answer copied to clipboard", false
	return m, nil
}

func (m Model) View() string {
	switch m.mode {
	case modeAnswer:
		q, ok := m.ctl.Store().Get(m.openID)
		header := ""
		if ok {
			header = answerTitle.Render(render.Title(q)) + "\n" + m.renderer.Chips(q) + "\n"
		}
		help := helpStyle.Render("enter/esc: collapse • y: copy answer")
		return docStyle.Render(header + m.viewport.View() + "\n" + help)

	case modeForm:
		return docStyle.Render(m.form.View() + m.statusLine())

	case modeConfirm:
		box := confirmBox.Render("Delete \"" + m.confirm.title + "\"?\n\ny: delete • n: keep it")
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}

	return docStyle.Render(m.list.View() + m.statusLine())
}

func (m Model) statusLine() string {
	if m.status == "" {
		return ""
	}
	if m.isErr {
		return "\n" + statusErr.Render(m.status)
	}
	return "\n" + statusOK.Render(m.status)
}
