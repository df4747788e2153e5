package qform

import tea "github.com/charmbracelet/bubbletea"

// Run drives the form as a standalone program, for commands like `prepq add`
// that aren't inside the browse TUI. The returned model reports Done or
// Aborted.
func Run(m Model) (Model, error) {
	out, err := tea.NewProgram(runner{Model: m}).Run()
	if err != nil {
		return m, err
	}
	return out.(runner).Model, nil
}

type runner struct {
	Model
}

func (r runner) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	fm, cmd := r.Model.Update(msg)
	r.Model = fm
	if r.Model.Done() || r.Model.Aborted() {
		return r, tea.Quit
	}
	return r, cmd
}
