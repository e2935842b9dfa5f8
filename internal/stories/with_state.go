package stories

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"datatable/internal/config"
	"datatable/internal/eventbus"
	"datatable/internal/ui"
)

var selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).PaddingLeft(2)

// withState mirrors the table's selection in a line under it, the way a
// parent component would hold the selection in its own state
type withState struct {
	table    *ui.Model[User]
	selected []User
}

// SelectableWithState shows the current selection under the table
func SelectableWithState(bus eventbus.EventBus, _ *config.Config) Model {
	w := &withState{}
	w.table = ui.NewModel(bus, ui.Props[User]{
		Title:       "Selectable with state",
		Data:        Users(),
		Columns:     UserColumns(),
		Selectable:  true,
		Key:         UserKey,
		OnRowSelect: func(selected []User) { w.selected = selected },
	})
	return w
}

func (w *withState) Init() tea.Cmd {
	return w.table.Init()
}

func (w *withState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		// Leave a line for the selection summary
		size.Height--
		msg = size
	}
	_, cmd := w.table.Update(msg)
	return w, cmd
}

func (w *withState) View() string {
	return w.table.View() + "\n" + selectedStyle.Render("Selected: "+w.Summary())
}

func (w *withState) SetProgram(p *tea.Program) {
	w.table.SetProgram(p)
}

// Summary lists selected names, or None
func (w *withState) Summary() string {
	if len(w.selected) == 0 {
		return "None"
	}
	names := make([]string, len(w.selected))
	for i, u := range w.selected {
		names[i] = u.Name
	}
	return strings.Join(names, ", ")
}
