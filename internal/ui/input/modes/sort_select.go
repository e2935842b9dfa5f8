package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"datatable/internal/domain"
	"datatable/internal/ui/input/keys"
	"datatable/internal/ui/input/types"
)

// SortSelectMode lets the user walk through the sortable columns, applying
// each one immediately, and either accept the result or restore the sort
// that was active on entry
type SortSelectMode struct {
	keys      keys.KeyMap
	options   []domain.Column
	sortIndex int
	original  domain.SortState
	direction domain.SortDirection
}

func NewSortSelectMode(km keys.KeyMap) *SortSelectMode {
	return &SortSelectMode{keys: km}
}

func (m *SortSelectMode) Name() string {
	return "sort"
}

func (m *SortSelectMode) Enter(ctx types.Context) []types.Action {
	m.options = m.options[:0]
	for _, col := range ctx.Columns() {
		if col.Sortable {
			m.options = append(m.options, col)
		}
	}

	m.original = ctx.SortState()
	m.direction = domain.Ascending
	m.sortIndex = 0

	// Start on the current sort column, else the focused one
	focused := ""
	if cols := ctx.Columns(); ctx.FocusedColumn() < len(cols) {
		focused = cols[ctx.FocusedColumn()].Key
	}
	for i, col := range m.options {
		if col.Key == m.original.ColumnKey {
			m.sortIndex = i
			m.direction = m.original.Direction
			break
		}
		if col.Key == focused {
			m.sortIndex = i
		}
	}

	return []types.Action{types.UpdateSortIndexAction{Index: m.sortIndex}}
}

func (m *SortSelectMode) Exit(ctx types.Context) []types.Action {
	return nil
}

// HandleKey processes key messages for sort selection
func (m *SortSelectMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if len(m.options) == 0 {
		// Nothing sortable, any key leaves the menu
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Accept):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, m.keys.Cancel):
		restore := types.Action(types.SetSortAction{State: m.original})
		if !m.original.IsSorted() {
			restore = types.ClearSortAction{}
		}
		return []types.Action{restore, types.ChangeModeAction{Mode: types.ModeNormal}}, true

	case key.Matches(msg, m.keys.Up):
		m.sortIndex--
		if m.sortIndex < 0 {
			m.sortIndex = len(m.options) - 1
		}
		return m.apply(), true

	case key.Matches(msg, m.keys.Down):
		m.sortIndex++
		if m.sortIndex >= len(m.options) {
			m.sortIndex = 0
		}
		return m.apply(), true

	case key.Matches(msg, m.keys.Reverse):
		m.direction = m.direction.Flip()
		return m.apply(), true
	}

	// Swallow everything else while the menu is open
	return nil, true
}

// GetCurrentIndex returns the current sort option index
func (m *SortSelectMode) GetCurrentIndex() int {
	return m.sortIndex
}

// Options returns the sortable columns offered by the menu
func (m *SortSelectMode) Options() []domain.Column {
	return m.options
}

func (m *SortSelectMode) apply() []types.Action {
	return []types.Action{
		types.UpdateSortIndexAction{Index: m.sortIndex},
		types.SetSortAction{State: domain.SortState{
			ColumnKey: m.options[m.sortIndex].Key,
			Direction: m.direction,
		}},
	}
}
