package modes

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"datatable/internal/ui/input/keys"
	"datatable/internal/ui/input/types"
)

type NormalMode struct {
	keys        keys.KeyMap
	lastKeyWasG bool
	lastGTime   time.Time
}

func NewNormalMode(km keys.KeyMap) *NormalMode {
	return &NormalMode{keys: km}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	// Any key other than a second g within the timeout cancels the prefix
	if msg.String() == "g" {
		if m.lastKeyWasG && time.Since(m.lastGTime) < 500*time.Millisecond {
			m.lastKeyWasG = false
			return []types.Action{types.NavigateAction{Direction: "home"}}, true
		}
		m.lastKeyWasG = true
		m.lastGTime = time.Now()
		return nil, true
	}
	m.lastKeyWasG = false

	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true

	case key.Matches(msg, m.keys.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true

	case key.Matches(msg, m.keys.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true

	case key.Matches(msg, m.keys.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true

	case key.Matches(msg, m.keys.Top):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true

	case key.Matches(msg, m.keys.Bottom):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, m.keys.Left):
		return []types.Action{types.FocusColumnAction{Direction: "left"}}, true

	case key.Matches(msg, m.keys.Right):
		return []types.Action{types.FocusColumnAction{Direction: "right"}}, true

	case key.Matches(msg, m.keys.Sort):
		return []types.Action{types.SortColumnAction{Index: -1}}, true

	case key.Matches(msg, m.keys.SortNth):
		// Digits are 1-based column positions
		index := int(msg.Runes[0] - '1')
		if index >= len(ctx.Columns()) {
			return nil, true
		}
		return []types.Action{types.SortColumnAction{Index: index}}, true

	case key.Matches(msg, m.keys.ClearSort):
		if !ctx.SortState().IsSorted() {
			return nil, true
		}
		return []types.Action{types.ClearSortAction{}}, true

	case key.Matches(msg, m.keys.SortMenu):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeSortSelect}}, true

	case key.Matches(msg, m.keys.Toggle):
		if !ctx.Selectable() || ctx.TotalRows() == 0 {
			return nil, true
		}
		return []types.Action{types.ToggleRowAction{Index: -1}}, true

	case key.Matches(msg, m.keys.ClearSel):
		if !ctx.HasSelection() {
			return nil, true
		}
		return []types.Action{types.ClearSelectionAction{}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.OpenPagerAction{}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}
