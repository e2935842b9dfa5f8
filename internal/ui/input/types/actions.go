package types

import "datatable/internal/domain"

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// FocusColumnAction moves header focus
type FocusColumnAction struct {
	Direction string // "left" or "right"
}

func (a FocusColumnAction) Type() string { return "focus_column" }

// Sort actions
type SortColumnAction struct {
	Index int // -1 for the focused column
}

func (a SortColumnAction) Type() string { return "sort_column" }

type SetSortAction struct {
	State domain.SortState
}

func (a SetSortAction) Type() string { return "set_sort" }

type ClearSortAction struct{}

func (a ClearSortAction) Type() string { return "clear_sort" }

type UpdateSortIndexAction struct {
	Index int
}

func (a UpdateSortIndexAction) Type() string { return "update_sort_index" }

// Selection actions
type ToggleRowAction struct {
	Index int // -1 for current
}

func (a ToggleRowAction) Type() string { return "toggle_row" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type OpenPagerAction struct{}

func (a OpenPagerAction) Type() string { return "open_pager" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
