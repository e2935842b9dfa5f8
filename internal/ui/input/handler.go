package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"datatable/internal/ui/input/keys"
	"datatable/internal/ui/input/modes"
	"datatable/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        keys.KeyMap
	sortSelect  *modes.SortSelectMode
}

func New(km keys.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        km,
		sortSelect:  modes.NewSortSelectMode(km),
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(km)
	h.modes[types.ModeSortSelect] = h.sortSelect

	return h
}

// HandleKey routes msg to the current mode and applies mode changes. Mode
// changes are consumed here and not returned to the caller.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	var allActions []types.Action
	for _, action := range actions {
		changeMode, ok := action.(types.ChangeModeAction)
		if !ok {
			allActions = append(allActions, action)
			continue
		}

		if current := h.modes[h.currentMode]; current != nil {
			allActions = append(allActions, current.Exit(ctx)...)
		}
		h.currentMode = changeMode.Mode
		if next := h.modes[h.currentMode]; next != nil {
			allActions = append(allActions, next.Enter(ctx)...)
		}
	}

	return allActions
}

// CurrentMode returns the active input mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// Keys returns the key bindings in use
func (h *Handler) Keys() keys.KeyMap {
	return h.keys
}

// SortSelect exposes the sort menu state for rendering
func (h *Handler) SortSelect() *modes.SortSelectMode {
	return h.sortSelect
}

// Reset returns to normal mode
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
