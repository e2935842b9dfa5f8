package selection

import (
	"log"
	"slices"

	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/logic"
)

// Tracker maintains the set of selected rows and notifies an observer on
// every change. Whether rows can be selected at all is fixed at construction.
type Tracker[R any] struct {
	state      *State[R]
	bus        eventbus.EventBus
	key        logic.KeyFunc[R]
	selectable bool
	observer   Observer[R]
	policy     domain.SelectionPolicy
}

// NewTracker creates a tracker. A nil key identifies rows structurally.
func NewTracker[R any](bus eventbus.EventBus, key logic.KeyFunc[R], selectable bool, observer Observer[R]) *Tracker[R] {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	if key == nil {
		key = logic.StructuralKey[R]
	}
	return &Tracker[R]{
		state:      &State[R]{},
		bus:        bus,
		key:        key,
		selectable: selectable,
		observer:   observer,
		policy:     domain.SelectionPrune,
	}
}

// SetPolicy sets what Reconcile does with rows missing from a new data set
func (t *Tracker[R]) SetPolicy(policy domain.SelectionPolicy) {
	t.policy = policy
}

// Policy returns the data-change policy
func (t *Tracker[R]) Policy() domain.SelectionPolicy {
	return t.policy
}

// Selectable reports whether the tracker accepts toggles
func (t *Tracker[R]) Selectable() bool {
	return t.selectable
}

// Key returns the identity of row
func (t *Tracker[R]) Key(row R) string {
	return t.key(row)
}

// Toggle removes row from the selection if present, otherwise appends it.
// The observer is called with the new selection before Toggle returns.
// On a non-selectable tracker nothing happens and the observer is not called.
func (t *Tracker[R]) Toggle(row R) []R {
	if !t.selectable {
		return t.Selected()
	}

	k := t.key(row)
	wasSelected := logic.IsSelected(t.state.Selected, row, t.key)
	t.state.Selected = logic.ToggleSelection(t.state.Selected, row, t.key)
	t.state.LastToggled = k

	event := eventbus.SelectionChangedEvent{Total: len(t.state.Selected)}
	if wasSelected {
		event.Removed = []string{k}
	} else {
		event.Added = []string{k}
	}

	t.notify()
	t.bus.Publish(event)
	return t.Selected()
}

// IsSelected checks if a row is selected
func (t *Tracker[R]) IsSelected(row R) bool {
	return logic.IsSelected(t.state.Selected, row, t.key)
}

// Selected returns a copy of the selection in selection order
func (t *Tracker[R]) Selected() []R {
	if len(t.state.Selected) == 0 {
		return []R{}
	}
	return slices.Clone(t.state.Selected)
}

// Count returns the number of selected rows
func (t *Tracker[R]) Count() int {
	return len(t.state.Selected)
}

// HasSelection returns true if anything is selected
func (t *Tracker[R]) HasSelection() bool {
	return len(t.state.Selected) > 0
}

// LastToggled returns the key of the most recently toggled row
func (t *Tracker[R]) LastToggled() string {
	return t.state.LastToggled
}

// Clear empties the selection. The observer is only called if something was selected.
func (t *Tracker[R]) Clear() {
	if !t.selectable || len(t.state.Selected) == 0 {
		return
	}

	count := len(t.state.Selected)
	t.state.Selected = nil
	t.state.LastToggled = ""

	t.notify()
	t.bus.Publish(eventbus.SelectionClearedEvent{Count: count})
}

// Reconcile applies the selection policy after the data set was replaced and
// returns how many selected rows were dropped. Under SelectionPrune, rows
// missing from the new data leave the selection and surviving rows are
// swapped for their new values; the observer is told when either changes
// what Selected returns. Under SelectionPreserve the selection is left as it is.
func (t *Tracker[R]) Reconcile(rows []R) int {
	if t.policy == domain.SelectionPreserve || len(t.state.Selected) == 0 {
		return 0
	}

	previous := t.state.Selected
	pruned, removed := logic.PruneSelection(previous, rows, t.key)
	t.state.Selected = pruned
	if len(removed) == 0 {
		if refreshed(previous, pruned) {
			t.notify()
		}
		return 0
	}

	log.Printf("Selection pruned %d stale rows", len(removed))
	t.notify()
	t.bus.Publish(eventbus.SelectionChangedEvent{
		Removed: logic.SelectionKeys(removed, t.key),
		Total:   len(pruned),
	})
	return len(removed)
}

func (t *Tracker[R]) notify() {
	if t.observer != nil {
		t.observer(t.Selected())
	}
}

// refreshed reports whether any surviving row now carries different values
func refreshed[R any](before, after []R) bool {
	return !slices.EqualFunc(before, after, func(a, b R) bool {
		return logic.StructuralKey(a) == logic.StructuralKey(b)
	})
}
