package sorting

import (
	"fmt"
	"log"
	"slices"

	"datatable/internal/domain"
	"datatable/internal/eventbus"
	"datatable/internal/logic"
)

// Service owns the table's sort state and the column set it refers to
type Service struct {
	state   *State
	bus     eventbus.EventBus
	columns []domain.Column
}

// NewService creates a new sorting service with no active sort
func NewService(bus eventbus.EventBus, columns []domain.Column) *Service {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Service{
		state:   &State{},
		bus:     bus,
		columns: slices.Clone(columns),
	}
}

// Columns returns the current column set
func (s *Service) Columns() []domain.Column {
	return s.columns
}

// SetColumns replaces the column set. If the active column is gone or no
// longer sortable the sort is dropped.
func (s *Service) SetColumns(columns []domain.Column) {
	s.columns = slices.Clone(columns)

	if !s.state.Current.IsSorted() {
		return
	}
	if col, ok := logic.FindColumn(s.columns, s.state.Current.ColumnKey); !ok || !col.Sortable {
		log.Printf("Sort column %q no longer sortable, clearing sort", s.state.Current.ColumnKey)
		s.setState(domain.SortState{})
	}
}

// State returns the current sort state
func (s *Service) State() domain.SortState {
	return s.state.Current
}

// SetState applies a sort state directly. States naming an unknown or
// non-sortable column are ignored.
func (s *Service) SetState(state domain.SortState) bool {
	if state.IsSorted() {
		if col, ok := logic.FindColumn(s.columns, state.ColumnKey); !ok || !col.Sortable {
			return false
		}
	}
	return s.setState(state)
}

// Toggle activates the column with the given key, flipping direction when it
// is already active. Returns true if the sort state changed.
func (s *Service) Toggle(key string) bool {
	return s.setState(logic.ToggleSort(s.state.Current, key, s.columns))
}

// ToggleIndex toggles the column at position index
func (s *Service) ToggleIndex(index int) bool {
	if index < 0 || index >= len(s.columns) {
		return false
	}
	return s.Toggle(s.columns[index].Key)
}

// Clear drops the active sort, restoring input order
func (s *Service) Clear() bool {
	return s.setState(domain.SortState{})
}

// DirectionFor reports the direction for the column with the given key and
// whether that column is the active one
func (s *Service) DirectionFor(key string) (domain.SortDirection, bool) {
	if key == "" || s.state.Current.ColumnKey != key {
		return domain.Ascending, false
	}
	return s.state.Current.Direction, true
}

// Describe returns a short description of the current sort
func (s *Service) Describe() string {
	if !s.state.Current.IsSorted() {
		return "unsorted"
	}
	title := s.state.Current.ColumnKey
	if col, ok := logic.FindColumn(s.columns, title); ok && col.Title != "" {
		title = col.Title
	}
	return fmt.Sprintf("sorted by %s (%s)", title, s.state.Current.Direction)
}

func (s *Service) setState(state domain.SortState) bool {
	if state == s.state.Current {
		return false
	}

	old := s.state.Current
	s.state.Current = state
	log.Printf("Sort changed: %q %s -> %q %s", old.ColumnKey, old.Direction, state.ColumnKey, state.Direction)

	s.bus.Publish(eventbus.SortChangedEvent{
		Old: old,
		New: state,
	})
	return true
}

// Sort orders rows by the service's current state
func Sort[R any](s *Service, rows []R, accessor logic.Accessor[R]) []R {
	return logic.Sort(rows, s.columns, s.state.Current, accessor)
}
