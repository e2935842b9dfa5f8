package sorting

import "datatable/internal/domain"

// State holds sorting state
type State struct {
	Current domain.SortState
}
