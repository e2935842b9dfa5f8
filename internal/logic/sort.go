package logic

import (
	"slices"

	"datatable/internal/domain"
)

// keyedRow pairs a row with the value it sorts by, read once up front
type keyedRow[R any] struct {
	row   R
	value any
}

// Sort returns the rows in display order for the given sort state.
//
// The input slice is never modified; the result is always a new slice of the
// same length. When no column is active, or the active key names an unknown
// or non-sortable column, the result keeps input order. Otherwise rows are
// ordered by the value each holds under the column's DataIndex, using
// CompareValues (CompareNatural for Natural columns). Rows with equal values
// keep their relative input order in both directions. A missing field counts
// as absent, which sorts first ascending and last descending.
//
// A nil accessor defaults to FieldAccessor.
func Sort[R any](rows []R, columns []domain.Column, state domain.SortState, accessor Accessor[R]) []R {
	sorted := slices.Clone(rows)

	col, ok := sortableColumn(columns, state.ColumnKey)
	if !ok || len(sorted) < 2 {
		return sorted
	}
	if accessor == nil {
		accessor = FieldAccessor[R]()
	}

	compare := CompareValues
	if col.Natural {
		compare = CompareNatural
	}

	keyed := make([]keyedRow[R], len(rows))
	for i, row := range rows {
		v, _ := accessor(row, col.DataIndex)
		keyed[i] = keyedRow[R]{row: row, value: v}
	}

	slices.SortStableFunc(keyed, func(a, b keyedRow[R]) int {
		c := compare(a.value, b.value)
		if state.Direction == domain.Descending {
			return -c
		}
		return c
	})

	for i, k := range keyed {
		sorted[i] = k.row
	}
	return sorted
}

// ToggleSort returns the sort state after the user activates the column with
// the given key:
//   - a sortable column that is not active becomes active, ascending
//   - the active column flips direction
//   - an unknown or non-sortable key leaves the state unchanged
func ToggleSort(state domain.SortState, key string, columns []domain.Column) domain.SortState {
	if _, ok := sortableColumn(columns, key); !ok {
		return state
	}
	if state.ColumnKey == key {
		return domain.SortState{ColumnKey: key, Direction: state.Direction.Flip()}
	}
	return domain.SortState{ColumnKey: key, Direction: domain.Ascending}
}

// FindColumn returns the column with the given key
func FindColumn(columns []domain.Column, key string) (domain.Column, bool) {
	if key == "" {
		return domain.Column{}, false
	}
	i := slices.IndexFunc(columns, func(c domain.Column) bool { return c.Key == key })
	if i < 0 {
		return domain.Column{}, false
	}
	return columns[i], true
}

func sortableColumn(columns []domain.Column, key string) (domain.Column, bool) {
	col, ok := FindColumn(columns, key)
	if !ok || !col.Sortable {
		return domain.Column{}, false
	}
	return col, true
}
