package domain

import "fmt"

// SortDirection is the order applied to the active sort column
type SortDirection int

const (
	Ascending SortDirection = iota
	Descending
)

// String returns the string representation of a SortDirection
func (d SortDirection) String() string {
	switch d {
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return fmt.Sprintf("unknown(%d)", int(d))
	}
}

// Flip returns the opposite direction
func (d SortDirection) Flip() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// Column describes how one column of the table reads and labels row values
type Column struct {
	Key       string // unique within a column set
	Title     string // header label
	DataIndex string // row field the column reads
	Sortable  bool
	Natural   bool // natural string ordering, "item2" before "item10"
	Width     int  // render hint, 0 means size to content
}

// SortState holds the active sort column and direction.
// An empty ColumnKey means no sort is applied and input order is kept.
type SortState struct {
	ColumnKey string
	Direction SortDirection
}

// IsSorted returns true if a column is active
func (s SortState) IsSorted() bool {
	return s.ColumnKey != ""
}

// TableStatus is what the presenter currently displays
type TableStatus int

const (
	StatusReady TableStatus = iota
	StatusLoading
	StatusEmpty
)

// String returns the string representation of a TableStatus
func (s TableStatus) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusLoading:
		return "loading"
	case StatusEmpty:
		return "empty"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// SelectionPolicy decides what happens to selected rows when the data set is replaced
type SelectionPolicy string

const (
	// SelectionPrune drops selected rows that are missing from the new data
	SelectionPrune SelectionPolicy = "prune"
	// SelectionPreserve keeps the selection untouched, stale rows included
	SelectionPreserve SelectionPolicy = "preserve"
)

// ParseSelectionPolicy converts a config value into a SelectionPolicy.
// The empty string maps to SelectionPrune.
func ParseSelectionPolicy(s string) (SelectionPolicy, error) {
	switch SelectionPolicy(s) {
	case "", SelectionPrune:
		return SelectionPrune, nil
	case SelectionPreserve:
		return SelectionPreserve, nil
	default:
		return "", fmt.Errorf("unknown selection policy %q", s)
	}
}
