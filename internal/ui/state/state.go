package state

import (
	"datatable/internal/domain"
)

// TableState contains the presentation state that is not owned by the
// sorting and selection services
type TableState struct {
	// Data state
	Loading  bool // whether the data source is still loading
	RowCount int  // rows in the current data set

	// UI state
	Width         int
	Height        int
	ShowHelp      bool   // full help instead of the short footer
	ShowBorder    bool   // draw borders around the table
	StatusMessage string // status bar message

	// Misconfiguration is logged once per distinct message
	reported map[string]bool
}

// NewTableState creates a new table state
func NewTableState() *TableState {
	return &TableState{
		ShowBorder: true,
		reported:   make(map[string]bool),
	}
}

// Status derives the display status. Loading wins over an empty data set.
func (s *TableState) Status() domain.TableStatus {
	switch {
	case s.Loading:
		return domain.StatusLoading
	case s.RowCount == 0:
		return domain.StatusEmpty
	default:
		return domain.StatusReady
	}
}

// SetSize records the terminal size
func (s *TableState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// ReportOnce returns true the first time it sees msg
func (s *TableState) ReportOnce(msg string) bool {
	if s.reported[msg] {
		return false
	}
	s.reported[msg] = true
	return true
}
