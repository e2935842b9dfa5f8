package ui

import (
	"datatable/internal/eventbus"
)

// DataMsg replaces the table's data set
type DataMsg[R any] struct {
	Rows []R
}

// LoadingMsg sets the loading flag
type LoadingMsg struct {
	Loading bool
}

// loadedMsg carries the result of Props.Load
type loadedMsg[R any] struct {
	rows []R
	err  error
}

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// pagerMsg contains the result of a pager command
type pagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
