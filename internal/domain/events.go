package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSortChanged      EventType = "SortChanged"
	EventSelectionChanged EventType = "SelectionChanged"
	EventSelectionCleared EventType = "SelectionCleared"
	EventDataLoaded       EventType = "DataLoaded"
	EventLoadingChanged   EventType = "LoadingChanged"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SortChangedEvent is emitted when the active sort column or direction changes
type SortChangedEvent struct {
	Old SortState
	New SortState
}

func (e SortChangedEvent) Type() EventType { return EventSortChanged }

// SelectionChangedEvent is emitted when rows are added to or removed from the selection.
// Added and Removed hold row keys.
type SelectionChangedEvent struct {
	Added   []string
	Removed []string
	Total   int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// SelectionClearedEvent is emitted when the whole selection is dropped
type SelectionClearedEvent struct {
	Count int
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// DataLoadedEvent is emitted when the presenter receives a new data set
type DataLoadedEvent struct {
	Rows   int
	Pruned int // selected rows dropped by the selection policy
}

func (e DataLoadedEvent) Type() EventType { return EventDataLoaded }

// LoadingChangedEvent is emitted when the loading flag flips
type LoadingChangedEvent struct {
	Loading bool
}

func (e LoadingChangedEvent) Type() EventType { return EventLoadingChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path    string
	Columns int
	Rows    int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ErrorEvent is emitted when a misconfiguration or runtime error is reported
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
