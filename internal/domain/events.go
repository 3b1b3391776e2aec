package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventScanStarted   EventType = "ScanStarted"
	EventScanCompleted EventType = "ScanCompleted"
	EventError         EventType = "Error"
	EventTreeReshaped  EventType = "TreeReshaped"
	EventFocusChanged  EventType = "FocusChanged"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// ScanStartedEvent is emitted when a directory walk begins
type ScanStartedEvent struct {
	Root string
}

func (e ScanStartedEvent) Type() EventType { return EventScanStarted }

// ScanCompletedEvent is emitted when a directory walk finishes
type ScanCompletedEvent struct {
	Root  string
	Nodes int
}

func (e ScanCompletedEvent) Type() EventType { return EventScanCompleted }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// TreeReshapedEvent is emitted whenever the visible-node sequence is rebuilt
type TreeReshapedEvent struct {
	Reason string // "toggle", "expand_all", "collapse_all", "filter", "scan"
	Items  int
}

func (e TreeReshapedEvent) Type() EventType { return EventTreeReshaped }

// FocusChangedEvent is emitted when the roving focus moves to another row
type FocusChangedEvent struct {
	OldIndex int // -1 when nothing was focused
	NewIndex int // -1 when nothing is focused
	Path     string
}

func (e FocusChangedEvent) Type() EventType { return EventFocusChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Root string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent carries the expanded paths to persist
type ConfigChangedEvent struct {
	Expanded []string
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
