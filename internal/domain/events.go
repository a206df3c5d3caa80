package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSearchDispatched EventType = "SearchDispatched"
	EventSearchCompleted  EventType = "SearchCompleted"
	EventSearchFailed     EventType = "SearchFailed"
	EventResultsCleared   EventType = "ResultsCleared"
	EventNavigated        EventType = "Navigated"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SearchDispatchedEvent is emitted when a request leaves for the backend
type SearchDispatchedEvent struct {
	Query string
	Seq   uint64
}

func (e SearchDispatchedEvent) Type() EventType { return EventSearchDispatched }

// SearchCompletedEvent is emitted when a response is applied to the result list
type SearchCompletedEvent struct {
	Query string
	Seq   uint64
	Count int
}

func (e SearchCompletedEvent) Type() EventType { return EventSearchCompleted }

// SearchFailedEvent is emitted when a request ends in an API or transport error
type SearchFailedEvent struct {
	Query string
	Seq   uint64
	Err   error
	Stale bool // true when a newer request had already been issued
}

func (e SearchFailedEvent) Type() EventType { return EventSearchFailed }

// ResultsClearedEvent is emitted when the debounce fires on blank input
type ResultsClearedEvent struct{}

func (e ResultsClearedEvent) Type() EventType { return EventResultsCleared }

// NavigatedEvent is emitted when a result row is opened
type NavigatedEvent struct {
	Route string
}

func (e NavigatedEvent) Type() EventType { return EventNavigated }
