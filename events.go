package oncebox

// Observer receives registry lifecycle events. Implementations must be safe
// for concurrent use when the registry is shared between goroutines.
type Observer interface {
	On(eventData EventData)
}

// Event represents a registry event type.
type Event int

const (
	// EventDeferred is emitted when a box is added to a registry.
	EventDeferred Event = iota
	// EventDrained is emitted when a Drain sweep completes.
	EventDrained
)

// EventData carries the details of a registry event.
type EventData struct {
	Event Event
	// Count is the number of boxes pending after a defer, or the number of
	// boxes run by a drain.
	Count int
}
