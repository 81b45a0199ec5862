package events

// Publisher accepts board change notifications.
// Publish must not block; notifications are transient and never retried.
type Publisher interface {
	Publish(event Event)
}

// Compile-time verification that the implementations satisfy Publisher
var (
	_ Publisher = (*Bus)(nil)
	_ Publisher = (*Recorder)(nil)
)
