package models

// Event types published to the event topic.
const (
	EventUserRegistered = "user.registered"
	EventExerciseAdded  = "exercise.added"
)

// Event describes a state change, including the affected user and a timestamp.
type Event struct {
	EventID   string `json:"event_id"`  // EventID is a unique identifier for the event.
	Type      string `json:"type"`      // Type is one of the Event* constants.
	Timestamp int64  `json:"timestamp"` // Timestamp is the Unix time (in seconds) the event occurred.
	Username  string `json:"username"`  // Username of the affected user.
	Payload   any    `json:"payload"`   // Payload is the created record.
}
