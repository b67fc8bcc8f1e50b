package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "USER_REGISTERED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common concrete implementation; the constructors
// below are the supported ways to build one.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewUserRegistered is emitted after a successful signup.
func NewUserRegistered(userId uuid.UUID, email string) Event {
	return BaseEvent{
		Type: "USER_REGISTERED",
		Data: map[string]interface{}{
			"user_id": userId.String(),
			"email":   email,
		},
		OccurredAt: time.Now().UTC(),
	}
}

// NewHistoryAdded is emitted when a user records a watched movie.
func NewHistoryAdded(userId uuid.UUID, movieId int64) Event {
	return BaseEvent{
		Type: "HISTORY_ADDED",
		Data: map[string]interface{}{
			"user_id":  userId.String(),
			"movie_id": movieId,
		},
		OccurredAt: time.Now().UTC(),
	}
}
