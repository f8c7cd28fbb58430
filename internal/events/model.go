package events

import "time"

// Event is a racing calendar entry belonging to a racer.
type Event struct {
	ID        string
	RacerID   string
	EventName string
	EventDate time.Time
	Location  string
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
