package events

import "time"

// dateLayout is the wire format for event dates.
const dateLayout = "2006-01-02"

// CreateRequest is the body for adding an event to a racer's calendar.
type CreateRequest struct {
	EventName string  `json:"event_name"`
	EventDate string  `json:"event_date"`
	Location  string  `json:"location"`
	Notes     *string `json:"notes"`
}

// UpdateRequest allows partial updates; nil fields are left unchanged.
type UpdateRequest struct {
	EventName *string `json:"event_name"`
	EventDate *string `json:"event_date"`
	Location  *string `json:"location"`
	Notes     *string `json:"notes"`
}

// EventResponse is the outward-facing representation of a calendar event.
type EventResponse struct {
	ID        string    `json:"id"`
	RacerID   string    `json:"racer_id"`
	EventName string    `json:"event_name"`
	EventDate string    `json:"event_date"`
	Location  string    `json:"location"`
	Notes     *string   `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toResponse(event Event) EventResponse {
	return EventResponse{
		ID:        event.ID,
		RacerID:   event.RacerID,
		EventName: event.EventName,
		EventDate: event.EventDate.Format(dateLayout),
		Location:  event.Location,
		Notes:     event.Notes,
		CreatedAt: event.CreatedAt,
		UpdatedAt: event.UpdatedAt,
	}
}
