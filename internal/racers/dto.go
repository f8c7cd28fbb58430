package racers

import "time"

// CreateRequest is the body for creating a racer profile.
type CreateRequest struct {
	RacerName           string  `json:"racer_name"`
	Height              float64 `json:"height"`
	Weight              float64 `json:"weight"`
	SkiTypes            string  `json:"ski_types"`
	BindingMeasurements string  `json:"binding_measurements"`
	PersonalRecords     string  `json:"personal_records"`
	RacingGoals         string  `json:"racing_goals"`
}

// UpdateRequest allows partial updates; nil fields are left unchanged.
type UpdateRequest struct {
	RacerName           *string  `json:"racer_name"`
	Height              *float64 `json:"height"`
	Weight              *float64 `json:"weight"`
	SkiTypes            *string  `json:"ski_types"`
	BindingMeasurements *string  `json:"binding_measurements"`
	PersonalRecords     *string  `json:"personal_records"`
	RacingGoals         *string  `json:"racing_goals"`
}

// RacerResponse is the outward-facing representation of a racer profile.
type RacerResponse struct {
	ID                  string    `json:"id"`
	RacerName           string    `json:"racer_name"`
	Height              float64   `json:"height"`
	Weight              float64   `json:"weight"`
	SkiTypes            string    `json:"ski_types"`
	BindingMeasurements string    `json:"binding_measurements"`
	PersonalRecords     string    `json:"personal_records"`
	RacingGoals         string    `json:"racing_goals"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

func toResponse(racer Racer) RacerResponse {
	return RacerResponse{
		ID:                  racer.ID,
		RacerName:           racer.RacerName,
		Height:              racer.Height,
		Weight:              racer.Weight,
		SkiTypes:            racer.SkiTypes,
		BindingMeasurements: racer.BindingMeasurements,
		PersonalRecords:     racer.PersonalRecords,
		RacingGoals:         racer.RacingGoals,
		CreatedAt:           racer.CreatedAt,
		UpdatedAt:           racer.UpdatedAt,
	}
}
