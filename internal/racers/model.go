package racers

import "time"

// Racer represents a ski racer profile: physical measurements, equipment
// details, personal records, and racing goals.
type Racer struct {
	ID                  string
	RacerName           string
	Height              float64
	Weight              float64
	SkiTypes            string
	BindingMeasurements string
	PersonalRecords     string
	RacingGoals         string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
