package events

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service implements racing calendar operations on top of an EventsRepo.
type Service struct {
	Repo EventsRepo
}

func NewService(repo EventsRepo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateEvent(ctx context.Context, racerID string, req CreateRequest) (Event, error) {
	eventDate, err := validateEvent(req.EventName, req.EventDate, req.Location)
	if err != nil {
		return Event{}, err
	}
	now := time.Now().UTC()
	event := Event{
		ID:        uuid.NewString(),
		RacerID:   racerID,
		EventName: strings.TrimSpace(req.EventName),
		EventDate: eventDate,
		Location:  strings.TrimSpace(req.Location),
		Notes:     req.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return s.Repo.Create(ctx, event)
}

func (s *Service) GetEvent(ctx context.Context, id string) (Event, error) {
	event, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Event{}, fmt.Errorf("event not found with id %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Event{}, err
	}
	return event, nil
}

func (s *Service) ListEvents(ctx context.Context, racerID string) ([]Event, error) {
	return s.Repo.ListByRacer(ctx, racerID)
}

func (s *Service) UpdateEvent(ctx context.Context, id string, req UpdateRequest) (Event, error) {
	event, err := s.GetEvent(ctx, id)
	if err != nil {
		return Event{}, err
	}
	if req.EventName != nil {
		event.EventName = strings.TrimSpace(*req.EventName)
	}
	if req.EventDate != nil {
		parsed, err := parseEventDate(*req.EventDate)
		if err != nil {
			return Event{}, err
		}
		event.EventDate = parsed
	}
	if req.Location != nil {
		event.Location = strings.TrimSpace(*req.Location)
	}
	if req.Notes != nil {
		event.Notes = req.Notes
	}
	if event.EventName == "" {
		return Event{}, fmt.Errorf("%w: Event name must be a non-empty string", ErrInvalidInput)
	}
	if event.Location == "" {
		return Event{}, fmt.Errorf("%w: Location must be a non-empty string", ErrInvalidInput)
	}
	event.UpdatedAt = time.Now().UTC()
	return s.Repo.Update(ctx, event)
}

func (s *Service) DeleteEvent(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("event not found with id %s: %w", id, ErrNotFound)
	}
	return err
}

func validateEvent(name, date, location string) (time.Time, error) {
	if strings.TrimSpace(name) == "" {
		return time.Time{}, fmt.Errorf("%w: Event name must be a non-empty string", ErrInvalidInput)
	}
	if strings.TrimSpace(location) == "" {
		return time.Time{}, fmt.Errorf("%w: Location must be a non-empty string", ErrInvalidInput)
	}
	return parseEventDate(date)
}

func parseEventDate(date string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: Event date must be in YYYY-MM-DD format. Received: %q", ErrInvalidInput, date)
	}
	return parsed, nil
}
