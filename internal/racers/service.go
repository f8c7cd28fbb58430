package racers

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Service implements racer profile operations on top of a RacersRepo.
type Service struct {
	Repo RacersRepo

	// DeleteHooks run after a racer is removed. They mirror the
	// database's ON DELETE CASCADE for repositories without one.
	DeleteHooks []func(ctx context.Context, racerID string)
}

func NewService(repo RacersRepo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) CreateRacer(ctx context.Context, req CreateRequest) (Racer, error) {
	if err := validateRacer(req.RacerName, req.Height, req.Weight, req.SkiTypes, req.BindingMeasurements, req.PersonalRecords, req.RacingGoals); err != nil {
		return Racer{}, err
	}
	now := time.Now().UTC()
	racer := Racer{
		ID:                  uuid.NewString(),
		RacerName:           strings.TrimSpace(req.RacerName),
		Height:              req.Height,
		Weight:              req.Weight,
		SkiTypes:            strings.TrimSpace(req.SkiTypes),
		BindingMeasurements: strings.TrimSpace(req.BindingMeasurements),
		PersonalRecords:     strings.TrimSpace(req.PersonalRecords),
		RacingGoals:         strings.TrimSpace(req.RacingGoals),
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	return s.Repo.Create(ctx, racer)
}

func (s *Service) GetRacer(ctx context.Context, id string) (Racer, error) {
	racer, err := s.Repo.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return Racer{}, fmt.Errorf("racer not found with id %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return Racer{}, err
	}
	return racer, nil
}

func (s *Service) ListRacers(ctx context.Context) ([]Racer, error) {
	return s.Repo.List(ctx)
}

func (s *Service) UpdateRacer(ctx context.Context, id string, req UpdateRequest) (Racer, error) {
	racer, err := s.GetRacer(ctx, id)
	if err != nil {
		return Racer{}, err
	}
	if req.RacerName != nil {
		racer.RacerName = strings.TrimSpace(*req.RacerName)
	}
	if req.Height != nil {
		racer.Height = *req.Height
	}
	if req.Weight != nil {
		racer.Weight = *req.Weight
	}
	if req.SkiTypes != nil {
		racer.SkiTypes = strings.TrimSpace(*req.SkiTypes)
	}
	if req.BindingMeasurements != nil {
		racer.BindingMeasurements = strings.TrimSpace(*req.BindingMeasurements)
	}
	if req.PersonalRecords != nil {
		racer.PersonalRecords = strings.TrimSpace(*req.PersonalRecords)
	}
	if req.RacingGoals != nil {
		racer.RacingGoals = strings.TrimSpace(*req.RacingGoals)
	}
	if err := validateRacer(racer.RacerName, racer.Height, racer.Weight, racer.SkiTypes, racer.BindingMeasurements, racer.PersonalRecords, racer.RacingGoals); err != nil {
		return Racer{}, err
	}
	racer.UpdatedAt = time.Now().UTC()
	return s.Repo.Update(ctx, racer)
}

func (s *Service) DeleteRacer(ctx context.Context, id string) error {
	err := s.Repo.Delete(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("racer not found with id %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return err
	}
	for _, hook := range s.DeleteHooks {
		hook(ctx, id)
	}
	return nil
}

func validateRacer(name string, height, weight float64, skiTypes, bindings, records, goals string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: Racer name must be a non-empty string", ErrInvalidInput)
	}
	if height <= 0 {
		return fmt.Errorf("%w: Height must be greater than 0. Received: %v", ErrInvalidInput, height)
	}
	if weight <= 0 {
		return fmt.Errorf("%w: Weight must be greater than 0. Received: %v", ErrInvalidInput, weight)
	}
	if strings.TrimSpace(skiTypes) == "" {
		return fmt.Errorf("%w: Ski types must be a non-empty string", ErrInvalidInput)
	}
	if strings.TrimSpace(bindings) == "" {
		return fmt.Errorf("%w: Binding measurements must be a non-empty string", ErrInvalidInput)
	}
	if strings.TrimSpace(records) == "" {
		return fmt.Errorf("%w: Personal records must be a non-empty string", ErrInvalidInput)
	}
	if strings.TrimSpace(goals) == "" {
		return fmt.Errorf("%w: Racing goals must be a non-empty string", ErrInvalidInput)
	}
	return nil
}
