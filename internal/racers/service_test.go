package racers

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func validCreate() CreateRequest {
	return CreateRequest{
		RacerName:           "Mika Lindgren",
		Height:              178,
		Weight:              74.5,
		SkiTypes:            "GS 183cm, SL 165cm",
		BindingMeasurements: "DIN 11",
		PersonalRecords:     "GS 1:04.2",
		RacingGoals:         "Qualify for nationals",
	}
}

func TestCreateRacer(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	racer, err := svc.CreateRacer(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("CreateRacer: %v", err)
	}
	if racer.ID == "" {
		t.Fatalf("expected generated id")
	}
	if racer.CreatedAt.IsZero() || racer.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}

	got, err := svc.GetRacer(context.Background(), racer.ID)
	if err != nil {
		t.Fatalf("GetRacer: %v", err)
	}
	if got.RacerName != "Mika Lindgren" {
		t.Fatalf("unexpected name %q", got.RacerName)
	}
}

func TestCreateRacerValidation(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	cases := []struct {
		name    string
		mutate  func(*CreateRequest)
		wantMsg string
	}{
		{"empty name", func(r *CreateRequest) { r.RacerName = "  " }, "Racer name must be a non-empty string"},
		{"zero height", func(r *CreateRequest) { r.Height = 0 }, "Height must be greater than 0. Received: 0"},
		{"negative weight", func(r *CreateRequest) { r.Weight = -3 }, "Weight must be greater than 0. Received: -3"},
		{"empty ski types", func(r *CreateRequest) { r.SkiTypes = "" }, "Ski types must be a non-empty string"},
		{"empty bindings", func(r *CreateRequest) { r.BindingMeasurements = "" }, "Binding measurements must be a non-empty string"},
		{"empty records", func(r *CreateRequest) { r.PersonalRecords = "" }, "Personal records must be a non-empty string"},
		{"empty goals", func(r *CreateRequest) { r.RacingGoals = "" }, "Racing goals must be a non-empty string"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validCreate()
			tc.mutate(&req)
			_, err := svc.CreateRacer(context.Background(), req)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
			if !strings.Contains(err.Error(), tc.wantMsg) {
				t.Fatalf("expected message %q, got %q", tc.wantMsg, err.Error())
			}
		})
	}
}

func TestUpdateRacerPartial(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	racer, err := svc.CreateRacer(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("CreateRacer: %v", err)
	}

	newHeight := 180.0
	updated, err := svc.UpdateRacer(context.Background(), racer.ID, UpdateRequest{Height: &newHeight})
	if err != nil {
		t.Fatalf("UpdateRacer: %v", err)
	}
	if updated.Height != 180 {
		t.Fatalf("expected height 180, got %v", updated.Height)
	}
	if updated.RacerName != racer.RacerName {
		t.Fatalf("unset fields must be unchanged")
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) && !updated.UpdatedAt.Equal(updated.CreatedAt) {
		t.Fatalf("updated_at must not go backwards")
	}
}

func TestUpdateRacerRejectsInvalidField(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	racer, err := svc.CreateRacer(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("CreateRacer: %v", err)
	}

	badWeight := -1.0
	_, err = svc.UpdateRacer(context.Background(), racer.ID, UpdateRequest{Weight: &badWeight})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	got, _ := svc.GetRacer(context.Background(), racer.ID)
	if got.Weight != racer.Weight {
		t.Fatalf("failed update must not persist")
	}
}

func TestUpdateRacerNotFound(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	name := "x"
	_, err := svc.UpdateRacer(context.Background(), "missing", UpdateRequest{RacerName: &name})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRacerRunsHooks(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	racer, err := svc.CreateRacer(context.Background(), validCreate())
	if err != nil {
		t.Fatalf("CreateRacer: %v", err)
	}

	var hookedID string
	svc.DeleteHooks = append(svc.DeleteHooks, func(ctx context.Context, racerID string) {
		hookedID = racerID
	})

	if err := svc.DeleteRacer(context.Background(), racer.ID); err != nil {
		t.Fatalf("DeleteRacer: %v", err)
	}
	if hookedID != racer.ID {
		t.Fatalf("expected delete hook to run for %s, got %q", racer.ID, hookedID)
	}

	if _, err := svc.GetRacer(context.Background(), racer.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestDeleteRacerNotFoundSkipsHooks(t *testing.T) {
	svc := NewService(NewMemoryRepo())

	hooked := false
	svc.DeleteHooks = append(svc.DeleteHooks, func(ctx context.Context, racerID string) {
		hooked = true
	})

	if err := svc.DeleteRacer(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if hooked {
		t.Fatalf("hooks must not run for a failed delete")
	}
}
