package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestEnsureRosterSeedsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.professionals.EnsureRoster(ctx); err != nil {
		t.Fatalf("EnsureRoster: %v", err)
	}

	roster, err := env.professionals.GetProfessionals(ctx, "")
	if err != nil {
		t.Fatalf("GetProfessionals: %v", err)
	}
	if roster.Total != 4 {
		t.Fatalf("Total = %d, want 4", roster.Total)
	}
	if roster.Professionals[0].ID != "pro_1" {
		t.Errorf("first ID = %s, want pro_1", roster.Professionals[0].ID)
	}

	// A second call must not duplicate the roster.
	if err := env.professionals.EnsureRoster(ctx); err != nil {
		t.Fatalf("EnsureRoster: %v", err)
	}
	again, err := env.professionals.GetProfessionals(ctx, "")
	if err != nil {
		t.Fatalf("GetProfessionals: %v", err)
	}
	if again.Total != 4 {
		t.Fatalf("Total after reseed = %d, want 4", again.Total)
	}
}

func TestGetProfessionalsFilterBySpecialty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.professionals.EnsureRoster(ctx); err != nil {
		t.Fatalf("EnsureRoster: %v", err)
	}

	psychiatrists, err := env.professionals.GetProfessionals(ctx, "Psiquiatra")
	if err != nil {
		t.Fatalf("GetProfessionals: %v", err)
	}
	if psychiatrists.Total != 2 {
		t.Fatalf("Total = %d, want 2", psychiatrists.Total)
	}
	for _, p := range psychiatrists.Professionals {
		if p.Specialty != "Psiquiatra" {
			t.Fatalf("filter leaked %s (%s)", p.ID, p.Specialty)
		}
	}

	none, err := env.professionals.GetProfessionals(ctx, "Cardiologista")
	if err != nil {
		t.Fatalf("GetProfessionals: %v", err)
	}
	if none.Total != 0 {
		t.Fatalf("Total = %d, want 0", none.Total)
	}
}

func TestGetProfessional(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if err := env.professionals.EnsureRoster(ctx); err != nil {
		t.Fatalf("EnsureRoster: %v", err)
	}

	professional, err := env.professionals.GetProfessional(ctx, "pro_1")
	if err != nil {
		t.Fatalf("GetProfessional: %v", err)
	}
	if professional.Name != "Dra. Ana Lima" {
		t.Errorf("Name = %s, want Dra. Ana Lima", professional.Name)
	}

	if _, err := env.professionals.GetProfessional(ctx, "pro_404"); !errors.Is(err, ErrProfessionalNotFound) {
		t.Fatalf("expected ErrProfessionalNotFound, got %v", err)
	}
}
