package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/test"
)

func TestTailorCreate(t *testing.T) {
	repo := &test.TailorRepositoryStub{}
	u := NewTailorUseCase(repo)

	tailor, err := u.Create(context.Background(), model.Tailor{
		Name:  "  Meera Devi ",
		Phone: " 9876543210 ",
		Email: "meera@example.com",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tailor.ID == "" {
		t.Error("created tailor has no id")
	}
	if tailor.Name != "Meera Devi" || tailor.Phone != "9876543210" {
		t.Errorf("contact fields not trimmed: %+v", tailor)
	}
	if !tailor.IsActive || tailor.Availability != model.TailorAvailable {
		t.Errorf("new tailor not active and available: %+v", tailor)
	}
}

func TestTailorCreateRequiresContact(t *testing.T) {
	u := NewTailorUseCase(&test.TailorRepositoryStub{})

	tests := []struct {
		name   string
		tailor model.Tailor
	}{
		{"empty name", model.Tailor{Phone: "9876543210"}},
		{"empty phone", model.Tailor{Name: "Meera Devi"}},
		{"whitespace only", model.Tailor{Name: "   ", Phone: "\t"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := u.Create(context.Background(), tt.tailor); !errors.Is(err, domainErrors.ErrMissingContact) {
				t.Fatalf("err = %v, want ErrMissingContact", err)
			}
		})
	}
}

func TestTailorAvailableFiltersRoster(t *testing.T) {
	repo := &test.TailorRepositoryStub{}
	u := NewTailorUseCase(repo)

	busy, err := u.Create(context.Background(), model.Tailor{Name: "Ravi", Phone: "111"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := u.Create(context.Background(), model.Tailor{Name: "Meera", Phone: "222"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := u.SetAvailability(context.Background(), busy.ID, model.TailorBusy); err != nil {
		t.Fatalf("SetAvailability: %v", err)
	}

	all, err := u.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("roster size = %d, want 2", len(all))
	}

	available, err := u.Available(context.Background())
	if err != nil {
		t.Fatalf("Available: %v", err)
	}
	if len(available) != 1 || available[0].Name != "Meera" {
		t.Fatalf("available = %+v, want only Meera", available)
	}
}

func TestTailorSetAvailabilityRejectsUnknown(t *testing.T) {
	u := NewTailorUseCase(&test.TailorRepositoryStub{})

	if _, err := u.SetAvailability(context.Background(), "tailor-1", "on-leave"); !errors.Is(err, domainErrors.ErrUnknownStatus) {
		t.Fatalf("err = %v, want ErrUnknownStatus", err)
	}
}

func TestTailorGetUnknown(t *testing.T) {
	u := NewTailorUseCase(&test.TailorRepositoryStub{})

	if _, err := u.Get(context.Background(), "tailor-404"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
