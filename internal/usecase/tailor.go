package usecase

import (
	"context"
	"strings"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/domain/repository"
)

// TailorUseCase manages the tailor roster.
type TailorUseCase struct {
	tailors repository.TailorRepository
}

// NewTailorUseCase constructs TailorUseCase.
func NewTailorUseCase(tailors repository.TailorRepository) *TailorUseCase {
	return &TailorUseCase{tailors: tailors}
}

// Create registers a new tailor. Name and phone are mandatory.
func (u *TailorUseCase) Create(ctx context.Context, tailor model.Tailor) (*model.Tailor, error) {
	tailor.Name = strings.TrimSpace(tailor.Name)
	tailor.Phone = strings.TrimSpace(tailor.Phone)
	if tailor.Name == "" || tailor.Phone == "" {
		return nil, domainErrors.ErrMissingContact
	}
	return u.tailors.Create(ctx, &tailor)
}

// Get fetches a tailor by id.
func (u *TailorUseCase) Get(ctx context.Context, id string) (*model.Tailor, error) {
	return u.tailors.GetByID(ctx, id)
}

// List returns all registered tailors.
func (u *TailorUseCase) List(ctx context.Context) ([]model.Tailor, error) {
	return u.tailors.List(ctx, model.TailorFilter{})
}

// Available returns active tailors currently able to take jobs.
func (u *TailorUseCase) Available(ctx context.Context) ([]model.Tailor, error) {
	return u.tailors.List(ctx, model.TailorFilter{OnlyAvailable: true})
}

// SetAvailability updates a tailor's availability status.
func (u *TailorUseCase) SetAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}
	return u.tailors.SetAvailability(ctx, id, status)
}
