package repository

import (
	"context"

	"github.com/darzi-app/darzi/internal/domain/model"
)

// TailorRepository describes persistence operations with tailors.
type TailorRepository interface {
	Create(ctx context.Context, tailor *model.Tailor) (*model.Tailor, error)
	GetByID(ctx context.Context, id string) (*model.Tailor, error)
	List(ctx context.Context, filter model.TailorFilter) ([]model.Tailor, error)
	SetAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error)
}
