package repository

import (
	"context"

	"github.com/darzi-app/darzi/internal/domain/model"
)

// JobRepository describes persistence operations with submitted jobs.
// Lookups accept either the internal id or the human-facing job id.
type JobRepository interface {
	Create(ctx context.Context, job *model.Job) (*model.Job, error)
	GetByID(ctx context.Context, id string) (*model.Job, error)
	List(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	Assign(ctx context.Context, id, tailorID string, amount int64) (*model.Job, error)
	UpdateStatus(ctx context.Context, id string, status model.JobStatus) (*model.Job, error)
}
