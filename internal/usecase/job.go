package usecase

import (
	"context"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/domain/repository"
)

// JobUseCase encapsulates the assignment and fulfillment lifecycle of
// submitted jobs.
type JobUseCase struct {
	jobs repository.JobRepository
}

// NewJobUseCase constructs JobUseCase.
func NewJobUseCase(jobs repository.JobRepository) *JobUseCase {
	return &JobUseCase{jobs: jobs}
}

// Submit copies the draft into a new job record. The draft is expected to
// have passed ValidateForSubmission; category and design presence is still
// enforced here since a job snapshot is meaningless without them.
func (u *JobUseCase) Submit(ctx context.Context, draft *model.OrderDraft) (*model.Job, error) {
	if draft.Category == nil {
		return nil, domainErrors.ErrNoCategory
	}
	if draft.Design == nil {
		return nil, domainErrors.ErrNoDesign
	}
	if draft.JobID != "" {
		return nil, domainErrors.ErrAlreadySubmitted
	}

	deliveryDate := draft.EstimatedDelivery
	if !draft.ChosenDelivery.IsZero() {
		deliveryDate = draft.ChosenDelivery
	}

	var measurements map[string]float64
	if draft.Measurements != nil {
		measurements = make(map[string]float64, len(draft.Measurements))
		for k, v := range draft.Measurements {
			measurements[k] = v
		}
	}

	job := &model.Job{
		CustomerID:        draft.CustomerID,
		Category:          *draft.Category,
		Design:            *draft.Design,
		AddOns:            append([]model.AddOn(nil), draft.AddOns...),
		BasePrice:         draft.BasePrice(),
		TotalPrice:        draft.FinalPrice(),
		DeliveryDate:      deliveryDate,
		MeasurementMethod: draft.MeasurementMethod,
		MeasurementImage:  draft.MeasurementImage,
		Measurements:      measurements,
		PickupTime:        draft.PickupTime,
	}

	return u.jobs.Create(ctx, job)
}

// Get fetches a single job by internal or human-facing id.
func (u *JobUseCase) Get(ctx context.Context, id string) (*model.Job, error) {
	return u.jobs.GetByID(ctx, id)
}

// List returns jobs matching the filter, insertion order preserved.
func (u *JobUseCase) List(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	return u.jobs.List(ctx, filter)
}

// Pending returns jobs awaiting assignment.
func (u *JobUseCase) Pending(ctx context.Context) ([]model.Job, error) {
	return u.jobs.List(ctx, model.JobFilter{Status: model.JobStatusPendingAssignment})
}

// AssignedTo returns the tailor's active workload, delivered jobs excluded.
func (u *JobUseCase) AssignedTo(ctx context.Context, tailorID string) ([]model.Job, error) {
	jobs, err := u.jobs.List(ctx, model.JobFilter{TailorID: tailorID})
	if err != nil {
		return nil, err
	}
	active := jobs[:0]
	for _, j := range jobs {
		if j.Status != model.JobStatusDelivered {
			active = append(active, j)
		}
	}
	return active, nil
}

// Assign hands the job to a tailor for the agreed amount.
func (u *JobUseCase) Assign(ctx context.Context, jobID, tailorID string, amount int64) (*model.Job, error) {
	if tailorID == "" {
		return nil, domainErrors.ErrNotFound
	}
	if amount <= 0 {
		return nil, domainErrors.ErrInvalidAmount
	}
	return u.jobs.Assign(ctx, jobID, tailorID, amount)
}

// UpdateStatus advances the job's fulfillment status.
func (u *JobUseCase) UpdateStatus(ctx context.Context, jobID string, status model.JobStatus) (*model.Job, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrUnknownStatus
	}
	return u.jobs.UpdateStatus(ctx, jobID, status)
}
