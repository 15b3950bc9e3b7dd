package app

import (
	"context"
	"time"

	"github.com/darzi-app/darzi/internal/catalog"
	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/metrics"
	"github.com/darzi-app/darzi/internal/subscription"
	"github.com/darzi-app/darzi/internal/usecase"
)

// TailoringFacade ties the order flow, the job lifecycle and the tailor
// roster together for the HTTP layer.
type TailoringFacade struct {
	catalog *catalog.Catalog
	drafts  *usecase.DraftUseCase
	jobs    *usecase.JobUseCase
	tailors *usecase.TailorUseCase
	subs    *subscription.Manager
	metrics *metrics.Metrics
}

// NewTailoringFacade constructs TailoringFacade.
func NewTailoringFacade(cat *catalog.Catalog, drafts *usecase.DraftUseCase, jobs *usecase.JobUseCase, tailors *usecase.TailorUseCase, subs *subscription.Manager, m *metrics.Metrics) *TailoringFacade {
	return &TailoringFacade{catalog: cat, drafts: drafts, jobs: jobs, tailors: tailors, subs: subs, metrics: m}
}

// Catalog accessors.

func (f *TailoringFacade) Categories() []model.Category { return f.catalog.Categories() }

func (f *TailoringFacade) DesignsFor(categoryID string) []model.Design {
	return f.catalog.DesignsFor(categoryID)
}

func (f *TailoringFacade) AddOns() []model.AddOn { return f.catalog.AddOns() }

func (f *TailoringFacade) TimeSlots() []string { return f.catalog.TimeSlots() }

func (f *TailoringFacade) MeasurementFields(categoryID string) []model.MeasurementField {
	return f.catalog.MeasurementFields(categoryID)
}

// Order draft transitions.

func (f *TailoringFacade) Draft(customerID string) model.OrderDraft {
	return f.drafts.Get(customerID)
}

func (f *TailoringFacade) SelectCategory(customerID, categoryID string) (model.OrderDraft, error) {
	return f.drafts.SelectCategory(customerID, categoryID)
}

func (f *TailoringFacade) SelectDesign(customerID, designID string) (model.OrderDraft, error) {
	return f.drafts.SelectDesign(customerID, designID)
}

func (f *TailoringFacade) ToggleAddOn(customerID, addOnID string) (model.OrderDraft, error) {
	return f.drafts.ToggleAddOn(customerID, addOnID)
}

func (f *TailoringFacade) ChooseDeliveryDate(customerID string, date time.Time) (model.OrderDraft, error) {
	return f.drafts.ChooseDeliveryDate(customerID, date)
}

func (f *TailoringFacade) SetMeasurementMethod(customerID string, method model.MeasurementMethod) (model.OrderDraft, error) {
	return f.drafts.SetMeasurementMethod(customerID, method)
}

func (f *TailoringFacade) SetMeasurementImage(customerID, ref string) model.OrderDraft {
	return f.drafts.SetMeasurementImage(customerID, ref)
}

func (f *TailoringFacade) SetMeasurement(customerID, fieldID string, value float64) (model.OrderDraft, error) {
	return f.drafts.SetMeasurement(customerID, fieldID, value)
}

func (f *TailoringFacade) SetPickupTime(customerID, slot string) (model.OrderDraft, error) {
	return f.drafts.SetPickupTime(customerID, slot)
}

func (f *TailoringFacade) ResetOrder(customerID string) model.OrderDraft {
	return f.drafts.Reset(customerID)
}

// SubmitOrder validates the draft, persists it as a job and stamps the
// assigned job id back onto the draft.
func (f *TailoringFacade) SubmitOrder(ctx context.Context, customerID string) (*model.Job, error) {
	if err := f.drafts.ValidateForSubmission(customerID); err != nil {
		return nil, err
	}

	draft := f.drafts.Get(customerID)
	job, err := f.jobs.Submit(ctx, &draft)
	if err != nil {
		return nil, err
	}

	f.drafts.CompleteSubmission(customerID, job.JobID)
	f.metrics.JobsCreated.Inc()
	return job, nil
}

// Job lifecycle.

func (f *TailoringFacade) Job(ctx context.Context, id string) (*model.Job, error) {
	return f.jobs.Get(ctx, id)
}

func (f *TailoringFacade) Jobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	return f.jobs.List(ctx, filter)
}

func (f *TailoringFacade) PendingJobs(ctx context.Context) ([]model.Job, error) {
	return f.jobs.Pending(ctx)
}

func (f *TailoringFacade) TailorJobs(ctx context.Context, tailorID string) ([]model.Job, error) {
	return f.jobs.AssignedTo(ctx, tailorID)
}

func (f *TailoringFacade) AssignJob(ctx context.Context, jobID, tailorID string, amount int64) (*model.Job, error) {
	if _, err := f.tailors.Get(ctx, tailorID); err != nil {
		return nil, err
	}
	job, err := f.jobs.Assign(ctx, jobID, tailorID, amount)
	if err != nil {
		return nil, err
	}
	f.metrics.JobsAssigned.Inc()
	return job, nil
}

func (f *TailoringFacade) UpdateJobStatus(ctx context.Context, jobID string, status model.JobStatus) (*model.Job, error) {
	job, err := f.jobs.UpdateStatus(ctx, jobID, status)
	if err != nil {
		return nil, err
	}
	f.metrics.StatusTransitions.WithLabelValues(string(status)).Inc()
	return job, nil
}

// SubscribeJobs delivers filtered job snapshots until the returned cancel
// function is called.
func (f *TailoringFacade) SubscribeJobs(filter model.JobFilter, fn func([]model.Job)) func() {
	return f.subs.Subscribe(filter, fn)
}

// Tailor roster.

func (f *TailoringFacade) CreateTailor(ctx context.Context, tailor model.Tailor) (*model.Tailor, error) {
	return f.tailors.Create(ctx, tailor)
}

func (f *TailoringFacade) Tailors(ctx context.Context) ([]model.Tailor, error) {
	return f.tailors.List(ctx)
}

func (f *TailoringFacade) AvailableTailors(ctx context.Context) ([]model.Tailor, error) {
	return f.tailors.Available(ctx)
}

func (f *TailoringFacade) SetTailorAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error) {
	return f.tailors.SetAvailability(ctx, id, status)
}
