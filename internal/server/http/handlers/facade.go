package handlers

import (
	"context"
	"time"

	"github.com/darzi-app/darzi/internal/domain/model"
)

// CatalogFacade exposes the static ordering catalog.
type CatalogFacade interface {
	Categories() []model.Category
	DesignsFor(categoryID string) []model.Design
	AddOns() []model.AddOn
	TimeSlots() []string
	MeasurementFields(categoryID string) []model.MeasurementField
}

// OrderFacade encapsulates the customer checkout flow.
type OrderFacade interface {
	Draft(customerID string) model.OrderDraft
	SelectCategory(customerID, categoryID string) (model.OrderDraft, error)
	SelectDesign(customerID, designID string) (model.OrderDraft, error)
	ToggleAddOn(customerID, addOnID string) (model.OrderDraft, error)
	ChooseDeliveryDate(customerID string, date time.Time) (model.OrderDraft, error)
	SetMeasurementMethod(customerID string, method model.MeasurementMethod) (model.OrderDraft, error)
	SetMeasurementImage(customerID, ref string) model.OrderDraft
	SetMeasurement(customerID, fieldID string, value float64) (model.OrderDraft, error)
	SetPickupTime(customerID, slot string) (model.OrderDraft, error)
	SubmitOrder(ctx context.Context, customerID string) (*model.Job, error)
	ResetOrder(customerID string) model.OrderDraft
	Jobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
}

// AdminFacade provides job assignment and roster management.
type AdminFacade interface {
	PendingJobs(ctx context.Context) ([]model.Job, error)
	Jobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	AssignJob(ctx context.Context, jobID, tailorID string, amount int64) (*model.Job, error)
	CreateTailor(ctx context.Context, tailor model.Tailor) (*model.Tailor, error)
	Tailors(ctx context.Context) ([]model.Tailor, error)
	AvailableTailors(ctx context.Context) ([]model.Tailor, error)
	SetTailorAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error)
}

// WorkshopFacade provides the tailor dashboard operations.
type WorkshopFacade interface {
	TailorJobs(ctx context.Context, tailorID string) ([]model.Job, error)
	UpdateJobStatus(ctx context.Context, jobID string, status model.JobStatus) (*model.Job, error)
}

// StreamFacade delivers live job snapshots.
type StreamFacade interface {
	SubscribeJobs(filter model.JobFilter, fn func([]model.Job)) func()
}

// TailoringFacade aggregates the full set of operations used across handlers.
type TailoringFacade interface {
	CatalogFacade
	OrderFacade
	AdminFacade
	WorkshopFacade
	StreamFacade
}
