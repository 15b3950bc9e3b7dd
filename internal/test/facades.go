package test

import (
	"context"
	"time"

	"github.com/darzi-app/darzi/internal/domain/model"
)

// CatalogFacadeStub serves canned catalog data.
type CatalogFacadeStub struct {
	CategoriesFn        func() []model.Category
	DesignsForFn        func(categoryID string) []model.Design
	AddOnsFn            func() []model.AddOn
	TimeSlotsFn         func() []string
	MeasurementFieldsFn func(categoryID string) []model.MeasurementField
}

func (s CatalogFacadeStub) Categories() []model.Category {
	if s.CategoriesFn == nil {
		return nil
	}
	return s.CategoriesFn()
}

func (s CatalogFacadeStub) DesignsFor(categoryID string) []model.Design {
	if s.DesignsForFn == nil {
		return nil
	}
	return s.DesignsForFn(categoryID)
}

func (s CatalogFacadeStub) AddOns() []model.AddOn {
	if s.AddOnsFn == nil {
		return nil
	}
	return s.AddOnsFn()
}

func (s CatalogFacadeStub) TimeSlots() []string {
	if s.TimeSlotsFn == nil {
		return nil
	}
	return s.TimeSlotsFn()
}

func (s CatalogFacadeStub) MeasurementFields(categoryID string) []model.MeasurementField {
	if s.MeasurementFieldsFn == nil {
		return nil
	}
	return s.MeasurementFieldsFn(categoryID)
}

// OrderFacadeStub allows handler tests to script the checkout flow.
type OrderFacadeStub struct {
	DraftFn                func(customerID string) model.OrderDraft
	SelectCategoryFn       func(customerID, categoryID string) (model.OrderDraft, error)
	SelectDesignFn         func(customerID, designID string) (model.OrderDraft, error)
	ToggleAddOnFn          func(customerID, addOnID string) (model.OrderDraft, error)
	ChooseDeliveryDateFn   func(customerID string, date time.Time) (model.OrderDraft, error)
	SetMeasurementMethodFn func(customerID string, method model.MeasurementMethod) (model.OrderDraft, error)
	SetMeasurementImageFn  func(customerID, ref string) model.OrderDraft
	SetMeasurementFn       func(customerID, fieldID string, value float64) (model.OrderDraft, error)
	SetPickupTimeFn        func(customerID, slot string) (model.OrderDraft, error)
	SubmitOrderFn          func(ctx context.Context, customerID string) (*model.Job, error)
	ResetOrderFn           func(customerID string) model.OrderDraft
	JobsFn                 func(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
}

func (s OrderFacadeStub) Draft(customerID string) model.OrderDraft {
	if s.DraftFn == nil {
		return model.OrderDraft{CustomerID: customerID}
	}
	return s.DraftFn(customerID)
}

func (s OrderFacadeStub) SelectCategory(customerID, categoryID string) (model.OrderDraft, error) {
	return s.SelectCategoryFn(customerID, categoryID)
}

func (s OrderFacadeStub) SelectDesign(customerID, designID string) (model.OrderDraft, error) {
	return s.SelectDesignFn(customerID, designID)
}

func (s OrderFacadeStub) ToggleAddOn(customerID, addOnID string) (model.OrderDraft, error) {
	return s.ToggleAddOnFn(customerID, addOnID)
}

func (s OrderFacadeStub) ChooseDeliveryDate(customerID string, date time.Time) (model.OrderDraft, error) {
	return s.ChooseDeliveryDateFn(customerID, date)
}

func (s OrderFacadeStub) SetMeasurementMethod(customerID string, method model.MeasurementMethod) (model.OrderDraft, error) {
	return s.SetMeasurementMethodFn(customerID, method)
}

func (s OrderFacadeStub) SetMeasurementImage(customerID, ref string) model.OrderDraft {
	return s.SetMeasurementImageFn(customerID, ref)
}

func (s OrderFacadeStub) SetMeasurement(customerID, fieldID string, value float64) (model.OrderDraft, error) {
	return s.SetMeasurementFn(customerID, fieldID, value)
}

func (s OrderFacadeStub) SetPickupTime(customerID, slot string) (model.OrderDraft, error) {
	return s.SetPickupTimeFn(customerID, slot)
}

func (s OrderFacadeStub) SubmitOrder(ctx context.Context, customerID string) (*model.Job, error) {
	return s.SubmitOrderFn(ctx, customerID)
}

func (s OrderFacadeStub) ResetOrder(customerID string) model.OrderDraft {
	return s.ResetOrderFn(customerID)
}

func (s OrderFacadeStub) Jobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	return s.JobsFn(ctx, filter)
}

// AdminFacadeStub allows handler tests to script assignment and roster
// operations.
type AdminFacadeStub struct {
	PendingJobsFn           func(ctx context.Context) ([]model.Job, error)
	JobsFn                  func(ctx context.Context, filter model.JobFilter) ([]model.Job, error)
	AssignJobFn             func(ctx context.Context, jobID, tailorID string, amount int64) (*model.Job, error)
	CreateTailorFn          func(ctx context.Context, tailor model.Tailor) (*model.Tailor, error)
	TailorsFn               func(ctx context.Context) ([]model.Tailor, error)
	AvailableTailorsFn      func(ctx context.Context) ([]model.Tailor, error)
	SetTailorAvailabilityFn func(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error)
}

func (s AdminFacadeStub) PendingJobs(ctx context.Context) ([]model.Job, error) {
	return s.PendingJobsFn(ctx)
}

func (s AdminFacadeStub) Jobs(ctx context.Context, filter model.JobFilter) ([]model.Job, error) {
	return s.JobsFn(ctx, filter)
}

func (s AdminFacadeStub) AssignJob(ctx context.Context, jobID, tailorID string, amount int64) (*model.Job, error) {
	return s.AssignJobFn(ctx, jobID, tailorID, amount)
}

func (s AdminFacadeStub) CreateTailor(ctx context.Context, tailor model.Tailor) (*model.Tailor, error) {
	return s.CreateTailorFn(ctx, tailor)
}

func (s AdminFacadeStub) Tailors(ctx context.Context) ([]model.Tailor, error) {
	return s.TailorsFn(ctx)
}

func (s AdminFacadeStub) AvailableTailors(ctx context.Context) ([]model.Tailor, error) {
	return s.AvailableTailorsFn(ctx)
}

func (s AdminFacadeStub) SetTailorAvailability(ctx context.Context, id string, status model.TailorAvailability) (*model.Tailor, error) {
	return s.SetTailorAvailabilityFn(ctx, id, status)
}

// WorkshopFacadeStub allows handler tests to script the tailor dashboard.
type WorkshopFacadeStub struct {
	TailorJobsFn      func(ctx context.Context, tailorID string) ([]model.Job, error)
	UpdateJobStatusFn func(ctx context.Context, jobID string, status model.JobStatus) (*model.Job, error)
}

func (s WorkshopFacadeStub) TailorJobs(ctx context.Context, tailorID string) ([]model.Job, error) {
	return s.TailorJobsFn(ctx, tailorID)
}

func (s WorkshopFacadeStub) UpdateJobStatus(ctx context.Context, jobID string, status model.JobStatus) (*model.Job, error) {
	return s.UpdateJobStatusFn(ctx, jobID, status)
}
