package usecase

import (
	"sync"
	"time"

	"github.com/darzi-app/darzi/internal/catalog"
	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
)

// DraftUseCase owns in-progress order drafts, one per customer session.
// Every transition is applied atomically under a single mutex and returns a
// snapshot of the resulting draft. Prices are derived fields of the draft
// itself; the delivery estimate is recomputed whenever the add-on set
// changes.
type DraftUseCase struct {
	catalog *catalog.Catalog
	now     func() time.Time

	mu     sync.Mutex
	drafts map[string]*model.OrderDraft
}

// NewDraftUseCase constructs DraftUseCase.
func NewDraftUseCase(cat *catalog.Catalog) *DraftUseCase {
	return &DraftUseCase{
		catalog: cat,
		now:     time.Now,
		drafts:  make(map[string]*model.OrderDraft),
	}
}

// Get returns the customer's current draft, creating an empty one on first
// use.
func (u *DraftUseCase) Get(customerID string) model.OrderDraft {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.draft(customerID).Clone()
}

// SelectCategory starts (or restarts) an order: the design and add-on
// selections are cleared and pricing falls back to the category base price.
// May be called from any state.
func (u *DraftUseCase) SelectCategory(customerID, categoryID string) (model.OrderDraft, error) {
	cat, err := u.catalog.CategoryByID(categoryID)
	if err != nil {
		return model.OrderDraft{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	d.Category = cat
	d.Design = nil
	d.AddOns = nil
	u.refreshEstimate(d)
	return d.Clone(), nil
}

// SelectDesign picks a design variant within the selected category.
func (u *DraftUseCase) SelectDesign(customerID, designID string) (model.OrderDraft, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	if d.Category == nil {
		return model.OrderDraft{}, domainErrors.ErrNoCategory
	}

	design, err := u.catalog.DesignByID(d.Category.ID, designID)
	if err != nil {
		return model.OrderDraft{}, err
	}

	d.Design = design
	return d.Clone(), nil
}

// ToggleAddOn inserts the add-on if absent and removes it if present.
// Requires both a category and a design to be selected.
func (u *DraftUseCase) ToggleAddOn(customerID, addOnID string) (model.OrderDraft, error) {
	addOn, err := u.catalog.AddOnByID(addOnID)
	if err != nil {
		return model.OrderDraft{}, err
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	if d.Category == nil {
		return model.OrderDraft{}, domainErrors.ErrNoCategory
	}
	if d.Design == nil {
		return model.OrderDraft{}, domainErrors.ErrNoDesign
	}

	if d.HasAddOn(addOn.ID) {
		kept := d.AddOns[:0]
		for _, a := range d.AddOns {
			if a.ID != addOn.ID {
				kept = append(kept, a)
			}
		}
		d.AddOns = kept
	} else {
		d.AddOns = append(d.AddOns, *addOn)
	}

	u.refreshEstimate(d)
	return d.Clone(), nil
}

// ChooseDeliveryDate overrides the estimated delivery date. The fast
// delivery surcharge is a derived field of the draft and follows the new
// date automatically.
func (u *DraftUseCase) ChooseDeliveryDate(customerID string, date time.Time) (model.OrderDraft, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	if d.Category == nil {
		return model.OrderDraft{}, domainErrors.ErrNoCategory
	}

	d.ChosenDelivery = date
	return d.Clone(), nil
}

// SetMeasurementMethod records how measurements will be collected.
func (u *DraftUseCase) SetMeasurementMethod(customerID string, method model.MeasurementMethod) (model.OrderDraft, error) {
	if method != model.MeasurementBySample && method != model.MeasurementManual {
		return model.OrderDraft{}, domainErrors.ErrUnknownMethod
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	d.MeasurementMethod = method
	return d.Clone(), nil
}

// SetMeasurementImage stores a reference to the uploaded sample image.
func (u *DraftUseCase) SetMeasurementImage(customerID, ref string) model.OrderDraft {
	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	d.MeasurementImage = ref
	return d.Clone()
}

// SetMeasurement records one manual measurement value in inches.
func (u *DraftUseCase) SetMeasurement(customerID, fieldID string, value float64) (model.OrderDraft, error) {
	if value <= 0 {
		return model.OrderDraft{}, domainErrors.ErrInvalidMeasurement
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	if d.Measurements == nil {
		d.Measurements = make(map[string]float64)
	}
	d.Measurements[fieldID] = value
	return d.Clone(), nil
}

// SetPickupTime picks a sample pickup slot from the fixed set.
func (u *DraftUseCase) SetPickupTime(customerID, slot string) (model.OrderDraft, error) {
	if !u.catalog.ValidTimeSlot(slot) {
		return model.OrderDraft{}, domainErrors.ErrUnknownTimeSlot
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	d.PickupTime = slot
	return d.Clone(), nil
}

// ValidateForSubmission checks that the draft carries everything submission
// needs. Returns a *domainErrors.ValidationError describing the gap.
func (u *DraftUseCase) ValidateForSubmission(customerID string) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	return validateDraft(u.catalog, u.draft(customerID))
}

// CompleteSubmission stamps the job id assigned by the store onto the draft.
func (u *DraftUseCase) CompleteSubmission(customerID, jobID string) model.OrderDraft {
	u.mu.Lock()
	defer u.mu.Unlock()

	d := u.draft(customerID)
	d.JobID = jobID
	return d.Clone()
}

// Reset discards the draft and starts over with an empty one.
func (u *DraftUseCase) Reset(customerID string) model.OrderDraft {
	u.mu.Lock()
	defer u.mu.Unlock()

	d := &model.OrderDraft{CustomerID: customerID}
	u.drafts[customerID] = d
	return d.Clone()
}

// draft returns the live draft for the customer. Callers hold u.mu.
func (u *DraftUseCase) draft(customerID string) *model.OrderDraft {
	d, ok := u.drafts[customerID]
	if !ok {
		d = &model.OrderDraft{CustomerID: customerID}
		u.drafts[customerID] = d
	}
	return d
}

// refreshEstimate recomputes the estimated delivery date from the add-on
// count. Callers hold u.mu.
func (u *DraftUseCase) refreshEstimate(d *model.OrderDraft) {
	days := model.BaseLeadDays + model.AddOnLeadDays*len(d.AddOns)
	d.EstimatedDelivery = u.now().AddDate(0, 0, days)
}
