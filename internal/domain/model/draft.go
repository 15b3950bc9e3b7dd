package model

import (
	"math"
	"time"
)

// MeasurementMethod describes how garment measurements are collected.
type MeasurementMethod string

const (
	MeasurementBySample MeasurementMethod = "sample_image"
	MeasurementManual   MeasurementMethod = "manual"
)

// Delivery estimation constants: every order takes BaseLeadDays, each
// selected add-on extends the estimate by AddOnLeadDays.
const (
	BaseLeadDays  = 7
	AddOnLeadDays = 2

	// FastDeliveryRatePerDay is charged for every day the chosen delivery
	// date precedes the estimated one.
	FastDeliveryRatePerDay int64 = 100
)

// OrderDraft is the single-session record of an in-progress order. It is
// mutated only through DraftUseCase transitions. Prices are derived from the
// selections on demand and are never stored as independent fields.
type OrderDraft struct {
	CustomerID        string
	Category          *Category
	Design            *Design
	AddOns            []AddOn
	EstimatedDelivery time.Time
	ChosenDelivery    time.Time
	MeasurementMethod MeasurementMethod
	MeasurementImage  string
	Measurements      map[string]float64
	PickupTime        string
	JobID             string
}

// BasePrice is the selected category's base price, zero before selection.
func (d *OrderDraft) BasePrice() int64 {
	if d.Category == nil {
		return 0
	}
	return d.Category.BasePrice
}

// TotalPrice is always computed from first principles: base price plus design
// increment plus the sum of selected add-ons.
func (d *OrderDraft) TotalPrice() int64 {
	total := d.BasePrice()
	if d.Design != nil {
		total += d.Design.Price
	}
	for _, a := range d.AddOns {
		total += a.Price
	}
	return total
}

// FastDeliveryCharge applies when the chosen delivery date is strictly
// earlier than the estimated one: FastDeliveryRatePerDay per day gained,
// partial days rounded up. Equal dates charge nothing.
func (d *OrderDraft) FastDeliveryCharge() int64 {
	if d.ChosenDelivery.IsZero() || d.EstimatedDelivery.IsZero() {
		return 0
	}
	if !d.ChosenDelivery.Before(d.EstimatedDelivery) {
		return 0
	}
	days := int64(math.Ceil(d.EstimatedDelivery.Sub(d.ChosenDelivery).Hours() / 24))
	return days * FastDeliveryRatePerDay
}

// FinalPrice includes the fast delivery surcharge.
func (d *OrderDraft) FinalPrice() int64 {
	return d.TotalPrice() + d.FastDeliveryCharge()
}

// Clone returns a deep copy safe to hand out as a snapshot.
func (d *OrderDraft) Clone() OrderDraft {
	out := *d
	if d.Category != nil {
		c := *d.Category
		out.Category = &c
	}
	if d.Design != nil {
		ds := *d.Design
		out.Design = &ds
	}
	if d.AddOns != nil {
		out.AddOns = append([]AddOn(nil), d.AddOns...)
	}
	if d.Measurements != nil {
		out.Measurements = make(map[string]float64, len(d.Measurements))
		for k, v := range d.Measurements {
			out.Measurements[k] = v
		}
	}
	return out
}

// HasAddOn reports whether the add-on with the given id is selected.
func (d *OrderDraft) HasAddOn(id string) bool {
	for _, a := range d.AddOns {
		if a.ID == id {
			return true
		}
	}
	return false
}
