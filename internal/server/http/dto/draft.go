package dto

import "time"

// SelectCategoryRequest starts or restarts an order with a category.
type SelectCategoryRequest struct {
	CategoryID string `json:"category_id"`
}

// SelectDesignRequest picks a design within the selected category.
type SelectDesignRequest struct {
	DesignID string `json:"design_id"`
}

// ToggleAddOnRequest toggles one add-on on the draft.
type ToggleAddOnRequest struct {
	AddOnID string `json:"add_on_id"`
}

// DeliveryDateRequest overrides the estimated delivery date. Date accepts
// RFC 3339 or plain YYYY-MM-DD.
type DeliveryDateRequest struct {
	Date string `json:"date"`
}

// MeasurementMethodRequest chooses how measurements are collected.
type MeasurementMethodRequest struct {
	Method string `json:"method"`
}

// MeasurementImageRequest stores a sample image reference.
type MeasurementImageRequest struct {
	ImageRef string `json:"image_ref"`
}

// MeasurementsRequest records manual measurement values by field id.
type MeasurementsRequest struct {
	Values map[string]float64 `json:"values"`
}

// PickupTimeRequest picks a sample pickup slot.
type PickupTimeRequest struct {
	Slot string `json:"slot"`
}

// DraftResponse is the full state of the in-progress order.
type DraftResponse struct {
	Category           *CategoryResponse  `json:"category,omitempty"`
	Design             *DesignResponse    `json:"design,omitempty"`
	AddOns             []AddOnResponse    `json:"add_ons"`
	BasePrice          int64              `json:"base_price"`
	TotalPrice         int64              `json:"total_price"`
	FastDeliveryCharge int64              `json:"fast_delivery_charge"`
	FinalPrice         int64              `json:"final_price"`
	EstimatedDelivery  *time.Time         `json:"estimated_delivery,omitempty"`
	ChosenDelivery     *time.Time         `json:"chosen_delivery,omitempty"`
	MeasurementMethod  string             `json:"measurement_method,omitempty"`
	MeasurementImage   string             `json:"measurement_image,omitempty"`
	Measurements       map[string]float64 `json:"measurements,omitempty"`
	PickupTime         string             `json:"pickup_time,omitempty"`
	JobID              string             `json:"job_id,omitempty"`
}
