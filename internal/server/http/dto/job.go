package dto

import "time"

// AssignJobRequest hands a job to a tailor for the agreed amount.
type AssignJobRequest struct {
	TailorID string `json:"tailor_id"`
	Amount   int64  `json:"amount"`
}

// UpdateStatusRequest advances a job's fulfillment status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// JobResponse is the API shape of a submitted job.
type JobResponse struct {
	ID                string             `json:"id"`
	JobID             string             `json:"job_id"`
	CustomerID        string             `json:"customer_id"`
	Category          CategoryResponse   `json:"category"`
	Design            DesignResponse     `json:"design"`
	AddOns            []AddOnResponse    `json:"add_ons"`
	BasePrice         int64              `json:"base_price"`
	TotalPrice        int64              `json:"total_price"`
	DeliveryDate      time.Time          `json:"delivery_date"`
	MeasurementMethod string             `json:"measurement_method,omitempty"`
	MeasurementImage  string             `json:"measurement_image,omitempty"`
	Measurements      map[string]float64 `json:"measurements,omitempty"`
	PickupTime        string             `json:"pickup_time,omitempty"`
	Status            string             `json:"status"`
	TailorID          string             `json:"tailor_id,omitempty"`
	AssignmentAmount  int64              `json:"assignment_amount,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	AssignedAt        *time.Time         `json:"assigned_at,omitempty"`
	StartedAt         *time.Time         `json:"started_at,omitempty"`
	CompletedAt       *time.Time         `json:"completed_at,omitempty"`
	DeliveredAt       *time.Time         `json:"delivered_at,omitempty"`
}

// SubmitResponse acknowledges a submitted order.
type SubmitResponse struct {
	JobID string `json:"job_id"`
}
