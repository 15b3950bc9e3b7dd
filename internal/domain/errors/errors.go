package errors

import "errors"

var (
	ErrNotFound           = errors.New("not found")
	ErrNoCategory         = errors.New("no category selected")
	ErrNoDesign           = errors.New("no design selected")
	ErrUnknownCategory    = errors.New("unknown category")
	ErrUnknownDesign      = errors.New("unknown design")
	ErrUnknownAddOn       = errors.New("unknown add-on")
	ErrUnknownTimeSlot    = errors.New("unknown pickup time slot")
	ErrUnknownMethod      = errors.New("unknown measurement method")
	ErrUnknownStatus      = errors.New("unknown job status")
	ErrInvalidTransition  = errors.New("invalid status transition")
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrMissingContact     = errors.New("name and phone are required")
	ErrAlreadySubmitted   = errors.New("order already submitted")
	ErrInvalidMeasurement = errors.New("invalid measurement value")
)
