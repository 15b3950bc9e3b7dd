package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/darzi-app/darzi/internal/domain/errors"
	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/server/http/dto"
	"github.com/darzi-app/darzi/internal/server/http/middleware"
)

// CurrentUserID extracts the caller's identifier from context.
func CurrentUserID(c *gin.Context) string {
	val, ok := c.Get(middleware.UserIDContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// respondError maps domain errors to HTTP statuses. Validation errors carry
// their detail so the client can re-prompt for exactly what is missing.
func respondError(c *gin.Context, err error) {
	var validation *domainErrors.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          validation.Error(),
			"missing_method": validation.MissingMethod,
			"missing_image":  validation.MissingImage,
			"missing_fields": validation.MissingFields,
		})
		return
	}

	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrInvalidTransition),
		errors.Is(err, domainErrors.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, domainErrors.ErrNoCategory),
		errors.Is(err, domainErrors.ErrNoDesign),
		errors.Is(err, domainErrors.ErrUnknownCategory),
		errors.Is(err, domainErrors.ErrUnknownDesign),
		errors.Is(err, domainErrors.ErrUnknownAddOn),
		errors.Is(err, domainErrors.ErrUnknownTimeSlot),
		errors.Is(err, domainErrors.ErrUnknownMethod),
		errors.Is(err, domainErrors.ErrUnknownStatus),
		errors.Is(err, domainErrors.ErrInvalidAmount),
		errors.Is(err, domainErrors.ErrInvalidMeasurement),
		errors.Is(err, domainErrors.ErrMissingContact):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.Status(http.StatusInternalServerError)
	}
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates.
func parseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

func toCategoryResponse(c model.Category) dto.CategoryResponse {
	return dto.CategoryResponse{ID: c.ID, Name: c.Name, BasePrice: c.BasePrice}
}

func toDesignResponse(d model.Design) dto.DesignResponse {
	return dto.DesignResponse{ID: d.ID, Name: d.Name, Price: d.Price}
}

func toAddOnResponses(addOns []model.AddOn) []dto.AddOnResponse {
	out := make([]dto.AddOnResponse, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, dto.AddOnResponse{ID: a.ID, Name: a.Name, Price: a.Price})
	}
	return out
}

func toDraftResponse(d model.OrderDraft) dto.DraftResponse {
	resp := dto.DraftResponse{
		AddOns:             toAddOnResponses(d.AddOns),
		BasePrice:          d.BasePrice(),
		TotalPrice:         d.TotalPrice(),
		FastDeliveryCharge: d.FastDeliveryCharge(),
		FinalPrice:         d.FinalPrice(),
		MeasurementMethod:  string(d.MeasurementMethod),
		MeasurementImage:   d.MeasurementImage,
		Measurements:       d.Measurements,
		PickupTime:         d.PickupTime,
		JobID:              d.JobID,
	}
	if d.Category != nil {
		cat := toCategoryResponse(*d.Category)
		resp.Category = &cat
	}
	if d.Design != nil {
		design := toDesignResponse(*d.Design)
		resp.Design = &design
	}
	if !d.EstimatedDelivery.IsZero() {
		t := d.EstimatedDelivery
		resp.EstimatedDelivery = &t
	}
	if !d.ChosenDelivery.IsZero() {
		t := d.ChosenDelivery
		resp.ChosenDelivery = &t
	}
	return resp
}

func toJobResponse(j model.Job) dto.JobResponse {
	return dto.JobResponse{
		ID:                j.ID,
		JobID:             j.JobID,
		CustomerID:        j.CustomerID,
		Category:          toCategoryResponse(j.Category),
		Design:            toDesignResponse(j.Design),
		AddOns:            toAddOnResponses(j.AddOns),
		BasePrice:         j.BasePrice,
		TotalPrice:        j.TotalPrice,
		DeliveryDate:      j.DeliveryDate,
		MeasurementMethod: string(j.MeasurementMethod),
		MeasurementImage:  j.MeasurementImage,
		Measurements:      j.Measurements,
		PickupTime:        j.PickupTime,
		Status:            string(j.Status),
		TailorID:          j.TailorID,
		AssignmentAmount:  j.AssignmentAmount,
		CreatedAt:         j.CreatedAt,
		AssignedAt:        j.AssignedAt,
		StartedAt:         j.StartedAt,
		CompletedAt:       j.CompletedAt,
		DeliveredAt:       j.DeliveredAt,
	}
}

func toJobResponses(jobs []model.Job) []dto.JobResponse {
	out := make([]dto.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, toJobResponse(j))
	}
	return out
}

func toTailorResponse(t model.Tailor) dto.TailorResponse {
	return dto.TailorResponse{
		ID:           t.ID,
		Name:         t.Name,
		Phone:        t.Phone,
		Email:        t.Email,
		Address:      t.Address,
		SkillTags:    t.SkillTags,
		Availability: string(t.Availability),
		IsActive:     t.IsActive,
		CreatedAt:    t.CreatedAt,
	}
}
