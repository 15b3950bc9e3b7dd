package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/server/http/dto"
)

// OrderHandler manages the customer checkout flow.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Get handles GET /api/order.
func (h *OrderHandler) Get(c *gin.Context) {
	draft := h.facade.Draft(CurrentUserID(c))
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// SelectCategory handles POST /api/order/category.
func (h *OrderHandler) SelectCategory(c *gin.Context) {
	var req dto.SelectCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CategoryID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.SelectCategory(CurrentUserID(c), req.CategoryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// SelectDesign handles POST /api/order/design.
func (h *OrderHandler) SelectDesign(c *gin.Context) {
	var req dto.SelectDesignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.DesignID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.SelectDesign(CurrentUserID(c), req.DesignID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// ToggleAddOn handles POST /api/order/addons/toggle.
func (h *OrderHandler) ToggleAddOn(c *gin.Context) {
	var req dto.ToggleAddOnRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AddOnID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.ToggleAddOn(CurrentUserID(c), req.AddOnID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// ChooseDeliveryDate handles POST /api/order/delivery-date.
func (h *OrderHandler) ChooseDeliveryDate(c *gin.Context) {
	var req dto.DeliveryDateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Date == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	date, ok := parseDate(req.Date)
	if !ok {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.ChooseDeliveryDate(CurrentUserID(c), date)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// SetMeasurementMethod handles POST /api/order/measurements/method.
func (h *OrderHandler) SetMeasurementMethod(c *gin.Context) {
	var req dto.MeasurementMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Method == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.SetMeasurementMethod(CurrentUserID(c), model.MeasurementMethod(req.Method))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// SetMeasurementImage handles POST /api/order/measurements/image.
func (h *OrderHandler) SetMeasurementImage(c *gin.Context) {
	var req dto.MeasurementImageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ImageRef == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	draft := h.facade.SetMeasurementImage(CurrentUserID(c), req.ImageRef)
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// SetMeasurements handles POST /api/order/measurements.
func (h *OrderHandler) SetMeasurements(c *gin.Context) {
	var req dto.MeasurementsRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Values) == 0 {
		c.Status(http.StatusBadRequest)
		return
	}

	customerID := CurrentUserID(c)
	var draft model.OrderDraft
	for fieldID, value := range req.Values {
		var err error
		if draft, err = h.facade.SetMeasurement(customerID, fieldID, value); err != nil {
			respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// SetPickupTime handles POST /api/order/pickup-time.
func (h *OrderHandler) SetPickupTime(c *gin.Context) {
	var req dto.PickupTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Slot == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	draft, err := h.facade.SetPickupTime(CurrentUserID(c), req.Slot)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// Submit handles POST /api/order/submit.
func (h *OrderHandler) Submit(c *gin.Context) {
	job, err := h.facade.SubmitOrder(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.SubmitResponse{JobID: job.JobID})
}

// Reset handles POST /api/order/reset.
func (h *OrderHandler) Reset(c *gin.Context) {
	draft := h.facade.ResetOrder(CurrentUserID(c))
	c.JSON(http.StatusOK, toDraftResponse(draft))
}

// MyJobs handles GET /api/jobs — the caller's submitted jobs.
func (h *OrderHandler) MyJobs(c *gin.Context) {
	jobs, err := h.facade.Jobs(c.Request.Context(), model.JobFilter{CustomerID: CurrentUserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponses(jobs))
}
