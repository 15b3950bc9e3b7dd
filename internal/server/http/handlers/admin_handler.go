package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/server/http/dto"
)

// AdminHandler manages job assignment and the tailor roster.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Jobs handles GET /api/admin/jobs. Without a status query it returns jobs
// pending assignment, the admin dashboard's default view.
func (h *AdminHandler) Jobs(c *gin.Context) {
	filter := model.JobFilter{
		Status:     model.JobStatus(c.Query("status")),
		CustomerID: c.Query("customer_id"),
		TailorID:   c.Query("tailor_id"),
	}
	if filter.Status == "" && filter.CustomerID == "" && filter.TailorID == "" {
		filter.Status = model.JobStatusPendingAssignment
	}

	jobs, err := h.facade.Jobs(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponses(jobs))
}

// Assign handles POST /api/admin/jobs/:id/assign.
func (h *AdminHandler) Assign(c *gin.Context) {
	var req dto.AssignJobRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TailorID == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	job, err := h.facade.AssignJob(c.Request.Context(), c.Param("id"), req.TailorID, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(*job))
}

// CreateTailor handles POST /api/admin/tailors.
func (h *AdminHandler) CreateTailor(c *gin.Context) {
	var req dto.CreateTailorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	tailor, err := h.facade.CreateTailor(c.Request.Context(), model.Tailor{
		Name:      req.Name,
		Phone:     req.Phone,
		Email:     req.Email,
		Address:   req.Address,
		SkillTags: req.SkillTags,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, toTailorResponse(*tailor))
}

// Tailors handles GET /api/admin/tailors. The available query keeps only
// active tailors able to take new jobs.
func (h *AdminHandler) Tailors(c *gin.Context) {
	var (
		tailors []model.Tailor
		err     error
	)
	if c.Query("available") == "true" {
		tailors, err = h.facade.AvailableTailors(c.Request.Context())
	} else {
		tailors, err = h.facade.Tailors(c.Request.Context())
	}
	if err != nil {
		respondError(c, err)
		return
	}

	response := make([]dto.TailorResponse, 0, len(tailors))
	for _, t := range tailors {
		response = append(response, toTailorResponse(t))
	}
	c.JSON(http.StatusOK, response)
}

// SetAvailability handles POST /api/admin/tailors/:id/availability.
func (h *AdminHandler) SetAvailability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	tailor, err := h.facade.SetTailorAvailability(c.Request.Context(), c.Param("id"), model.TailorAvailability(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toTailorResponse(*tailor))
}
