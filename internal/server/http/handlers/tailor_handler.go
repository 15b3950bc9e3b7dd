package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darzi-app/darzi/internal/domain/model"
	"github.com/darzi-app/darzi/internal/server/http/dto"
)

// TailorHandler manages the tailor dashboard.
type TailorHandler struct {
	facade WorkshopFacade
}

// NewTailorHandler constructs TailorHandler.
func NewTailorHandler(facade WorkshopFacade) *TailorHandler {
	return &TailorHandler{facade: facade}
}

// Jobs handles GET /api/tailor/jobs — the caller's active workload.
func (h *TailorHandler) Jobs(c *gin.Context) {
	jobs, err := h.facade.TailorJobs(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponses(jobs))
}

// UpdateStatus handles POST /api/tailor/jobs/:id/status.
func (h *TailorHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Status == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	job, err := h.facade.UpdateJobStatus(c.Request.Context(), c.Param("id"), model.JobStatus(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toJobResponse(*job))
}
