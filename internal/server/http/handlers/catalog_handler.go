package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/darzi-app/darzi/internal/server/http/dto"
)

// CatalogHandler serves the static ordering catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// Categories handles GET /api/catalog/categories.
func (h *CatalogHandler) Categories(c *gin.Context) {
	categories := h.facade.Categories()
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, toCategoryResponse(cat))
	}
	c.JSON(http.StatusOK, response)
}

// Designs handles GET /api/catalog/categories/:id/designs.
func (h *CatalogHandler) Designs(c *gin.Context) {
	designs := h.facade.DesignsFor(c.Param("id"))
	response := make([]dto.DesignResponse, 0, len(designs))
	for _, d := range designs {
		response = append(response, toDesignResponse(d))
	}
	c.JSON(http.StatusOK, response)
}

// AddOns handles GET /api/catalog/addons.
func (h *CatalogHandler) AddOns(c *gin.Context) {
	c.JSON(http.StatusOK, toAddOnResponses(h.facade.AddOns()))
}

// TimeSlots handles GET /api/catalog/timeslots.
func (h *CatalogHandler) TimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.TimeSlots())
}

// MeasurementFields handles GET /api/catalog/categories/:id/measurements.
func (h *CatalogHandler) MeasurementFields(c *gin.Context) {
	fields := h.facade.MeasurementFields(c.Param("id"))
	response := make([]dto.MeasurementFieldResponse, 0, len(fields))
	for _, f := range fields {
		response = append(response, dto.MeasurementFieldResponse{ID: f.ID, Label: f.Label})
	}
	c.JSON(http.StatusOK, response)
}
