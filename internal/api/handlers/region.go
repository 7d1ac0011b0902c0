package handlers

import (
	"net/http"

	"deployment-tracker-backend/internal/logger"
	"deployment-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// RegionHandler handles HTTP requests for region operations
type RegionHandler struct {
	regionService service.RegionServiceInterface
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(regionService service.RegionServiceInterface) *RegionHandler {
	return &RegionHandler{
		regionService: regionService,
	}
}

// ListRegions handles GET /regions
// @Summary List all regions
// @Tags regions
// @Produce json
// @Success 200 {array} service.RegionResponse "Regions"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Security ApiKeyAuth
// @Router /regions [get]
func (h *RegionHandler) ListRegions(c *gin.Context) {
	regions, err := h.regionService.List()
	if err != nil {
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving regions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve regions"})
		return
	}

	c.JSON(http.StatusOK, regions)
}
