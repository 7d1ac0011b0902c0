package handlers

import (
	"errors"
	"net/http"

	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/logger"
	"deployment-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ApplicationHandler handles HTTP requests for application operations
type ApplicationHandler struct {
	applicationService service.ApplicationServiceInterface
}

// NewApplicationHandler creates a new application handler
func NewApplicationHandler(applicationService service.ApplicationServiceInterface) *ApplicationHandler {
	return &ApplicationHandler{
		applicationService: applicationService,
	}
}

// ListApplications handles GET /applications
// @Summary List all applications
// @Tags applications
// @Produce json
// @Success 200 {array} service.ApplicationResponse "Applications"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Security ApiKeyAuth
// @Router /applications [get]
func (h *ApplicationHandler) ListApplications(c *gin.Context) {
	apps, err := h.applicationService.List()
	if err != nil {
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving applications")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve applications"})
		return
	}

	c.JSON(http.StatusOK, apps)
}

// CreateApplication handles POST /applications
// @Summary Register a new application
// @Description Register an application by name; names are unique
// @Tags applications
// @Accept json
// @Produce json
// @Param application body service.CreateApplicationRequest true "Application data"
// @Success 201 {object} service.ApplicationResponse "Created application"
// @Failure 400 {object} ErrorResponse "Application name is required"
// @Failure 409 {object} ErrorResponse "Application with this name already exists"
// @Failure 500 {object} ErrorResponse "Write failure"
// @Security ApiKeyAuth
// @Router /applications [post]
func (h *ApplicationHandler) CreateApplication(c *gin.Context) {
	var req service.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Application name is required"})
		return
	}

	app, err := h.applicationService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Application name is required"})
			return
		}
		if errors.Is(err, apperrors.ErrApplicationExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "Application with this name already exists"})
			return
		}
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error creating application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		return
	}

	c.JSON(http.StatusCreated, app)
}
