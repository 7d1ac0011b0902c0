package handlers

import (
	"net/http"
	"strconv"

	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/logger"
	"deployment-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// DeploymentHandler handles HTTP requests for deployment operations
type DeploymentHandler struct {
	deploymentService service.DeploymentServiceInterface
}

// NewDeploymentHandler creates a new deployment handler
func NewDeploymentHandler(deploymentService service.DeploymentServiceInterface) *DeploymentHandler {
	return &DeploymentHandler{
		deploymentService: deploymentService,
	}
}

// CreateDeployment handles POST /deployments
// @Summary Record a deployment event
// @Description Record that an application was deployed to a region at a date/time with a result
// @Tags deployments
// @Accept json
// @Produce json
// @Param deployment body service.CreateDeploymentRequest true "Deployment data"
// @Success 201 {object} service.CreateDeploymentResponse "Deployment recorded"
// @Failure 400 {object} ErrorResponse "Missing required fields"
// @Failure 500 {object} ErrorResponse "Write failure"
// @Security ApiKeyAuth
// @Router /deployments [post]
func (h *DeploymentHandler) CreateDeployment(c *gin.Context) {
	var req service.CreateDeploymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
		return
	}

	response, err := h.deploymentService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields"})
			return
		}
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error creating deployment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deployment"})
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ListDeployments handles GET /deployments
// @Summary List all deployments
// @Description Get all deployments with application and region names, most recent first
// @Tags deployments
// @Produce json
// @Success 200 {array} repository.DeploymentRow "Deployments"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Security ApiKeyAuth
// @Router /deployments [get]
func (h *DeploymentHandler) ListDeployments(c *gin.Context) {
	rows, err := h.deploymentService.List()
	if err != nil {
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving deployments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deployments"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListDeploymentsByApplication handles GET /deployments/application/:id
// @Summary List deployments for an application
// @Description Get deployments filtered by application id, most recent first
// @Tags deployments
// @Produce json
// @Param id path int true "Application ID"
// @Success 200 {array} repository.DeploymentRow "Deployments"
// @Failure 400 {object} ErrorResponse "Invalid application ID"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Security ApiKeyAuth
// @Router /deployments/application/{id} [get]
func (h *DeploymentHandler) ListDeploymentsByApplication(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application ID"})
		return
	}

	rows, err := h.deploymentService.ListByApplication(uint(id))
	if err != nil {
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving deployments by application")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deployments"})
		return
	}

	c.JSON(http.StatusOK, rows)
}

// ListDeploymentsByRegion handles GET /deployments/region/:id
// @Summary List deployments for a region
// @Description Get deployments filtered by region id, most recent first
// @Tags deployments
// @Produce json
// @Param id path int true "Region ID"
// @Success 200 {array} repository.DeploymentRow "Deployments"
// @Failure 400 {object} ErrorResponse "Invalid region ID"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Security ApiKeyAuth
// @Router /deployments/region/{id} [get]
func (h *DeploymentHandler) ListDeploymentsByRegion(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid region ID"})
		return
	}

	rows, err := h.deploymentService.ListByRegion(uint(id))
	if err != nil {
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving deployments by region")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deployments"})
		return
	}

	c.JSON(http.StatusOK, rows)
}
