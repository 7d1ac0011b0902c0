package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/logger"
	"deployment-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// APIKeyHandler handles the administrative key lifecycle endpoints
type APIKeyHandler struct {
	apiKeyService service.APIKeyServiceInterface
}

// NewAPIKeyHandler creates a new API key handler
func NewAPIKeyHandler(apiKeyService service.APIKeyServiceInterface) *APIKeyHandler {
	return &APIKeyHandler{
		apiKeyService: apiKeyService,
	}
}

// ToggleAPIKeyRequest represents the request to activate or deactivate a key
type ToggleAPIKeyRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// ListAPIKeys handles GET /admin/keys
// @Summary List API keys
// @Description List all API keys with their secrets masked
// @Tags admin
// @Produce json
// @Success 200 {array} service.APIKeyResponse "Masked keys"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Router /admin/keys [get]
func (h *APIKeyHandler) ListAPIKeys(c *gin.Context) {
	keys, err := h.apiKeyService.List()
	if err != nil {
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving API keys")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve API keys"})
		return
	}

	c.JSON(http.StatusOK, keys)
}

// GetFullAPIKey handles GET /admin/keys/:id/full
// @Summary Reveal one API key
// @Description Return the raw secret of one key for an explicit reveal action
// @Tags admin
// @Produce json
// @Param id path int true "API key ID"
// @Success 200 {object} map[string]string "Raw secret"
// @Failure 404 {object} ErrorResponse "API key not found"
// @Failure 500 {object} ErrorResponse "Read failure"
// @Router /admin/keys/{id}/full [get]
func (h *APIKeyHandler) GetFullAPIKey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	key, err := h.apiKeyService.GetFullKey(uint(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrAPIKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
			return
		}
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error retrieving API key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve API key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"apiKey": key})
}

// CreateAPIKey handles POST /admin/keys
// @Summary Create an API key
// @Description Mint a new API key with a random secret; the secret is only returned here
// @Tags admin
// @Accept json
// @Produce json
// @Param key body service.CreateAPIKeyRequest true "Key data"
// @Success 201 {object} map[string]interface{} "Created key with secret"
// @Failure 400 {object} ErrorResponse "Key name is required"
// @Failure 500 {object} ErrorResponse "Write failure"
// @Router /admin/keys [post]
func (h *APIKeyHandler) CreateAPIKey(c *gin.Context) {
	var req service.CreateAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Key name is required"})
		return
	}

	key, err := h.apiKeyService.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Key name is required"})
			return
		}
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error creating API key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create API key"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "API key created successfully",
		"key":     key,
	})
}

// ToggleAPIKey handles PUT /admin/keys/:id/toggle
// @Summary Activate or deactivate an API key
// @Description Soft revocation: deactivated keys fail validation but keep their row
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "API key ID"
// @Param toggle body ToggleAPIKeyRequest true "Desired active state"
// @Success 200 {object} map[string]string "Status message"
// @Failure 400 {object} ErrorResponse "Active status is required"
// @Failure 404 {object} ErrorResponse "API key not found"
// @Failure 500 {object} ErrorResponse "Write failure"
// @Router /admin/keys/{id}/toggle [put]
func (h *APIKeyHandler) ToggleAPIKey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	var req ToggleAPIKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Active == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Active status is required"})
		return
	}

	if err := h.apiKeyService.SetActive(uint(id), *req.Active); err != nil {
		if errors.Is(err, apperrors.ErrAPIKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
			return
		}
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error updating API key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update API key"})
		return
	}

	message := "API key deactivated"
	if *req.Active {
		message = "API key activated"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DeleteAPIKey handles DELETE /admin/keys/:id
// @Summary Delete an API key
// @Description Hard-delete a key; rotation goes through delete and create
// @Tags admin
// @Produce json
// @Param id path int true "API key ID"
// @Success 200 {object} map[string]string "Status message"
// @Failure 404 {object} ErrorResponse "API key not found"
// @Failure 500 {object} ErrorResponse "Write failure"
// @Router /admin/keys/{id} [delete]
func (h *APIKeyHandler) DeleteAPIKey(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
		return
	}

	if err := h.apiKeyService.Delete(uint(id)); err != nil {
		if errors.Is(err, apperrors.ErrAPIKeyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "API key not found"})
			return
		}
		logger.ForRequest(c.GetString("request_id")).WithError(err).Error("error deleting API key")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete API key"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "API key deleted successfully"})
}
