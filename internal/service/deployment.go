package service

import (
	"errors"
	"fmt"

	"deployment-tracker-backend/internal/database/models"
	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/logger"
	"deployment-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// DeploymentService handles business logic for deployment events
type DeploymentService struct {
	repo      repository.DeploymentRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewDeploymentService creates a new deployment service
func NewDeploymentService(repo repository.DeploymentRepositoryInterface, validator *validator.Validate) *DeploymentService {
	return &DeploymentService{
		repo:      repo,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateDeploymentRequest represents the request to record a deployment event.
// Date must be zero-padded YYYY-MM-DD so descending order stays chronological.
type CreateDeploymentRequest struct {
	ApplicationID uint    `json:"applicationId" validate:"required"`
	RegionID      uint    `json:"regionId" validate:"required"`
	Date          string  `json:"date" validate:"required,datetime=2006-01-02"`
	Time          string  `json:"time" validate:"required"`
	Result        string  `json:"result" validate:"required"`
	Tag           *string `json:"tag,omitempty"`
}

// CreateDeploymentResponse represents the response after recording a deployment
type CreateDeploymentResponse struct {
	ID      uint   `json:"id"`
	Message string `json:"message"`
}

// Create records a deployment event. Application and region existence is not
// pre-checked; the store's foreign keys reject dangling references and that
// failure surfaces as a generic store error, matching the source behavior.
func (s *DeploymentService) Create(req *CreateDeploymentRequest) (*CreateDeploymentResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", "missing required fields")
	}

	deployment := &models.Deployment{
		ApplicationID:    req.ApplicationID,
		RegionID:         req.RegionID,
		Date:             req.Date,
		Time:             req.Time,
		DeploymentResult: req.Result,
		ApplicationTag:   req.Tag,
	}

	if err := s.repo.Create(deployment); err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			s.log.WithError(err).WithFields(map[string]interface{}{
				"application_id": req.ApplicationID,
				"region_id":      req.RegionID,
			}).Warn("deployment references missing application or region")
		}
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}

	return &CreateDeploymentResponse{
		ID:      deployment.ID,
		Message: "Deployment created successfully",
	}, nil
}

// List retrieves all deployments, most recent first
func (s *DeploymentService) List() ([]repository.DeploymentRow, error) {
	rows, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve deployments: %w", err)
	}
	return rows, nil
}

// ListByApplication retrieves deployments for one application, most recent first
func (s *DeploymentService) ListByApplication(applicationID uint) ([]repository.DeploymentRow, error) {
	rows, err := s.repo.GetByApplicationID(applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve deployments by application: %w", err)
	}
	return rows, nil
}

// ListByRegion retrieves deployments for one region, most recent first
func (s *DeploymentService) ListByRegion(regionID uint) ([]repository.DeploymentRow, error) {
	rows, err := s.repo.GetByRegionID(regionID)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve deployments by region: %w", err)
	}
	return rows, nil
}
