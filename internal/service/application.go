package service

import (
	"errors"
	"fmt"

	"deployment-tracker-backend/internal/database/models"
	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// ApplicationService handles business logic for applications
type ApplicationService struct {
	repo      repository.ApplicationRepositoryInterface
	validator *validator.Validate
}

// NewApplicationService creates a new application service
func NewApplicationService(repo repository.ApplicationRepositoryInterface, validator *validator.Validate) *ApplicationService {
	return &ApplicationService{
		repo:      repo,
		validator: validator,
	}
}

// CreateApplicationRequest represents the request to register an application.
// Field names follow the public API surface.
type CreateApplicationRequest struct {
	Name        string  `json:"Name" validate:"required,min=1,max=200"`
	Description *string `json:"Description,omitempty"`
}

// ApplicationResponse represents an application row
type ApplicationResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
}

// List retrieves all applications
func (s *ApplicationService) List() ([]ApplicationResponse, error) {
	apps, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve applications: %w", err)
	}

	responses := make([]ApplicationResponse, len(apps))
	for i, app := range apps {
		responses[i] = ApplicationResponse{
			ID:          app.ID,
			Name:        app.Name,
			Description: app.Description,
		}
	}
	return responses, nil
}

// Create registers a new application. Name uniqueness is decided solely by
// the store's unique index; two concurrent creates with the same name cannot
// both succeed, and the loser maps to the conflict error.
func (s *ApplicationService) Create(req *CreateApplicationRequest) (*ApplicationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("Name", "application name is required")
	}

	app := &models.Application{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.repo.Create(app); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrApplicationExists
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	return &ApplicationResponse{
		ID:          app.ID,
		Name:        app.Name,
		Description: app.Description,
	}, nil
}
