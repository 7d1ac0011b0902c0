package service

import (
	"deployment-tracker-backend/internal/repository"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// DeploymentServiceInterface defines the interface for the deployment service
type DeploymentServiceInterface interface {
	Create(req *CreateDeploymentRequest) (*CreateDeploymentResponse, error)
	List() ([]repository.DeploymentRow, error)
	ListByApplication(applicationID uint) ([]repository.DeploymentRow, error)
	ListByRegion(regionID uint) ([]repository.DeploymentRow, error)
}

// ApplicationServiceInterface defines the interface for the application service
type ApplicationServiceInterface interface {
	List() ([]ApplicationResponse, error)
	Create(req *CreateApplicationRequest) (*ApplicationResponse, error)
}

// RegionServiceInterface defines the interface for the region service
type RegionServiceInterface interface {
	List() ([]RegionResponse, error)
}

// APIKeyServiceInterface defines the interface for the API key service
type APIKeyServiceInterface interface {
	Validate(key string) bool
	List() ([]APIKeyResponse, error)
	GetFullKey(id uint) (string, error)
	Create(req *CreateAPIKeyRequest) (*CreatedAPIKey, error)
	SetActive(id uint, active bool) error
	Delete(id uint) error
	EnsureDefaultKey() error
}
