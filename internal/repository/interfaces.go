package repository

import (
	"deployment-tracker-backend/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ApplicationRepositoryInterface defines the interface for application repository operations
type ApplicationRepositoryInterface interface {
	Create(app *models.Application) error
	GetAll() ([]models.Application, error)
	GetByID(id uint) (*models.Application, error)
}

// RegionRepositoryInterface defines the interface for region repository operations
type RegionRepositoryInterface interface {
	GetAll() ([]models.Region, error)
	GetByID(id uint) (*models.Region, error)
}

// DeploymentRepositoryInterface defines the interface for deployment repository operations
type DeploymentRepositoryInterface interface {
	Create(deployment *models.Deployment) error
	GetAll() ([]DeploymentRow, error)
	GetByApplicationID(applicationID uint) ([]DeploymentRow, error)
	GetByRegionID(regionID uint) ([]DeploymentRow, error)
}

// APIKeyRepositoryInterface defines the interface for API key repository operations
type APIKeyRepositoryInterface interface {
	Create(key *models.APIKey) error
	GetAll() ([]models.APIKey, error)
	GetByID(id uint) (*models.APIKey, error)
	GetActiveByKey(key string) (*models.APIKey, error)
	TouchLastUsed(id uint) error
	SetActive(id uint, active bool) (int64, error)
	Delete(id uint) (int64, error)
	Count() (int64, error)
}
