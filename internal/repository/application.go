package repository

import (
	"deployment-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// ApplicationRepository handles database operations for applications
type ApplicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Create inserts a new application. A duplicate name surfaces as
// gorm.ErrDuplicatedKey from the unique index; there is no pre-check read.
func (r *ApplicationRepository) Create(app *models.Application) error {
	return r.db.Create(app).Error
}

// GetAll retrieves all applications
func (r *ApplicationRepository) GetAll() ([]models.Application, error) {
	var apps []models.Application
	err := r.db.Order("id").Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// GetByID retrieves an application by ID
func (r *ApplicationRepository) GetByID(id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.First(&app, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}
