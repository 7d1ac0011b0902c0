package repository

import (
	"deployment-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// RegionRepository handles database operations for regions
type RegionRepository struct {
	db *gorm.DB
}

// NewRegionRepository creates a new region repository
func NewRegionRepository(db *gorm.DB) *RegionRepository {
	return &RegionRepository{db: db}
}

// GetAll retrieves all regions
func (r *RegionRepository) GetAll() ([]models.Region, error) {
	var regions []models.Region
	err := r.db.Order("id").Find(&regions).Error
	if err != nil {
		return nil, err
	}
	return regions, nil
}

// GetByID retrieves a region by ID
func (r *RegionRepository) GetByID(id uint) (*models.Region, error) {
	var region models.Region
	err := r.db.First(&region, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &region, nil
}
