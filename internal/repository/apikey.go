package repository

import (
	"deployment-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// APIKeyRepository handles database operations for API keys
type APIKeyRepository struct {
	db *gorm.DB
}

// NewAPIKeyRepository creates a new API key repository
func NewAPIKeyRepository(db *gorm.DB) *APIKeyRepository {
	return &APIKeyRepository{db: db}
}

// Create inserts a new API key. A secret collision surfaces as
// gorm.ErrDuplicatedKey from the unique index.
func (r *APIKeyRepository) Create(key *models.APIKey) error {
	return r.db.Create(key).Error
}

// GetAll retrieves all API keys
func (r *APIKeyRepository) GetAll() ([]models.APIKey, error) {
	var keys []models.APIKey
	err := r.db.Order("id").Find(&keys).Error
	if err != nil {
		return nil, err
	}
	return keys, nil
}

// GetByID retrieves an API key by ID
func (r *APIKeyRepository) GetByID(id uint) (*models.APIKey, error) {
	var key models.APIKey
	err := r.db.First(&key, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &key, nil
}

// GetActiveByKey retrieves an active API key by its secret value.
// Inactive keys are treated the same as unknown ones.
func (r *APIKeyRepository) GetActiveByKey(key string) (*models.APIKey, error) {
	var record models.APIKey
	err := r.db.First(&record, "api_key = ? AND active = ?", key, true).Error
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// TouchLastUsed records the current time as the key's last successful use
func (r *APIKeyRepository) TouchLastUsed(id uint) error {
	return r.db.Model(&models.APIKey{}).
		Where("id = ?", id).
		Update("last_used", gorm.Expr("CURRENT_TIMESTAMP")).Error
}

// SetActive updates a key's active flag and reports how many rows matched
func (r *APIKeyRepository) SetActive(id uint, active bool) (int64, error) {
	result := r.db.Model(&models.APIKey{}).Where("id = ?", id).Update("active", active)
	return result.RowsAffected, result.Error
}

// Delete removes a key and reports how many rows matched
func (r *APIKeyRepository) Delete(id uint) (int64, error) {
	result := r.db.Delete(&models.APIKey{}, "id = ?", id)
	return result.RowsAffected, result.Error
}

// Count returns the total number of API keys
func (r *APIKeyRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.APIKey{}).Count(&count).Error
	return count, err
}
