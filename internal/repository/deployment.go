package repository

import (
	"deployment-tracker-backend/internal/database/models"

	"gorm.io/gorm"
)

// DeploymentRow is one deployment joined with the application and region names
type DeploymentRow struct {
	ID               uint    `json:"id"`
	Application      string  `json:"application"`
	Region           string  `json:"region"`
	Date             string  `json:"date"`
	Time             string  `json:"time"`
	DeploymentResult string  `json:"deployment_result"`
	ApplicationTag   *string `json:"application_tag,omitempty"`
}

// DeploymentRepository handles database operations for deployments
type DeploymentRepository struct {
	db *gorm.DB
}

// NewDeploymentRepository creates a new deployment repository
func NewDeploymentRepository(db *gorm.DB) *DeploymentRepository {
	return &DeploymentRepository{db: db}
}

// Create inserts a new deployment. Referential integrity is enforced by the
// store's foreign keys; a dangling application or region id fails the insert
// as gorm.ErrForeignKeyViolated.
func (r *DeploymentRepository) Create(deployment *models.Deployment) error {
	return r.db.Create(deployment).Error
}

func (r *DeploymentRepository) joined() *gorm.DB {
	return r.db.Table("deployments").
		Select(`deployments.id, applications.name AS application, regions.name AS region,
			deployments.date, deployments.time, deployments.deployment_result, deployments.application_tag`).
		Joins("JOIN applications ON deployments.application_id = applications.id").
		Joins("JOIN regions ON deployments.region_id = regions.id").
		Order("deployments.date DESC, deployments.time DESC")
}

// GetAll retrieves all deployments with application and region names,
// most recent first
func (r *DeploymentRepository) GetAll() ([]DeploymentRow, error) {
	var rows []DeploymentRow
	err := r.joined().Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByApplicationID retrieves deployments for one application,
// most recent first
func (r *DeploymentRepository) GetByApplicationID(applicationID uint) ([]DeploymentRow, error) {
	var rows []DeploymentRow
	err := r.joined().Where("deployments.application_id = ?", applicationID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// GetByRegionID retrieves deployments for one region, most recent first
func (r *DeploymentRepository) GetByRegionID(regionID uint) ([]DeploymentRow, error) {
	var rows []DeploymentRow
	err := r.joined().Where("deployments.region_id = ?", regionID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
