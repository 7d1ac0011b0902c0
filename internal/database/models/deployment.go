package models

// Deployment records one deployment of an application to a region.
// Date and Time are held as zero-padded strings ("2006-01-02", "15:04:05")
// so that ORDER BY date DESC, time DESC is chronological.
type Deployment struct {
	ID               uint    `json:"id" gorm:"primaryKey"`
	ApplicationID    uint    `json:"application_id" gorm:"not null;index:idx_deployments_app_id" validate:"required"`
	RegionID         uint    `json:"region_id" gorm:"not null;index:idx_deployments_region_id" validate:"required"`
	Date             string  `json:"date" gorm:"size:10;not null" validate:"required"`
	Time             string  `json:"time" gorm:"size:8;not null" validate:"required"`
	DeploymentResult string  `json:"deployment_result" gorm:"size:100;not null" validate:"required"`
	ApplicationTag   *string `json:"application_tag,omitempty" gorm:"size:200"`

	// Relationships
	Application Application `json:"application,omitempty" gorm:"foreignKey:ApplicationID"`
	Region      Region      `json:"region,omitempty" gorm:"foreignKey:RegionID"`
}

// TableName returns the table name for Deployment
func (Deployment) TableName() string {
	return "deployments"
}
