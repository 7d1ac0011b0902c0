package models

// Region represents a deployment environment or geography (e.g. PROD, DEV)
type Region struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null" validate:"required,min=1,max=100"`

	// Relationships
	Deployments []Deployment `json:"deployments,omitempty" gorm:"foreignKey:RegionID"`
}

// TableName returns the table name for Region
func (Region) TableName() string {
	return "regions"
}
