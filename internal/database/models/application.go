package models

// Application represents a named software artifact that gets deployed
type Application struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:200;uniqueIndex;not null" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty" gorm:"type:text"`

	// Relationships
	Deployments []Deployment `json:"deployments,omitempty" gorm:"foreignKey:ApplicationID"`
}

// TableName returns the table name for Application
func (Application) TableName() string {
	return "applications"
}
