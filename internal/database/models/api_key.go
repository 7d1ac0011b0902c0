package models

import "time"

// APIKey holds a credential authorizing protected API access.
// The secret is never regenerated in place; rotation goes through delete/create.
type APIKey struct {
	ID       uint       `json:"id" gorm:"primaryKey"`
	KeyName  string     `json:"key_name" gorm:"size:200;not null" validate:"required,min=1,max=200"`
	Key      string     `json:"api_key" gorm:"column:api_key;size:128;uniqueIndex:idx_api_keys;not null"`
	Created  time.Time  `json:"created" gorm:"autoCreateTime"`
	LastUsed *time.Time `json:"last_used"`
	Active   bool       `json:"active" gorm:"not null;default:true"`
}

// TableName returns the table name for APIKey
func (APIKey) TableName() string {
	return "api_keys"
}
