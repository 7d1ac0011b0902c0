package database

import (
	"fmt"

	"deployment-tracker-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Known rows expected to exist before traffic arrives. Deployments reference
// these by foreign key; regions have no create endpoint at all.
var seedApplications = []string{
	"app_one",
	"app_two",
	"api_app1",
	"crazy_app_1",
}

var seedRegions = []string{
	"DEV",
	"TEST",
	"PROD",
	"QA",
	"TRN",
}

// Seed inserts the known applications and regions, skipping names that are
// already present. Safe to run on every startup.
func Seed(db *gorm.DB) error {
	apps := make([]models.Application, 0, len(seedApplications))
	for _, name := range seedApplications {
		apps = append(apps, models.Application{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&apps).Error; err != nil {
		return fmt.Errorf("seed applications: %w", err)
	}

	regions := make([]models.Region, 0, len(seedRegions))
	for _, name := range seedRegions {
		regions = append(regions, models.Region{Name: name})
	}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "name"}},
		DoNothing: true,
	}).Create(&regions).Error; err != nil {
		return fmt.Errorf("seed regions: %w", err)
	}

	return nil
}
