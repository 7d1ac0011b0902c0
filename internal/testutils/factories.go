package testutils

import (
	"encoding/hex"
	"math/rand"
	"time"

	"deployment-tracker-backend/internal/database/models"
)

// ApplicationFactory provides methods to create test Application data
type ApplicationFactory struct{}

// NewApplicationFactory creates a new ApplicationFactory
func NewApplicationFactory() *ApplicationFactory {
	return &ApplicationFactory{}
}

// Create creates a test Application with default values
func (f *ApplicationFactory) Create() *models.Application {
	desc := "A test application"
	return &models.Application{
		Name:        "app-" + randomSuffix(),
		Description: &desc,
	}
}

// WithName sets a custom name for the application
func (f *ApplicationFactory) WithName(name string) *models.Application {
	app := f.Create()
	app.Name = name
	return app
}

// RegionFactory provides methods to create test Region data
type RegionFactory struct{}

// NewRegionFactory creates a new RegionFactory
func NewRegionFactory() *RegionFactory {
	return &RegionFactory{}
}

// Create creates a test Region with default values
func (f *RegionFactory) Create() *models.Region {
	return &models.Region{
		Name: "region-" + randomSuffix(),
	}
}

// WithName sets a custom name for the region
func (f *RegionFactory) WithName(name string) *models.Region {
	region := f.Create()
	region.Name = name
	return region
}

// DeploymentFactory provides methods to create test Deployment data
type DeploymentFactory struct{}

// NewDeploymentFactory creates a new DeploymentFactory
func NewDeploymentFactory() *DeploymentFactory {
	return &DeploymentFactory{}
}

// Create creates a test Deployment for the given application and region
func (f *DeploymentFactory) Create(applicationID, regionID uint) *models.Deployment {
	return &models.Deployment{
		ApplicationID:    applicationID,
		RegionID:         regionID,
		Date:             "2024-06-15",
		Time:             "12:30:00",
		DeploymentResult: "success",
	}
}

// At sets the date and time of the deployment
func (f *DeploymentFactory) At(applicationID, regionID uint, date, timeOfDay string) *models.Deployment {
	d := f.Create(applicationID, regionID)
	d.Date = date
	d.Time = timeOfDay
	return d
}

// WithTag sets the application tag of the deployment
func (f *DeploymentFactory) WithTag(applicationID, regionID uint, tag string) *models.Deployment {
	d := f.Create(applicationID, regionID)
	d.ApplicationTag = &tag
	return d
}

// APIKeyFactory provides methods to create test APIKey data
type APIKeyFactory struct{}

// NewAPIKeyFactory creates a new APIKeyFactory
func NewAPIKeyFactory() *APIKeyFactory {
	return &APIKeyFactory{}
}

// Create creates a test APIKey with a random 64-hex-char secret
func (f *APIKeyFactory) Create() *models.APIKey {
	return &models.APIKey{
		KeyName: "key-" + randomSuffix(),
		Key:     randomHexSecret(),
		Active:  true,
	}
}

// WithName sets a custom key name
func (f *APIKeyFactory) WithName(name string) *models.APIKey {
	key := f.Create()
	key.KeyName = name
	return key
}

// Inactive creates a deactivated key
func (f *APIKeyFactory) Inactive() *models.APIKey {
	key := f.Create()
	key.Active = false
	return key
}

// FactorySet provides access to all factories
type FactorySet struct {
	Application *ApplicationFactory
	Region      *RegionFactory
	Deployment  *DeploymentFactory
	APIKey      *APIKeyFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Application: NewApplicationFactory(),
		Region:      NewRegionFactory(),
		Deployment:  NewDeploymentFactory(),
		APIKey:      NewAPIKeyFactory(),
	}
}

var factoryRand = rand.New(rand.NewSource(time.Now().UnixNano()))

func randomSuffix() string {
	b := make([]byte, 4)
	factoryRand.Read(b)
	return hex.EncodeToString(b)
}

func randomHexSecret() string {
	b := make([]byte, 32)
	factoryRand.Read(b)
	return hex.EncodeToString(b)
}
