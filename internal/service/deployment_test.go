package service_test

import (
	"errors"
	"testing"

	"deployment-tracker-backend/internal/database/models"
	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/mocks"
	"deployment-tracker-backend/internal/repository"
	"deployment-tracker-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type DeploymentServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockDeploymentRepo *mocks.MockDeploymentRepositoryInterface
	deploymentService  *service.DeploymentService
	validator          *validator.Validate
}

func (suite *DeploymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDeploymentRepo = mocks.NewMockDeploymentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()
	suite.deploymentService = service.NewDeploymentService(suite.mockDeploymentRepo, suite.validator)
}

func (suite *DeploymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func validDeploymentRequest() *service.CreateDeploymentRequest {
	return &service.CreateDeploymentRequest{
		ApplicationID: 1,
		RegionID:      2,
		Date:          "2024-06-15",
		Time:          "12:30:00",
		Result:        "success",
	}
}

func (suite *DeploymentServiceTestSuite) TestCreate_Success() {
	req := validDeploymentRequest()

	suite.mockDeploymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.Deployment) error {
		assert.Equal(suite.T(), uint(1), d.ApplicationID)
		assert.Equal(suite.T(), uint(2), d.RegionID)
		assert.Equal(suite.T(), "2024-06-15", d.Date)
		assert.Equal(suite.T(), "12:30:00", d.Time)
		assert.Equal(suite.T(), "success", d.DeploymentResult)
		assert.Nil(suite.T(), d.ApplicationTag)
		d.ID = 10
		return nil
	})

	resp, err := suite.deploymentService.Create(req)

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), resp)
	assert.Equal(suite.T(), uint(10), resp.ID)
	assert.Equal(suite.T(), "Deployment created successfully", resp.Message)
}

func (suite *DeploymentServiceTestSuite) TestCreate_WithTag() {
	req := validDeploymentRequest()
	tag := "v1.2.3"
	req.Tag = &tag

	suite.mockDeploymentRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(d *models.Deployment) error {
		assert.NotNil(suite.T(), d.ApplicationTag)
		assert.Equal(suite.T(), "v1.2.3", *d.ApplicationTag)
		d.ID = 11
		return nil
	})

	resp, err := suite.deploymentService.Create(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), uint(11), resp.ID)
}

func (suite *DeploymentServiceTestSuite) TestCreate_MissingApplicationID() {
	req := validDeploymentRequest()
	req.ApplicationID = 0

	resp, err := suite.deploymentService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestCreate_MissingRegionID() {
	req := validDeploymentRequest()
	req.RegionID = 0

	resp, err := suite.deploymentService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestCreate_MissingDate() {
	req := validDeploymentRequest()
	req.Date = ""

	resp, err := suite.deploymentService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestCreate_MalformedDate() {
	// Unpadded dates would break descending chronological order.
	req := validDeploymentRequest()
	req.Date = "2024-6-15"

	resp, err := suite.deploymentService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestCreate_MissingResult() {
	req := validDeploymentRequest()
	req.Result = ""

	resp, err := suite.deploymentService.Create(req)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestCreate_DanglingReference() {
	// The store's foreign keys reject unknown application/region IDs; no
	// existence pre-check happens here, so it surfaces as a create error.
	req := validDeploymentRequest()
	req.ApplicationID = 999

	suite.mockDeploymentRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrForeignKeyViolated)

	resp, err := suite.deploymentService.Create(req)

	assert.Error(suite.T(), err)
	assert.ErrorIs(suite.T(), err, gorm.ErrForeignKeyViolated)
	assert.False(suite.T(), apperrors.IsValidation(err))
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestList_Success() {
	rows := []repository.DeploymentRow{
		{ID: 2, Application: "app_one", Region: "PROD", Date: "2024-06-16", Time: "09:00:00", DeploymentResult: "success"},
		{ID: 1, Application: "app_two", Region: "DEV", Date: "2024-06-15", Time: "12:30:00", DeploymentResult: "failure"},
	}
	suite.mockDeploymentRepo.EXPECT().GetAll().Return(rows, nil)

	resp, err := suite.deploymentService.List()

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "app_one", resp[0].Application)
	assert.Equal(suite.T(), "PROD", resp[0].Region)
}

func (suite *DeploymentServiceTestSuite) TestList_RepositoryError() {
	suite.mockDeploymentRepo.EXPECT().GetAll().Return(nil, errors.New("db failed"))

	resp, err := suite.deploymentService.List()

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestListByApplication() {
	rows := []repository.DeploymentRow{
		{ID: 1, Application: "app_one", Region: "DEV", Date: "2024-06-15", Time: "12:30:00", DeploymentResult: "success"},
	}
	suite.mockDeploymentRepo.EXPECT().GetByApplicationID(uint(1)).Return(rows, nil)

	resp, err := suite.deploymentService.ListByApplication(1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
}

func (suite *DeploymentServiceTestSuite) TestListByApplication_EmptyResult() {
	// An unknown application ID yields an empty list, not an error.
	suite.mockDeploymentRepo.EXPECT().GetByApplicationID(uint(999)).Return([]repository.DeploymentRow{}, nil)

	resp, err := suite.deploymentService.ListByApplication(999)

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), resp)
}

func (suite *DeploymentServiceTestSuite) TestListByRegion() {
	rows := []repository.DeploymentRow{
		{ID: 1, Application: "app_one", Region: "PROD", Date: "2024-06-15", Time: "12:30:00", DeploymentResult: "success"},
	}
	suite.mockDeploymentRepo.EXPECT().GetByRegionID(uint(3)).Return(rows, nil)

	resp, err := suite.deploymentService.ListByRegion(3)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 1)
}

func TestDeploymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DeploymentServiceTestSuite))
}
