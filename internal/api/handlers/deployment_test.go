package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"deployment-tracker-backend/internal/api/handlers"
	apperrors "deployment-tracker-backend/internal/errors"
	"deployment-tracker-backend/internal/mocks"
	"deployment-tracker-backend/internal/repository"
	"deployment-tracker-backend/internal/service"
	"deployment-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type DeploymentHandlerTestSuite struct {
	suite.Suite
	ctrl                  *gomock.Controller
	mockDeploymentService *mocks.MockDeploymentServiceInterface
	httpSuite             *testutils.HTTPTestSuite
}

func (suite *DeploymentHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDeploymentService = mocks.NewMockDeploymentServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewDeploymentHandler(suite.mockDeploymentService)
	suite.httpSuite.Router.POST("/api/deployments", handler.CreateDeployment)
	suite.httpSuite.Router.GET("/api/deployments", handler.ListDeployments)
	suite.httpSuite.Router.GET("/api/deployments/application/:id", handler.ListDeploymentsByApplication)
	suite.httpSuite.Router.GET("/api/deployments/region/:id", handler.ListDeploymentsByRegion)
}

func (suite *DeploymentHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DeploymentHandlerTestSuite) TestCreateDeployment_Success() {
	suite.mockDeploymentService.EXPECT().Create(gomock.Any()).DoAndReturn(
		func(req *service.CreateDeploymentRequest) (*service.CreateDeploymentResponse, error) {
			assert.Equal(suite.T(), uint(1), req.ApplicationID)
			assert.Equal(suite.T(), uint(2), req.RegionID)
			assert.Equal(suite.T(), "2024-06-15", req.Date)
			return &service.CreateDeploymentResponse{ID: 10, Message: "Deployment created successfully"}, nil
		})

	body := map[string]interface{}{
		"applicationId": 1,
		"regionId":      2,
		"date":          "2024-06-15",
		"time":          "12:30:00",
		"result":        "success",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/deployments", body)

	var resp service.CreateDeploymentResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &resp)
	assert.Equal(suite.T(), uint(10), resp.ID)
	assert.Equal(suite.T(), "Deployment created successfully", resp.Message)
}

func (suite *DeploymentHandlerTestSuite) TestCreateDeployment_MissingFields() {
	suite.mockDeploymentService.EXPECT().Create(gomock.Any()).Return(
		nil, apperrors.NewValidationError("", "missing required fields"))

	body := map[string]interface{}{"applicationId": 1}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/deployments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields")
}

func (suite *DeploymentHandlerTestSuite) TestCreateDeployment_MalformedBody() {
	// Type mismatch fails binding before the service is reached.
	body := map[string]interface{}{"applicationId": "not-a-number"}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/deployments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Missing required fields")
}

func (suite *DeploymentHandlerTestSuite) TestCreateDeployment_StoreFailure() {
	// Dangling application/region references surface as a generic write
	// failure, not a validation error.
	suite.mockDeploymentService.EXPECT().Create(gomock.Any()).Return(
		nil, errors.New("failed to create deployment: FK violated"))

	body := map[string]interface{}{
		"applicationId": 999,
		"regionId":      2,
		"date":          "2024-06-15",
		"time":          "12:30:00",
		"result":        "success",
	}
	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/deployments", body)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to create deployment")
}

func (suite *DeploymentHandlerTestSuite) TestListDeployments_Success() {
	rows := []repository.DeploymentRow{
		{ID: 2, Application: "app_one", Region: "PROD", Date: "2024-06-16", Time: "09:00:00", DeploymentResult: "success"},
		{ID: 1, Application: "app_two", Region: "DEV", Date: "2024-06-15", Time: "12:30:00", DeploymentResult: "failure"},
	}
	suite.mockDeploymentService.EXPECT().List().Return(rows, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments", nil)

	var resp []repository.DeploymentRow
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "app_one", resp[0].Application)
	assert.Equal(suite.T(), "PROD", resp[0].Region)
}

func (suite *DeploymentHandlerTestSuite) TestListDeployments_ServiceError() {
	suite.mockDeploymentService.EXPECT().List().Return(nil, errors.New("db failed"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to retrieve deployments")
}

func (suite *DeploymentHandlerTestSuite) TestListDeploymentsByApplication_Success() {
	rows := []repository.DeploymentRow{
		{ID: 1, Application: "app_one", Region: "DEV", Date: "2024-06-15", Time: "12:30:00", DeploymentResult: "success"},
	}
	suite.mockDeploymentService.EXPECT().ListByApplication(uint(1)).Return(rows, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments/application/1", nil)

	var resp []repository.DeploymentRow
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

func (suite *DeploymentHandlerTestSuite) TestListDeploymentsByApplication_UnknownID() {
	// Unknown but numeric IDs are not an error; the list is just empty.
	suite.mockDeploymentService.EXPECT().ListByApplication(uint(999)).Return([]repository.DeploymentRow{}, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments/application/999", nil)

	var resp []repository.DeploymentRow
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Empty(suite.T(), resp)
}

func (suite *DeploymentHandlerTestSuite) TestListDeploymentsByApplication_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments/application/abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid application ID")
}

func (suite *DeploymentHandlerTestSuite) TestListDeploymentsByRegion_Success() {
	rows := []repository.DeploymentRow{
		{ID: 1, Application: "app_one", Region: "PROD", Date: "2024-06-15", Time: "12:30:00", DeploymentResult: "success"},
	}
	suite.mockDeploymentService.EXPECT().ListByRegion(uint(3)).Return(rows, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments/region/3", nil)

	var resp []repository.DeploymentRow
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 1)
}

func (suite *DeploymentHandlerTestSuite) TestListDeploymentsByRegion_InvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/deployments/region/abc", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid region ID")
}

func TestDeploymentHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(DeploymentHandlerTestSuite))
}
