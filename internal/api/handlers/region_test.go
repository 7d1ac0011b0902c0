package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"deployment-tracker-backend/internal/api/handlers"
	"deployment-tracker-backend/internal/mocks"
	"deployment-tracker-backend/internal/service"
	"deployment-tracker-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RegionHandlerTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockRegionService *mocks.MockRegionServiceInterface
	httpSuite         *testutils.HTTPTestSuite
}

func (suite *RegionHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRegionService = mocks.NewMockRegionServiceInterface(suite.ctrl)
	suite.httpSuite = testutils.SetupHTTPTest()

	handler := handlers.NewRegionHandler(suite.mockRegionService)
	suite.httpSuite.Router.GET("/api/regions", handler.ListRegions)
}

func (suite *RegionHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *RegionHandlerTestSuite) TestListRegions_Success() {
	regions := []service.RegionResponse{
		{ID: 1, Name: "DEV"},
		{ID: 2, Name: "TEST"},
		{ID: 3, Name: "PROD"},
	}
	suite.mockRegionService.EXPECT().List().Return(regions, nil)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/regions", nil)

	var resp []service.RegionResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &resp)
	assert.Len(suite.T(), resp, 3)
	assert.Equal(suite.T(), "DEV", resp[0].Name)
}

func (suite *RegionHandlerTestSuite) TestListRegions_ServiceError() {
	suite.mockRegionService.EXPECT().List().Return(nil, errors.New("db failed"))

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/regions", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "Failed to retrieve regions")
}

func TestRegionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RegionHandlerTestSuite))
}
