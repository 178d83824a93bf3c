//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"orbital-booking/internal/handler/api"
	resdto "orbital-booking/internal/handler/dto/response"
	"orbital-booking/internal/usecase/queries"
	"orbital-booking/tests/common/builder"
	"orbital-booking/tests/common/httptest"
	queriesmock "orbital-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RouteHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockRouteQueries
	handler     *api.RouteHandler
}

func (s *RouteHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockRouteQueries(s.mockCtrl)
	s.handler = api.NewRouteHandler(s.mockQueries)

	s.router.GET("/routes/:id/availability", s.handler.GetAvailability)
}

func (s *RouteHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRouteHandlerSuite(t *testing.T) {
	suite.Run(t, new(RouteHandlerTestSuite))
}

func (s *RouteHandlerTestSuite) TestGetAvailability() {
	b := builder.NewReservationBuilder().WithSeats(40, 38)
	url := "/routes/" + b.RouteID.String() + "/availability"

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), b.RouteID).Return(b.BuildAvailabilityView(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.RouteAvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(b.RouteID, body.ID)
		s.Equal("120000.00", body.BasePrice)
		s.Equal(int32(40), body.TotalSeats)
		s.Equal(int32(38), body.AvailableSeats)
		s.True(body.IsActive)
		s.Require().NotNil(body.DepartureDate)
		s.True(b.DepartureDate.Equal(*body.DepartureDate))
	})

	s.Run("error: unknown route", func() {
		s.mockQueries.EXPECT().GetAvailability(gomock.Any(), b.RouteID).Return(nil, queries.ErrRouteNotFound)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "route not found")
	})

	s.Run("error: malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/routes/"+uuid.Nil.String()[:8]+"/availability", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid route id")
	})
}
