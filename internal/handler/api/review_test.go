//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	domreview "orbital-booking/internal/domain/review"
	"orbital-booking/internal/handler/api"
	resdto "orbital-booking/internal/handler/dto/response"
	"orbital-booking/internal/usecase/commands"
	"orbital-booking/internal/usecase/queries"
	"orbital-booking/tests/common/builder"
	"orbital-booking/tests/common/httptest"
	"orbital-booking/tests/common/testutil"
	commandsmock "orbital-booking/tests/mock/commands"
	queriesmock "orbital-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	userID       uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	s.router.POST("/reviews", fakeAuth(s.userID), s.handler.Create)
	s.router.GET("/destinations/:id/reviews", s.handler.ListByDestination)
	s.router.GET("/destinations/:id/rating-stats", s.handler.GetDestinationStats)
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

type testCaseReview struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReviewHandlerTestSuite) TestCreate() {
	url := "/reviews"

	reqBody := builder.NewReviewBuilder().BuildCreateRequestDTO()
	expectedResult := &commands.CreateReviewResult{ReviewID: uuid.New()}

	bound := []testCaseReview{
		{name: "rating boundary OK (1)", mutate: testutil.Field("rating", 1), expectCode: http.StatusCreated},
		{name: "rating boundary OK (5)", mutate: testutil.Field("rating", 5), expectCode: http.StatusCreated},
		{name: "rating boundary invalid (0)", mutate: testutil.Field("rating", 0), expectCode: http.StatusBadRequest},
		{name: "rating boundary invalid (6)", mutate: testutil.Field("rating", 6), expectCode: http.StatusBadRequest},
		{name: "comment length OK (1000 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1000)), expectCode: http.StatusCreated},
		{name: "comment length invalid (1001 chars)", mutate: testutil.Field("comment", strings.Repeat("a", 1001)), expectCode: http.StatusBadRequest},
	}

	missing := []testCaseReview{
		{name: "missing field: destination_id (required)", mutate: testutil.Field("destination_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: reservation_id (required)", mutate: testutil.Field("reservation_id", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: rating (required)", mutate: testutil.Field("rating", nil), expectCode: http.StatusBadRequest},
		{name: "missing field: comment (required)", mutate: testutil.Field("comment", nil), expectCode: http.StatusBadRequest},
	}

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReview(gomock.Any(), reqBody.ToCommand(), s.userID).Return(expectedResult, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.CreateReviewResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(expectedResult.ReviewID.String(), body.ID)
	})

	s.Run("validation", func() {
		for _, group := range [][]testCaseReview{bound, missing} {
			for _, tc := range group {
				s.Run(tc.name, func() {
					requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
					if tc.expectCode == http.StatusCreated {
						s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(expectedResult, nil)
					}
					rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
					httptest.AssertStatus(s.T(), rec, tc.expectCode)
				})
			}
		}
	})

	usecaseErrors := []struct {
		name       string
		err        error
		expectCode int
	}{
		{name: "blank comment", err: domreview.ErrEmptyComment, expectCode: http.StatusBadRequest},
		{name: "reservation not completed", err: domreview.ErrReservationNotEligible, expectCode: http.StatusForbidden},
		{name: "reservation missing", err: commands.ErrReservationNotFound, expectCode: http.StatusNotFound},
		{name: "already reviewed", err: domreview.ErrReviewAlreadyExists, expectCode: http.StatusConflict},
	}
	for _, tc := range usecaseErrors {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().CreateReview(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, tc.err.Error())
		})
	}

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertStatus(s.T(), rec, http.StatusUnauthorized)
	})
}

// ================================================================================
// TestListByDestination
// ================================================================================

func (s *ReviewHandlerTestSuite) TestListByDestination() {
	destinationID := uuid.New()
	base := "/destinations/" + destinationID.String() + "/reviews"

	s.Run("success: filters and paging forwarded", func() {
		items := []*queries.ReviewListItem{
			builder.NewReviewBuilder().WithCreatedAt(time.Unix(1767225600, 0)).BuildListItem(),
		}
		s.mockQueries.EXPECT().ListByDestination(gomock.Any(), destinationID, gomock.Any(), &queries.Cursor{After: "c1"}, 10).
			DoAndReturn(func(_ any, _ uuid.UUID, f queries.ReviewFilters, _ *queries.Cursor, _ int) ([]*queries.ReviewListItem, *queries.Cursor, error) {
				s.Require().NotNil(f.MinRating)
				s.Equal(4, *f.MinRating)
				return items, nil, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?min_rating=4&limit=10&after=c1", nil, "")

		var body resdto.ReviewPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal(int64(1767225600), body.Items[0].CreatedAt)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on bad min_rating", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?min_rating=high", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid min_rating")
	})

	s.Run("error: 400 on bad destination id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/destinations/nope/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid destination id")
	})
}

// ================================================================================
// TestGetDestinationStats
// ================================================================================

func (s *ReviewHandlerTestSuite) TestGetDestinationStats() {
	destinationID := uuid.New()
	stats := builder.NewReviewBuilder().WithDestinationID(destinationID).BuildDestinationRatingStats()
	s.mockQueries.EXPECT().GetDestinationRatingStats(gomock.Any(), destinationID).Return(stats, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/destinations/"+destinationID.String()+"/rating-stats", nil, "")

	var body resdto.DestinationRatingStatsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(destinationID.String(), body.DestinationID)
	s.Equal(stats.TotalReviews, body.TotalReviews)
	s.Equal([5]int32{stats.Rating1Count, stats.Rating2Count, stats.Rating3Count, stats.Rating4Count, stats.Rating5Count}, body.Histogram)
}
