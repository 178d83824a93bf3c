//go:build e2e

package review_test

import (
	"fmt"
	"net/http"
	"testing"

	"orbital-booking/internal/domain/user"
	"orbital-booking/internal/handler/dto/request"
	"orbital-booking/internal/handler/dto/response"
	"orbital-booking/tests/common/builder"
	"orbital-booking/tests/common/dbtest"
	"orbital-booking/tests/common/httptest"
	"orbital-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reviewsURL            = "/api/reviews"
	destinationReviewsURL = "/api/destinations/%s/reviews"
	ratingStatsURL        = "/api/destinations/%s/rating-stats"
)

type ReviewSuite struct {
	e2e.SharedSuite
}

func (s *ReviewSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestReviewSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReviewSuite))
}

type traveller struct {
	userID        uuid.UUID
	token         string
	catalog       dbtest.Catalog
	reservationID uuid.UUID
}

// completedTrip seeds a customer with one reservation in the given status.
func (s *ReviewSuite) completedTrip(t *testing.T, email, status string) traveller {
	userID := dbtest.CreateTestUser(t, s.DB, email, user.RoleCustomer.String())
	catalog := dbtest.CreateTestCatalog(t, s.DB, dbtest.DefaultRouteSeed())
	reservationID := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationSeed{
		UserID: userID, RouteID: catalog.RouteID, ShipID: catalog.ShipID,
		Passengers: 1, Status: status, Total: "12000000.00",
	})
	return traveller{
		userID:        userID,
		token:         s.JWT.GenerateToken(t, userID, user.RoleCustomer),
		catalog:       catalog,
		reservationID: reservationID,
	}
}

func reviewRequest(tr traveller, rating int, comment string) request.CreateReviewRequest {
	return builder.NewReviewBuilder().
		WithDestinationID(tr.catalog.DestinationID).
		WithReservationID(tr.reservationID).
		WithRating(rating).
		WithComment(comment).
		BuildCreateRequestDTO()
}

// =============================================================================
// TestCreateReview
// =============================================================================

func (s *ReviewSuite) TestCreateReview() {
	s.Run("Normal case: completed trip can be reviewed", func() {
		t := s.T()
		tr := s.completedTrip(t, "reviewer@example.com", "completada")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 5, "Excellent flight!"), tr.token)

		var created response.CreateReviewResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEmpty(t, created.ID)
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "reviews", "reservation_id = $1", tr.reservationID))
		require.Equal(t, 1, dbtest.CountRows(t, s.DB, "notification_jobs", "topic = $1", "review.created"))
	})

	s.Run("Error case: duplicate review for same reservation", func() {
		t := s.T()
		tr := s.completedTrip(t, "reviewer@example.com", "completada")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 5, "First"), tr.token)
		httptest.AssertStatus(t, w, http.StatusCreated)

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 4, "Second"), tr.token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "review already exists")
	})

	s.Run("Error case: pending reservation is not eligible", func() {
		t := s.T()
		tr := s.completedTrip(t, "reviewer@example.com", "pendiente")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 5, "Too early"), tr.token)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "not eligible")
		require.Equal(t, 0, dbtest.CountRows(t, s.DB, "reviews", ""))
	})

	s.Run("Error case: someone else's reservation", func() {
		t := s.T()
		tr := s.completedTrip(t, "reviewer@example.com", "completada")
		otherID := dbtest.CreateTestUser(t, s.DB, "other@example.com", user.RoleCustomer.String())
		otherToken := s.JWT.GenerateToken(t, otherID, user.RoleCustomer)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 5, "Not mine"), otherToken)

		httptest.AssertErrorResponse(t, w, http.StatusForbidden, "")
	})

	s.Run("Error case: rating out of range", func() {
		t := s.T()
		tr := s.completedTrip(t, "reviewer@example.com", "completada")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 6, "Off the scale"), tr.token)

		httptest.AssertStatus(t, w, http.StatusBadRequest)
	})
}

// =============================================================================
// TestListDestinationReviews
// =============================================================================

func (s *ReviewSuite) TestListDestinationReviews() {
	s.Run("Normal case: min_rating filters and pages", func() {
		t := s.T()
		tr := s.completedTrip(t, "first@example.com", "completada")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 2, "Bumpy"), tr.token)
		httptest.AssertStatus(t, w, http.StatusCreated)

		for i, rating := range []int{4, 5} {
			userID := dbtest.CreateTestUser(t, s.DB, fmt.Sprintf("fan%d@example.com", i), user.RoleCustomer.String())
			resID := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationSeed{
				UserID: userID, RouteID: tr.catalog.RouteID, ShipID: tr.catalog.ShipID,
				Passengers: 1, Status: "completada", Total: "12000000.00",
			})
			fan := traveller{userID: userID, token: s.JWT.GenerateToken(t, userID, user.RoleCustomer), catalog: tr.catalog, reservationID: resID}
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(fan, rating, "Great"), fan.token)
			httptest.AssertStatus(t, w, http.StatusCreated)
		}

		url := fmt.Sprintf(destinationReviewsURL, tr.catalog.DestinationID) + "?min_rating=4&limit=1"
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url, nil, "")
		var page1 response.ReviewPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page1)
		require.Len(t, page1.Items, 1)
		require.Equal(t, int32(5), page1.Items[0].Rating)
		require.Equal(t, "fan1@example.com", page1.Items[0].UserEmail)
		require.NotNil(t, page1.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, url+"&after="+*page1.NextCursor, nil, "")
		var page2 response.ReviewPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page2)
		require.Len(t, page2.Items, 1)
		require.Equal(t, int32(4), page2.Items[0].Rating)
		require.Nil(t, page2.NextCursor)
	})

	s.Run("Normal case: unknown destination has no reviews", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(destinationReviewsURL, uuid.New()), nil, "")
		var page response.ReviewPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.Empty(t, page.Items)
	})
}

// =============================================================================
// TestDestinationRatingStats
// =============================================================================

func (s *ReviewSuite) TestDestinationRatingStats() {
	s.Run("Normal case: stats follow created reviews", func() {
		t := s.T()
		tr := s.completedTrip(t, "first@example.com", "completada")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(tr, 5, "Stellar"), tr.token)
		httptest.AssertStatus(t, w, http.StatusCreated)

		userID := dbtest.CreateTestUser(t, s.DB, "second@example.com", user.RoleCustomer.String())
		resID := dbtest.CreateTestReservation(t, s.DB, dbtest.ReservationSeed{
			UserID: userID, RouteID: tr.catalog.RouteID, ShipID: tr.catalog.ShipID,
			Passengers: 1, Status: "completada", Total: "12000000.00",
		})
		second := traveller{userID: userID, token: s.JWT.GenerateToken(t, userID, user.RoleCustomer), catalog: tr.catalog, reservationID: resID}
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, reviewsURL, reviewRequest(second, 4, "Good"), second.token)
		httptest.AssertStatus(t, w, http.StatusCreated)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingStatsURL, tr.catalog.DestinationID), nil, "")

		var actual response.DestinationRatingStatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		expected := response.DestinationRatingStatsResponse{
			DestinationID: tr.catalog.DestinationID.String(),
			TotalReviews:  2,
			AverageRating: 4.5,
			Histogram:     [5]int32{0, 0, 0, 1, 1},
		}
		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.DestinationRatingStatsResponse{}, "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, actual, opts...); diff != "" {
			t.Errorf("Rating stats mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Normal case: empty stats for destination without reviews", func() {
		t := s.T()
		destinationID := uuid.New()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, fmt.Sprintf(ratingStatsURL, destinationID), nil, "")

		var actual response.DestinationRatingStatsResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &actual)
		require.Equal(t, destinationID.String(), actual.DestinationID)
		require.Zero(t, actual.TotalReviews)
		require.Zero(t, actual.AverageRating)
	})
}
