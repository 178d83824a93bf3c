//go:build unit || e2e

package builder

import (
	"time"

	domreview "orbital-booking/internal/domain/review"
	reqdto "orbital-booking/internal/handler/dto/request"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/usecase/commands"
	"orbital-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type ReviewBuilder struct {
	UserID          uuid.UUID
	UserEmail       string
	DestinationID   uuid.UUID
	ReservationID   uuid.UUID
	Rating          int
	Comment         string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	EligibilityFunc func(domreview.EligibilityInput) error
}

func NewReviewBuilder() *ReviewBuilder {
	now := time.Now()
	return &ReviewBuilder{
		UserID:        uuid.New(),
		UserEmail:     "reviewer@example.com",
		DestinationID: uuid.New(),
		ReservationID: uuid.New(),
		Rating:        5,
		Comment:       "Excellent flight!",
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (r *ReviewBuilder) With(mutate func(*ReviewBuilder)) *ReviewBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReviewBuilder) BuildDomain() (*domreview.Review, error) {
	rating, err := domreview.NewRating(r.Rating)
	if err != nil {
		return nil, err
	}
	comment, err := domreview.NewComment(r.Comment)
	if err != nil {
		return nil, err
	}

	var services *domreview.Services
	if r.EligibilityFunc != nil {
		services = &domreview.Services{EligibilityChecker: eligibilityFunc(r.EligibilityFunc)}
	}
	return domreview.NewReview(services, r.UserID, r.DestinationID, r.ReservationID, rating, comment, r.CreatedAt)
}

func (r *ReviewBuilder) BuildInfra() sqlc.Reviews {
	return sqlc.Reviews{
		ID:            uuid.New(),
		UserID:        r.UserID,
		DestinationID: r.DestinationID,
		ReservationID: r.ReservationID,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: r.UpdatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildListRow() sqlc.ListReviewsByDestinationRow {
	return sqlc.ListReviewsByDestinationRow{
		ID:            uuid.New(),
		UserID:        r.UserID,
		UserEmail:     pgtype.Text{String: r.UserEmail, Valid: true},
		DestinationID: r.DestinationID,
		ReservationID: r.ReservationID,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     pgtype.Timestamptz{Time: r.CreatedAt, Valid: true},
	}
}

func (r *ReviewBuilder) BuildCreateRequestDTO() reqdto.CreateReviewRequest {
	return reqdto.CreateReviewRequest{
		DestinationID: r.DestinationID,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildCommand() commands.CreateReviewRequest {
	return commands.CreateReviewRequest{
		DestinationID: r.DestinationID,
		ReservationID: r.ReservationID,
		Rating:        r.Rating,
		Comment:       r.Comment,
	}
}

func (r *ReviewBuilder) BuildListItem() *queries.ReviewListItem {
	return &queries.ReviewListItem{
		ID:            uuid.New(),
		UserID:        r.UserID,
		UserEmail:     r.UserEmail,
		ReservationID: r.ReservationID,
		Rating:        int32(r.Rating),
		Comment:       r.Comment,
		CreatedAt:     r.CreatedAt,
	}
}

func (r *ReviewBuilder) BuildDestinationRatingStats() *queries.DestinationRatingStats {
	return &queries.DestinationRatingStats{
		DestinationID: r.DestinationID,
		TotalReviews:  10,
		AverageRating: 3.9,
		Rating1Count:  1,
		Rating2Count:  1,
		Rating3Count:  2,
		Rating4Count:  3,
		Rating5Count:  3,
		UpdatedAt:     r.UpdatedAt,
	}
}

// Fluent builder methods
func (r *ReviewBuilder) WithUserID(userID uuid.UUID) *ReviewBuilder {
	r.UserID = userID
	return r
}

func (r *ReviewBuilder) WithUserEmail(email string) *ReviewBuilder {
	r.UserEmail = email
	return r
}

func (r *ReviewBuilder) WithDestinationID(destinationID uuid.UUID) *ReviewBuilder {
	r.DestinationID = destinationID
	return r
}

func (r *ReviewBuilder) WithReservationID(reservationID uuid.UUID) *ReviewBuilder {
	r.ReservationID = reservationID
	return r
}

func (r *ReviewBuilder) WithRating(rating int) *ReviewBuilder {
	r.Rating = rating
	return r
}

func (r *ReviewBuilder) WithComment(comment string) *ReviewBuilder {
	r.Comment = comment
	return r
}

func (r *ReviewBuilder) WithCreatedAt(createdAt time.Time) *ReviewBuilder {
	r.CreatedAt = createdAt
	return r
}

func (r *ReviewBuilder) WithEligibility(fn func(domreview.EligibilityInput) error) *ReviewBuilder {
	r.EligibilityFunc = fn
	return r
}

func (r *ReviewBuilder) AsPoorRating() *ReviewBuilder {
	r.Rating = 1
	r.Comment = "Cabin pressure was a mess"
	return r
}

type eligibilityFunc func(domreview.EligibilityInput) error

func (f eligibilityFunc) CanPostReview(in domreview.EligibilityInput) error { return f(in) }
