package converter

import (
	"orbital-booking/internal/domain/review"
	sqlc "orbital-booking/internal/infra/sqlc/generated"
	"orbital-booking/internal/pkg/pgconv"
)

func ReviewToCreateParams(r *review.Review) sqlc.CreateReviewParams {
	return sqlc.CreateReviewParams{
		ID:            r.ID(),
		UserID:        r.UserID(),
		DestinationID: r.DestinationID(),
		ReservationID: r.ReservationID(),
		Rating:        pgconv.IntToInt32(r.Rating().Value()),
		Comment:       r.Comment().String(),
		CreatedAt:     pgconv.TimeToPgtype(r.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(r.UpdatedAt()),
	}
}
