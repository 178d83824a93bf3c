package response

import (
	"orbital-booking/internal/usecase/queries"
)

type CreateReviewResponse struct {
	ID string `json:"id"`
}

type ReviewListItemResponse struct {
	ID            string `json:"id"`
	UserEmail     string `json:"user_email"`
	ReservationID string `json:"reservation_id"`
	Rating        int32  `json:"rating"`
	Comment       string `json:"comment"`
	CreatedAt     int64  `json:"created_at"`
}

type ReviewPageResponse struct {
	Items      []*ReviewListItemResponse `json:"items"`
	NextCursor *string                   `json:"next_cursor,omitempty"`
}

func FromReviewList(items []*queries.ReviewListItem, next *queries.Cursor) *ReviewPageResponse {
	res := make([]*ReviewListItemResponse, len(items))
	for i, it := range items {
		res[i] = &ReviewListItemResponse{
			ID:            it.ID.String(),
			UserEmail:     it.UserEmail,
			ReservationID: it.ReservationID.String(),
			Rating:        it.Rating,
			Comment:       it.Comment,
			CreatedAt:     it.CreatedAt.Unix(),
		}
	}
	page := &ReviewPageResponse{Items: res}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}

type DestinationRatingStatsResponse struct {
	DestinationID string   `json:"destination_id"`
	TotalReviews  int32    `json:"total_reviews"`
	AverageRating float64  `json:"average_rating"`
	Histogram     [5]int32 `json:"histogram"`
	UpdatedAt     int64    `json:"updated_at"`
}

func FromDestinationRatingStats(s *queries.DestinationRatingStats) *DestinationRatingStatsResponse {
	return &DestinationRatingStatsResponse{
		DestinationID: s.DestinationID.String(),
		TotalReviews:  s.TotalReviews,
		AverageRating: s.AverageRating,
		Histogram:     [5]int32{s.Rating1Count, s.Rating2Count, s.Rating3Count, s.Rating4Count, s.Rating5Count},
		UpdatedAt:     s.UpdatedAt.Unix(),
	}
}
