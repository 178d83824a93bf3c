package review

import (
	"time"

	"github.com/google/uuid"
)

type Review struct {
	id            uuid.UUID
	userID        uuid.UUID
	destinationID uuid.UUID
	reservationID uuid.UUID
	rating        Rating
	comment       Comment
	createdAt     time.Time
	updatedAt     time.Time
}

func NewReview(services *Services, userID, destinationID, reservationID uuid.UUID, rating Rating, comment Comment, now time.Time) (*Review, error) {
	if services != nil && services.EligibilityChecker != nil {
		err := services.EligibilityChecker.CanPostReview(EligibilityInput{
			ReservationID: reservationID,
			UserID:        userID,
			DestinationID: destinationID,
		})
		if err != nil {
			return nil, err
		}
	}

	return &Review{
		id:            uuid.New(),
		userID:        userID,
		destinationID: destinationID,
		reservationID: reservationID,
		rating:        rating,
		comment:       comment,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func (r *Review) ID() uuid.UUID            { return r.id }
func (r *Review) UserID() uuid.UUID        { return r.userID }
func (r *Review) DestinationID() uuid.UUID { return r.destinationID }
func (r *Review) ReservationID() uuid.UUID { return r.reservationID }
func (r *Review) Rating() Rating           { return r.rating }
func (r *Review) Comment() Comment         { return r.comment }
func (r *Review) CreatedAt() time.Time     { return r.createdAt }
func (r *Review) UpdatedAt() time.Time     { return r.updatedAt }
