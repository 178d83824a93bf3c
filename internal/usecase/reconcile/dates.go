package reconcile

import (
	"encoding/json"
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type DateSource string

const (
	DateSourceRoute    DateSource = "route"
	DateSourceExisting DateSource = "existing"
	DateSourceDefault  DateSource = "default"
)

type DateRepair struct {
	ReservationID uuid.UUID               `json:"reservation_id"`
	Dates         reservation.TravelDates `json:"-"`
	Source        DateSource              `json:"source"`
}

func (r DateRepair) MarshalJSON() ([]byte, error) {
	type alias DateRepair
	return json.Marshal(struct {
		alias
		Departure string `json:"departure_date"`
		Return    string `json:"return_date"`
	}{
		alias:     alias(r),
		Departure: r.Dates.Departure().Format(time.DateOnly),
		Return:    r.Dates.Return().Format(time.DateOnly),
	})
}

// PlanDateRepair picks replacement travel dates: the route's dates when they
// are valid, otherwise the surviving departure date, otherwise fallback.
func PlanDateRepair(row shared.InvalidDates, fallback time.Time) DateRepair {
	if row.Route.Valid() {
		return DateRepair{ReservationID: row.ReservationID, Dates: row.Route, Source: DateSourceRoute}
	}

	if dep := row.Current.Departure(); !dep.IsZero() {
		return DateRepair{
			ReservationID: row.ReservationID,
			Dates:         reservation.SnapshotTravelDates(dep, dep),
			Source:        DateSourceExisting,
		}
	}

	return DateRepair{
		ReservationID: row.ReservationID,
		Dates:         reservation.SnapshotTravelDates(fallback, fallback),
		Source:        DateSourceDefault,
	}
}
