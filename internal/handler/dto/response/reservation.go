package response

import (
	"time"

	"orbital-booking/internal/domain/reservation"
	"orbital-booking/internal/usecase/commands"
	"orbital-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

func money(cents int64) string {
	return reservation.NewMoney(cents).String()
}

type CreateReservationResponse struct {
	ReservationID      uuid.UUID `json:"reservationId"`
	Status             string    `json:"status"`
	RouteSubtotal      string    `json:"routeSubtotal"`
	ActivitiesSubtotal string    `json:"activitiesSubtotal"`
	Total              string    `json:"total"`
	AvailableSeats     int       `json:"availableSeats"`
}

func FromCreateResult(r *commands.CreateReservationResult) *CreateReservationResponse {
	return &CreateReservationResponse{
		ReservationID:      r.ReservationID,
		Status:             r.Status.String(),
		RouteSubtotal:      r.RouteSubtotal.String(),
		ActivitiesSubtotal: r.ActivitiesSubtotal.String(),
		Total:              r.Total.String(),
		AvailableSeats:     r.AvailableSeats,
	}
}

type CancelReservationResponse struct {
	ReservationID      uuid.UUID   `json:"reservationId"`
	Message            string      `json:"message"`
	AlreadyCanceled    bool        `json:"alreadyCanceled"`
	RefundedPaymentIDs []uuid.UUID `json:"refundedPaymentIds"`
	AvailableSeats     *int        `json:"availableSeats"`
}

func FromCancelResult(r *commands.CancelReservationResult) *CancelReservationResponse {
	refunded := r.RefundedPaymentIDs
	if refunded == nil {
		refunded = []uuid.UUID{}
	}
	return &CancelReservationResponse{
		ReservationID:      r.ReservationID,
		Message:            r.Message,
		AlreadyCanceled:    r.AlreadyCanceled,
		RefundedPaymentIDs: refunded,
		AvailableSeats:     r.AvailableSeats,
	}
}

type LineItemResponse struct {
	ID         uuid.UUID `json:"id"`
	ActivityID uuid.UUID `json:"activityId"`
	Quantity   int32     `json:"quantity"`
	UnitPrice  string    `json:"unitPrice"`
	LineTotal  string    `json:"lineTotal"`
}

type PaymentResponse struct {
	ID        uuid.UUID `json:"id"`
	Amount    string    `json:"amount"`
	Method    string    `json:"method"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type ReservationResponse struct {
	ID                 uuid.UUID          `json:"id"`
	UserID             uuid.UUID          `json:"userId"`
	RouteID            uuid.UUID          `json:"routeId"`
	ShipID             uuid.UUID          `json:"shipId"`
	Passengers         int32              `json:"passengers"`
	Status             string             `json:"status"`
	RouteSubtotal      string             `json:"routeSubtotal"`
	ActivitiesSubtotal string             `json:"activitiesSubtotal"`
	Total              string             `json:"total"`
	DepartureDate      *time.Time         `json:"departureDate,omitempty"`
	ReturnDate         *time.Time         `json:"returnDate,omitempty"`
	LineItems          []LineItemResponse `json:"lineItems"`
	Payments           []PaymentResponse  `json:"payments"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

type ReservationListResponse struct {
	ID            uuid.UUID  `json:"id"`
	RouteID       uuid.UUID  `json:"routeId"`
	Passengers    int32      `json:"passengers"`
	Status        string     `json:"status"`
	Total         string     `json:"total"`
	DepartureDate *time.Time `json:"departureDate,omitempty"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

type ReservationPageResponse struct {
	Items      []*ReservationListResponse `json:"items"`
	NextCursor *string                    `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	items := make([]LineItemResponse, len(v.LineItems))
	for i, li := range v.LineItems {
		items[i] = LineItemResponse{
			ID:         li.ID,
			ActivityID: li.ActivityID,
			Quantity:   li.Quantity,
			UnitPrice:  money(li.UnitPriceCents),
			LineTotal:  money(li.LineTotalCents),
		}
	}
	payments := make([]PaymentResponse, len(v.Payments))
	for i, p := range v.Payments {
		payments[i] = PaymentResponse{
			ID:        p.ID,
			Amount:    money(p.AmountCents),
			Method:    p.Method,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
		}
	}
	return &ReservationResponse{
		ID:                 v.ID,
		UserID:             v.UserID,
		RouteID:            v.RouteID,
		ShipID:             v.ShipID,
		Passengers:         v.Passengers,
		Status:             v.Status,
		RouteSubtotal:      money(v.RouteSubtotalCents),
		ActivitiesSubtotal: money(v.ActivitiesSubtotalCents),
		Total:              money(v.TotalCents),
		DepartureDate:      v.DepartureDate,
		ReturnDate:         v.ReturnDate,
		LineItems:          items,
		Payments:           payments,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func FromReservationList(items []*queries.ReservationListItem, next *queries.Cursor) *ReservationPageResponse {
	res := make([]*ReservationListResponse, len(items))
	for i, it := range items {
		res[i] = &ReservationListResponse{
			ID:            it.ID,
			RouteID:       it.RouteID,
			Passengers:    it.Passengers,
			Status:        it.Status,
			Total:         money(it.TotalCents),
			DepartureDate: it.DepartureDate,
			ReturnDate:    it.ReturnDate,
			CreatedAt:     it.CreatedAt,
		}
	}
	page := &ReservationPageResponse{Items: res}
	if next != nil {
		page.NextCursor = &next.After
	}
	return page
}

type RouteAvailabilityResponse struct {
	ID              uuid.UUID  `json:"id"`
	DestinationID   uuid.UUID  `json:"destinationId"`
	DestinationName string     `json:"destinationName"`
	ShipID          uuid.UUID  `json:"shipId"`
	ShipName        string     `json:"shipName"`
	BasePrice       string     `json:"basePrice"`
	TotalSeats      int32      `json:"totalSeats"`
	AvailableSeats  int32      `json:"availableSeats"`
	DepartureDate   *time.Time `json:"departureDate,omitempty"`
	ReturnDate      *time.Time `json:"returnDate,omitempty"`
	IsActive        bool       `json:"isActive"`
}

func FromRouteAvailability(v *queries.RouteAvailabilityView) *RouteAvailabilityResponse {
	return &RouteAvailabilityResponse{
		ID:              v.ID,
		DestinationID:   v.DestinationID,
		DestinationName: v.DestinationName,
		ShipID:          v.ShipID,
		ShipName:        v.ShipName,
		BasePrice:       money(v.BasePriceCents),
		TotalSeats:      v.TotalSeats,
		AvailableSeats:  v.AvailableSeats,
		DepartureDate:   v.DepartureDate,
		ReturnDate:      v.ReturnDate,
		IsActive:        v.IsActive,
	}
}

type FindingResponse struct {
	ID        uuid.UUID      `json:"id"`
	RunID     uuid.UUID      `json:"runId"`
	Kind      string         `json:"kind"`
	SubjectID uuid.UUID      `json:"subjectId"`
	RouteID   *uuid.UUID     `json:"routeId,omitempty"`
	Detail    map[string]any `json:"detail,omitempty"`
	Corrected bool           `json:"corrected"`
	CreatedAt time.Time      `json:"createdAt"`
}

func FromFindings(views []*queries.ReconciliationFindingView) []*FindingResponse {
	res := make([]*FindingResponse, len(views))
	for i, f := range views {
		res[i] = &FindingResponse{
			ID:        f.ID,
			RunID:     f.RunID,
			Kind:      f.Kind,
			SubjectID: f.SubjectID,
			RouteID:   f.RouteID,
			Detail:    f.Detail,
			Corrected: f.Corrected,
			CreatedAt: f.CreatedAt,
		}
	}
	return res
}
