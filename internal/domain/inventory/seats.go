package inventory

import (
	"orbital-booking/internal/pkg/errs"
)

var (
	ErrInsufficientSeats = errs.Class("not enough seats available on route", errs.ErrInsufficientCapacity)
	ErrInvalidSeatCount  = errs.Class("seat count must be positive", errs.ErrInvalidInput)
	ErrInvalidCapacity   = errs.Class("available seats must be between 0 and total seats", errs.ErrInvalidInput)
)

// Seats is a route's capacity counter. 0 <= available <= total holds for
// every value this package hands out.
type Seats struct {
	total     int
	available int
}

func NewSeats(total, available int) (Seats, error) {
	if total < 0 || available < 0 || available > total {
		return Seats{}, ErrInvalidCapacity
	}
	return Seats{total: total, available: available}, nil
}

func (s Seats) Total() int     { return s.total }
func (s Seats) Available() int { return s.available }

// Reserve debits n seats or fails without changing anything.
func (s Seats) Reserve(n int) (Seats, error) {
	if n <= 0 {
		return s, ErrInvalidSeatCount
	}
	if s.available-n < 0 {
		return s, ErrInsufficientSeats
	}
	return Seats{total: s.total, available: s.available - n}, nil
}

// Release credits n seats, capped at total. The uncredited remainder is
// returned so the caller can report it.
func (s Seats) Release(n int) (Seats, int, error) {
	if n <= 0 {
		return s, 0, ErrInvalidSeatCount
	}
	next := s.available + n
	overflow := 0
	if next > s.total {
		overflow = next - s.total
		next = s.total
	}
	return Seats{total: s.total, available: next}, overflow, nil
}

// Drift compares the stored counter with what active reservations imply.
type Drift struct {
	Stored   int
	Expected int
	// Overbooked is set when active passengers exceed total seats; Expected is then clamped to 0.
	Overbooked bool
}

func (d Drift) HasDrift() bool {
	return d.Stored != d.Expected || d.Overbooked
}

func ComputeDrift(total, stored, activePassengers int) Drift {
	expected := total - activePassengers
	d := Drift{Stored: stored, Expected: expected}
	if expected < 0 {
		d.Expected = 0
		d.Overbooked = true
	}
	return d
}
