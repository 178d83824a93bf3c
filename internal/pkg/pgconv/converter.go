package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var (
	ErrInvalidFloat64Value = errors.New("invalid float64 value in pgtype.Numeric")
	ErrNullNumeric         = errors.New("numeric value is null")
	ErrNonFiniteNumeric    = errors.New("numeric value is not finite")
	ErrInt32Range          = errors.New("value out of int32 range")
	ErrNumericOverflow     = errors.New("numeric value does not fit in int64 cents")
)

var (
	bigTen  = big.NewInt(10)
	bigTwo  = big.NewInt(2)
	bigZero = big.NewInt(0)
)

// NumericToCents converts a NUMERIC to an integer number of cents, rounding
// half away from zero when the value carries more than two fractional digits.
func NumericToCents(n pgtype.Numeric) (int64, error) {
	if !n.Valid {
		return 0, ErrNullNumeric
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return 0, ErrNonFiniteNumeric
	}
	if n.Int == nil {
		return 0, nil
	}

	shift := int64(n.Exp) + 2
	v := new(big.Int).Set(n.Int)

	if shift >= 0 {
		v.Mul(v, new(big.Int).Exp(bigTen, big.NewInt(shift), nil))
	} else {
		div := new(big.Int).Exp(bigTen, big.NewInt(-shift), nil)
		q, r := new(big.Int).QuoRem(v, div, new(big.Int))
		// |r|*2 >= div rounds the magnitude up.
		r.Abs(r).Mul(r, bigTwo)
		if r.Cmp(div) >= 0 {
			if v.Cmp(bigZero) < 0 {
				q.Sub(q, big.NewInt(1))
			} else {
				q.Add(q, big.NewInt(1))
			}
		}
		v = q
	}

	if !v.IsInt64() {
		return 0, ErrNumericOverflow
	}
	return v.Int64(), nil
}

func CentsToNumeric(cents int64) pgtype.Numeric {
	return pgtype.Numeric{Int: big.NewInt(cents), Exp: -2, Valid: true}
}

func Float64FromNumeric(pn pgtype.Numeric) (float64, error) {
	if !pn.Valid {
		return 0, nil
	}
	value, err := pn.Float64Value()
	if err != nil || !value.Valid {
		return 0, ErrInvalidFloat64Value
	}
	return value.Float64, nil
}

// DateFromPgtype returns the zero time for NULL and infinite dates.
func DateFromPgtype(d pgtype.Date) time.Time {
	if !d.Valid || d.InfinityModifier != pgtype.Finite {
		return time.Time{}
	}
	return d.Time
}

func DatePtrFromPgtype(d pgtype.Date) *time.Time {
	t := DateFromPgtype(d)
	if t.IsZero() {
		return nil
	}
	return &t
}

func DateToPgtype(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{Valid: false}
	}
	y, m, day := t.Date()
	return pgtype.Date{Time: time.Date(y, m, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}

// Int32 converts v for an int4 column and fails when it does not fit.
func Int32(v int) (int32, error) {
	if v > math.MaxInt32 || v < math.MinInt32 {
		return 0, fmt.Errorf("%w: %d", ErrInt32Range, v)
	}
	return int32(v), nil // #nosec G115 -- range checked above
}

// IntToInt32 clamps to the int32 range. Use it only for query limits and
// other values that are safe to saturate.
func IntToInt32(v int) int32 {
	switch {
	case v > math.MaxInt32:
		return math.MaxInt32
	case v < math.MinInt32:
		return math.MinInt32
	default:
		return int32(v) // #nosec G115 -- range checked above
	}
}
