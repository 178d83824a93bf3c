//go:build unit

package pgconv_test

import (
	"math"
	"math/big"
	"testing"
	"time"

	"orbital-booking/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumericToCents(t *testing.T) {
	testCases := []struct {
		name     string
		in       pgtype.Numeric
		expected int64
		errIs    error
	}{
		{name: "two fractional digits", in: pgtype.Numeric{Int: big.NewInt(1200000000), Exp: -2, Valid: true}, expected: 1200000000},
		{name: "whole units", in: pgtype.Numeric{Int: big.NewInt(250000), Exp: 0, Valid: true}, expected: 25000000},
		{name: "positive exponent", in: pgtype.Numeric{Int: big.NewInt(12), Exp: 6, Valid: true}, expected: 1200000000},
		{name: "rounds half up", in: pgtype.Numeric{Int: big.NewInt(12345), Exp: -3, Valid: true}, expected: 1235},
		{name: "rounds down below half", in: pgtype.Numeric{Int: big.NewInt(12344), Exp: -3, Valid: true}, expected: 1234},
		{name: "negative rounds away from zero", in: pgtype.Numeric{Int: big.NewInt(-12345), Exp: -3, Valid: true}, expected: -1235},
		{name: "null", in: pgtype.Numeric{}, errIs: pgconv.ErrNullNumeric},
		{name: "nan", in: pgtype.Numeric{NaN: true, Valid: true}, errIs: pgconv.ErrNonFiniteNumeric},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := pgconv.NumericToCents(tc.in)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	n := pgconv.CentsToNumeric(2475000000)
	actual, err := pgconv.NumericToCents(n)
	require.NoError(t, err)
	assert.Equal(t, int64(2475000000), actual)
}

func TestDateConversion(t *testing.T) {
	t.Run("zero time maps to null", func(t *testing.T) {
		assert.False(t, pgconv.DateToPgtype(time.Time{}).Valid)
		assert.True(t, pgconv.DateFromPgtype(pgtype.Date{}).IsZero())
	})

	t.Run("time of day is dropped", func(t *testing.T) {
		d := pgconv.DateToPgtype(time.Date(2030, 5, 1, 15, 30, 0, 0, time.UTC))
		require.True(t, d.Valid)
		assert.Equal(t, time.Date(2030, 5, 1, 0, 0, 0, 0, time.UTC), pgconv.DateFromPgtype(d))
	})
}

func TestInt32(t *testing.T) {
	v, err := pgconv.Int32(math.MaxInt32)
	require.NoError(t, err)
	assert.Equal(t, int32(math.MaxInt32), v)

	_, err = pgconv.Int32(math.MaxInt32 + 1)
	require.ErrorIs(t, err, pgconv.ErrInt32Range)

	_, err = pgconv.Int32(math.MinInt32 - 1)
	require.ErrorIs(t, err, pgconv.ErrInt32Range)

	assert.Equal(t, int32(math.MaxInt32), pgconv.IntToInt32(math.MaxInt32+1))
}
