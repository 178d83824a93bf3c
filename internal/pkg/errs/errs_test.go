//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"orbital-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	specific := errs.Class("seat map is full", errs.ErrInsufficientCapacity)

	t.Run("class survives wrapping", func(t *testing.T) {
		wrapped := errs.Wrap(specific, "reserve")
		assert.ErrorIs(t, wrapped, specific)
		assert.ErrorIs(t, wrapped, errs.ErrInsufficientCapacity)
		assert.NotErrorIs(t, wrapped, errs.ErrNotFound)
		assert.Equal(t, errs.ErrInsufficientCapacity, errs.ClassOf(wrapped))
	})

	t.Run("sentinel used as class", func(t *testing.T) {
		err := errs.Classify(fmt.Errorf("driver: %w", errors.New("boom")), specific)
		assert.ErrorIs(t, err, specific)
		assert.ErrorIs(t, err, errs.ErrInsufficientCapacity)
	})

	t.Run("message is the cause", func(t *testing.T) {
		assert.Equal(t, "seat map is full", specific.Error())
	})

	t.Run("nil stays nil", func(t *testing.T) {
		assert.NoError(t, errs.Classify(nil, errs.ErrNotFound))
		assert.Nil(t, errs.ClassOf(errors.New("plain")))
	})
}
