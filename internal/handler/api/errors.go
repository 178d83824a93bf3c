package api

import (
	"errors"
	"net/http"

	"orbital-booking/internal/handler/httperr"
	"orbital-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

func statusFor(err error) int {
	switch errs.ClassOf(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrInvalidInput:
		return http.StatusBadRequest
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrInsufficientCapacity, errs.ErrAlreadyTerminal:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// abortWithUsecaseError hides storage details behind a generic message.
func abortWithUsecaseError(c *gin.Context, err error, fallback string) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = fallback
	}
	httperr.AbortWithError(c, status, err, msg, nil)
}

var errUnauthenticated = errors.New("missing authenticated user")

func abortUnauthenticated(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
}
