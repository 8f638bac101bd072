// Package v1 implements the v1 HTTP API of the Budget Planner.
package v1

import (
	"errors"
	"net/http"

	"github.com/rhizvo/Budget-Planner/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var errInvalidAsOf = errors.New("the asOf parameter must be a date in YYYY-MM-DD format")
