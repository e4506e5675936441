package v1

import (
	"errors"
	"net/http"

	"github.com/pocketdiary/backend/internal/categories"
	"github.com/pocketdiary/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) || errors.Is(err, categories.ErrNameNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errSortByInvalid        = errors.New("the sortBy parameter must be one of 'date' or 'duration'")
	errCategoryClassInvalid = errors.New("the category class must be one of 'fixed', 'flexible' or 'income'")
	errDateInvalid          = errors.New("dates must be specified in YYYY-MM-DD format")
)
