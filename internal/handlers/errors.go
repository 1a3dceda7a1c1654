package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/logger"
	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// writeError is the single error responder. Every error reaches the client
// as plain text with the status of its kind.
func writeError(w http.ResponseWriter, err error) {
	status, msg := errorStatus(err)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	io.WriteString(w, msg)
}

func errorStatus(err error) (int, string) {
	var (
		validationErr *models.ValidationError
		duplicateErr  *models.DuplicateUserError
		userErr       *models.UserNotFoundError
		storageErr    *models.StorageError
	)

	switch {
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &duplicateErr):
		return http.StatusConflict, duplicateErr.Error()
	case errors.As(err, &userErr):
		return http.StatusNotFound, userErr.Error()
	case errors.As(err, &storageErr):
		logger.Log.Errorw("storage failure", "error", storageErr.Detail())
		return http.StatusInternalServerError, storageErr.Message
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, models.ErrNotFound.Error()
	default:
		logger.Log.Errorw("internal server error", "error", err)
		return http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)
	}
}

// NewNotFoundHandler answers unmatched routes.
func NewNotFoundHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeError(w, models.ErrNotFound)
	}
}
