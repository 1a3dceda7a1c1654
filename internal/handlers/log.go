package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

//go:generate mockgen -source=log.go -destination=log_mock.go -package=handlers

// LogReader defines the interface that the service must implement.
type LogReader interface {
	Log(ctx context.Context, q services.LogQuery) ([]models.ExerciseLogEntry, error)
}

// NewLogHandler returns an HTTP handler for a user's exercise log.
// @Summary Get exercise log
// @Description Returns the user's exercises ordered by date, filtered by an inclusive date range and capped by limit.
// @Tags exercises
// @Produce json
// @Param userId query string true "Username"
// @Param from query string false "Start date, yyyy-mm-dd"
// @Param to query string false "End date, yyyy-mm-dd, inclusive"
// @Param limit query int false "Maximum number of entries"
// @Success 200 {array} models.ExerciseLogEntry "Log entries"
// @Failure 400 {string} string "limit is not a valid number / from is not a valid date / to is not a valid date / limit must be greater than 0"
// @Failure 404 {string} string "Username not found"
// @Failure 500 {string} string "Error while searching for exercises"
// @Router /exercise/log [get]
func NewLogHandler(svc LogReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		entries, err := svc.Log(r.Context(), services.LogQuery{
			UserID: query.Get("userId"),
			From:   query.Get("from"),
			To:     query.Get("to"),
			Limit:  query.Get("limit"),
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, entries)
	}
}
