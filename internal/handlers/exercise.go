package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
	"github.com/sbilibin2017/exercise-tracker/internal/services"
)

//go:generate mockgen -source=exercise.go -destination=exercise_mock.go -package=handlers

// ExerciseAdder defines the interface that the service must implement.
type ExerciseAdder interface {
	Add(ctx context.Context, in services.AddExerciseInput) (*models.Exercise, error)
}

// AddExerciseRequest represents the body for adding an exercise
// swagger:model AddExerciseRequest
type AddExerciseRequest struct {
	// Username of the owner
	// required: true
	// default: alice
	UserID string `json:"userId"`

	// What was done
	// required: true
	// default: run
	Description string `json:"description"`

	// Positive integer, as a number or a string
	// required: true
	// default: 30
	Duration flexString `json:"duration" swaggertype:"string"`

	// Optional yyyy-mm-dd date, today when empty
	// default: 2023-01-05
	Date string `json:"date"`
}

func (req *AddExerciseRequest) bindForm(values url.Values) {
	req.UserID = values.Get("userId")
	req.Description = values.Get("description")
	req.Duration = flexString(values.Get("duration"))
	req.Date = values.Get("date")
}

// NewAddExerciseHandler returns an HTTP handler attaching an exercise to a user.
// @Summary Add an exercise
// @Description Validates the exercise, resolves userId as a username and stores the exercise.
// @Tags exercises
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param addExerciseRequest body handlers.AddExerciseRequest true "Exercise"
// @Success 200 {object} models.Exercise "Created exercise"
// @Failure 400 {string} string "missing required field / duration must be a number / invalid date"
// @Failure 404 {string} string "Username not found"
// @Failure 500 {string} string "Error saving exercise"
// @Router /exercise/add [post]
func NewAddExerciseHandler(svc ExerciseAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AddExerciseRequest
		if err := bindBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		exercise, err := svc.Add(r.Context(), services.AddExerciseInput{
			UserID:      req.UserID,
			Description: req.Description,
			Duration:    string(req.Duration),
			Date:        req.Date,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, exercise)
	}
}
