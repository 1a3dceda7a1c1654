package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

//go:generate mockgen -source=users.go -destination=users_mock.go -package=handlers

// UserLister defines the interface that the service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// NewListUsersHandler returns an HTTP handler listing every user.
// @Summary List users
// @Description Returns all registered users. Also served at /exercise/users.
// @Tags users
// @Produce json
// @Success 200 {array} models.User "Registered users"
// @Failure 500 {string} string "Error listing users"
// @Router /exercise/new-user [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, users)
	}
}
