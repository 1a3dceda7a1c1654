package handlers

import (
	"context"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

//go:generate mockgen -source=register.go -destination=register_mock.go -package=handlers

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, username string) (*models.User, error)
}

// RegisterRequest represents the body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: alice
	Username string `json:"username"`
}

func (req *RegisterRequest) bindForm(values url.Values) {
	req.Username = values.Get("username")
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user with a unique, non-blank username.
// @Tags users
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 200 {object} models.User "Created user"
// @Failure 400 {string} string "Invalid username"
// @Failure 409 {string} string "Cannot save duplicate user"
// @Failure 500 {string} string "Error saving new user"
// @Router /exercise/new-user [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := bindBody(r, &req); err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, user)
	}
}
