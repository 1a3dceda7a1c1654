package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"net/url"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// formBinder is implemented by request bodies that can also arrive url-encoded.
type formBinder interface {
	bindForm(values url.Values)
}

// bindBody decodes a JSON or form-encoded request body into req.
// An empty JSON body leaves req untouched.
func bindBody(r *http.Request, req formBinder) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/json" {
		err := json.NewDecoder(r.Body).Decode(req)
		if err != nil && !errors.Is(err, io.EOF) {
			return models.NewValidationError("invalid request body")
		}
		return nil
	}

	if err := r.ParseForm(); err != nil {
		return models.NewValidationError("invalid request body")
	}
	req.bindForm(r.PostForm)
	return nil
}

// flexString accepts a JSON string or number and keeps its text.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}

	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = flexString(str)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}
	*s = flexString(num.String())
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
