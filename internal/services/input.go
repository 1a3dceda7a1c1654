package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

// AddExerciseInput carries the raw fields of an add-exercise request.
// UserID holds the username of the owner.
type AddExerciseInput struct {
	UserID      string
	Description string
	Duration    string
	Date        string // optional, yyyy-mm-dd
}

// LogQuery carries the raw parameters of a log request.
// Empty optional fields are treated as absent.
type LogQuery struct {
	UserID string
	From   string // optional, yyyy-mm-dd
	To     string // optional, yyyy-mm-dd
	Limit  string // optional, integer >= 1
}

// validExercise is an AddExerciseInput that passed validation.
type validExercise struct {
	username    string
	description string
	duration    int
	date        time.Time
	hasDate     bool
}

// validate checks the input without touching the store.
// The first failing check wins.
func (in AddExerciseInput) validate() (validExercise, error) {
	v := validExercise{
		username:    strings.TrimSpace(in.UserID),
		description: strings.TrimSpace(in.Description),
	}
	duration := strings.TrimSpace(in.Duration)
	date := strings.TrimSpace(in.Date)

	if v.username == "" || v.description == "" || duration == "" {
		return v, models.NewValidationError("missing required field")
	}

	d, err := strconv.Atoi(duration)
	if err != nil {
		return v, models.NewValidationError("duration must be a number")
	}
	v.duration = d

	if date != "" {
		parsed, err := ParseDate(date)
		if err != nil {
			return v, models.NewValidationError("invalid date")
		}
		v.date, v.hasDate = parsed, true
	}

	if v.duration <= 0 {
		return v, models.NewValidationError("duration must be greater than 0")
	}

	return v, nil
}

// filter converts the optional parameters into a LogFilter without the user.
// The To bound is advanced by one day so the whole "to" day is included.
func (q LogQuery) filter() (models.LogFilter, error) {
	var f models.LogFilter

	limit := strings.TrimSpace(q.Limit)
	from := strings.TrimSpace(q.From)
	to := strings.TrimSpace(q.To)

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return f, models.NewValidationError("limit is not a valid number")
		}
		f.Limit = n
	}

	if from != "" {
		parsed, err := ParseDate(from)
		if err != nil {
			return f, models.NewValidationError("from is not a valid date")
		}
		f.From = parsed
	}

	if to != "" {
		parsed, err := ParseDate(to)
		if err != nil {
			return f, models.NewValidationError("to is not a valid date")
		}
		f.To = parsed.AddDate(0, 0, 1)
	}

	if limit != "" && f.Limit < 1 {
		return f, models.NewValidationError("limit must be greater than 0")
	}

	return f, nil
}

// ParseDate parses a yyyy-mm-dd date, or an RFC 3339 timestamp, and returns
// the start of that calendar day in UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(models.DateLayout, s)
	if err == nil {
		return t, nil
	}

	ts, tsErr := time.Parse(time.RFC3339, s)
	if tsErr != nil {
		return time.Time{}, err
	}
	ts = ts.UTC()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
}
