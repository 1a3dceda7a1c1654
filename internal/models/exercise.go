package models

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar date format accepted by the API.
const DateLayout = "2006-01-02"

// Exercise represents an exercise row in the store
type Exercise struct {
	ExerciseID  uuid.UUID `json:"_id" db:"exercise_id"`         // Store-generated identifier
	UserID      uuid.UUID `json:"userId" db:"user_id"`          // Identifier of the owning user
	Description string    `json:"description" db:"description"` // What was done
	Duration    int       `json:"duration" db:"duration"`       // Unit-agnostic magnitude
	Date        time.Time `json:"date" db:"date"`               // When the exercise happened
	CreatedAt   time.Time `json:"-" db:"created_at"`            // Insertion timestamp
}

// ExerciseLogEntry is the projection returned by log queries.
type ExerciseLogEntry struct {
	UserID      uuid.UUID `json:"userId" db:"user_id"`
	Description string    `json:"description" db:"description"`
	Duration    int       `json:"duration" db:"duration"`
	Date        time.Time `json:"date" db:"date"`
}

// NewExercise is the input for persisting an exercise.
type NewExercise struct {
	UserID      uuid.UUID
	Description string
	Duration    int
	Date        time.Time
}

// LogFilter narrows an exercise log query.
// From is inclusive, To is exclusive, zero values mean unbounded.
// Limit of 0 means no limit.
type LogFilter struct {
	UserID uuid.UUID
	From   time.Time
	To     time.Time
	Limit  int
}

// Match reports whether the entry falls inside the filter's user and date range.
func (f LogFilter) Match(e Exercise) bool {
	if e.UserID != f.UserID {
		return false
	}
	if !f.From.IsZero() && e.Date.Before(f.From) {
		return false
	}
	if !f.To.IsZero() && !e.Date.Before(f.To) {
		return false
	}
	return true
}

// Entry projects the exercise to its log representation.
func (e Exercise) Entry() ExerciseLogEntry {
	return ExerciseLogEntry{
		UserID:      e.UserID,
		Description: e.Description,
		Duration:    e.Duration,
		Date:        e.Date,
	}
}
