package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors specific to courses.
var (
	ErrEmptyCourseTitle = errors.New("course title cannot be empty")
	ErrCourseCodeLength = errors.New("course code must be at least 2 characters")
	ErrInvalidCredits   = errors.New("credits must be at least 1")
)

// Course represents a course offering. Code is unique across all courses,
// e.g. "MATH101".
type Course struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Code      string    `json:"code"`
	Credits   int       `json:"credits"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCourse creates a Course with a fresh ID and timestamps.
func NewCourse(title, code string, credits int) (*Course, error) {
	now := time.Now().UTC()
	course := &Course{
		ID:        uuid.New(),
		Title:     title,
		Code:      code,
		Credits:   credits,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := course.Validate(); err != nil {
		return nil, err
	}

	return course, nil
}

// Validate checks if the Course has valid data.
func (c *Course) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyID
	}
	if c.Title == "" {
		return ErrEmptyCourseTitle
	}
	if len(c.Code) < 2 {
		return ErrCourseCodeLength
	}
	if c.Credits < 1 {
		return ErrInvalidCredits
	}
	return nil
}
