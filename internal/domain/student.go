package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Validation errors specific to students.
var (
	ErrNameTooShort = errors.New("name must be at least 2 characters")
	ErrInvalidAge   = errors.New("age must be between 1 and 120")
)

// Student represents an enrolled student. CourseIDs is the membership set of
// the courses the student takes: no duplicates, order not significant. The
// ids are owned here; there is no separate enrollment record.
type Student struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	Age       int         `json:"age"`
	CourseIDs []uuid.UUID `json:"courses"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewStudent creates a Student with a fresh ID, empty course set, and
// timestamps.
func NewStudent(name, email string, age int) (*Student, error) {
	now := time.Now().UTC()
	student := &Student{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		Age:       age,
		CourseIDs: []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := student.Validate(); err != nil {
		return nil, err
	}

	return student, nil
}

// Validate checks if the Student has valid data.
func (s *Student) Validate() error {
	if s.ID == uuid.Nil {
		return ErrEmptyID
	}
	if len(s.Name) < 2 {
		return ErrNameTooShort
	}
	if !ValidEmail(s.Email) {
		return ErrInvalidEmail
	}
	if s.Age <= 0 || s.Age > 120 {
		return ErrInvalidAge
	}
	return nil
}

// Enrolled reports whether the student's course set contains courseID.
func (s *Student) Enrolled(courseID uuid.UUID) bool {
	return containsID(s.CourseIDs, courseID)
}

// AddCourse adds courseID to the course set. Adding an id that is already
// present is a no-op, preserving set semantics.
func (s *Student) AddCourse(courseID uuid.UUID) {
	if !containsID(s.CourseIDs, courseID) {
		s.CourseIDs = append(s.CourseIDs, courseID)
	}
}

// RemoveCourse removes courseID from the course set. Removing an id that is
// not present is a no-op.
func (s *Student) RemoveCourse(courseID uuid.UUID) {
	s.CourseIDs = removeID(s.CourseIDs, courseID)
}

func containsID(ids []uuid.UUID, id uuid.UUID) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	out := ids[:0]
	for _, existing := range ids {
		if existing != id {
			out = append(out, existing)
		}
	}
	return out
}
