package domain

import (
	"time"

	"github.com/google/uuid"
)

// Teacher represents a member of the teaching staff. CourseIDs is the set of
// courses the teacher is assigned to, with the same set semantics as
// Student.CourseIDs.
type Teacher struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	CourseIDs []uuid.UUID `json:"courses"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// NewTeacher creates a Teacher with a fresh ID, empty course set, and
// timestamps.
func NewTeacher(name, email string) (*Teacher, error) {
	now := time.Now().UTC()
	teacher := &Teacher{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CourseIDs: []uuid.UUID{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := teacher.Validate(); err != nil {
		return nil, err
	}

	return teacher, nil
}

// Validate checks if the Teacher has valid data.
func (t *Teacher) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyID
	}
	if len(t.Name) < 2 {
		return ErrNameTooShort
	}
	if !ValidEmail(t.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Assigned reports whether the teacher's course set contains courseID.
func (t *Teacher) Assigned(courseID uuid.UUID) bool {
	return containsID(t.CourseIDs, courseID)
}

// AddCourse adds courseID to the course set, absorbing duplicates.
func (t *Teacher) AddCourse(courseID uuid.UUID) {
	if !containsID(t.CourseIDs, courseID) {
		t.CourseIDs = append(t.CourseIDs, courseID)
	}
}

// RemoveCourse removes courseID from the course set if present.
func (t *Teacher) RemoveCourse(courseID uuid.UUID) {
	t.CourseIDs = removeID(t.CourseIDs, courseID)
}
