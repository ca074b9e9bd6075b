package school

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/platform/logger"
	"github.com/schooldesk/school-api/internal/store"
)

// StudentUpdate describes a partial update to a student. Nil fields are
// left unchanged.
type StudentUpdate struct {
	Name  *string
	Email *string
	Age   *int
}

// StudentDetail is a student with its course-id set expanded to full
// course records. Ids that no longer resolve to a course are absent from
// Courses.
type StudentDetail struct {
	Student *domain.Student
	Courses []domain.Course
}

// StudentService manages students and their course enrollments.
type StudentService struct {
	students store.StudentStore
	courses  store.CourseStore
}

// NewStudentService creates a StudentService backed by the given stores.
func NewStudentService(students store.StudentStore, courses store.CourseStore) *StudentService {
	return &StudentService{students: students, courses: courses}
}

// Create adds a new student after checking that no student carries the
// same email. Returns store.ErrStudentEmailExists on a collision.
func (s *StudentService) Create(
	ctx context.Context,
	name, email string,
	age int,
) (*domain.Student, error) {
	if _, err := s.students.GetByEmail(ctx, email); err == nil {
		return nil, store.ErrStudentEmailExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("student email lookup failed: %w", err)
	}

	student, err := domain.NewStudent(name, email, age)
	if err != nil {
		return nil, err
	}

	if err := s.students.Create(ctx, student); err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}

	logger.FromContext(ctx).Info("student created", "student_id", student.ID)
	return student, nil
}

// List returns all students with their course sets expanded.
func (s *StudentService) List(ctx context.Context) ([]StudentDetail, error) {
	students, err := s.students.List(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]StudentDetail, 0, len(students))
	for i := range students {
		detail, err := s.expand(ctx, &students[i])
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

// Get returns the student with the given id and their expanded course set,
// or store.ErrStudentNotFound.
func (s *StudentService) Get(ctx context.Context, id uuid.UUID) (*StudentDetail, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, student)
}

// Update applies a partial update. An email change runs the uniqueness
// lookup first, excluding the student's own id; updating a student's email
// to its current value is not a conflict.
func (s *StudentService) Update(
	ctx context.Context,
	id uuid.UUID,
	update StudentUpdate,
) (*StudentDetail, error) {
	if update.Email != nil {
		existing, err := s.students.GetByEmail(ctx, *update.Email)
		switch {
		case err == nil && existing.ID != id:
			return nil, ErrStudentEmailTaken
		case err != nil && !errors.Is(err, store.ErrNotFound):
			return nil, fmt.Errorf("student email lookup failed: %w", err)
		}
	}

	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		student.Name = *update.Name
	}
	if update.Email != nil {
		student.Email = *update.Email
	}
	if update.Age != nil {
		student.Age = *update.Age
	}
	student.UpdatedAt = time.Now().UTC()

	if err := student.Validate(); err != nil {
		return nil, err
	}

	if err := s.students.Update(ctx, student); err != nil {
		return nil, err
	}

	return s.expand(ctx, student)
}

// Enroll adds courseID to the student's course set. The course must exist
// at enrollment time (ErrEnrollCourseNotFound otherwise); enrolling an
// already-enrolled course is a no-op. Returns the student with the course
// set expanded.
func (s *StudentService) Enroll(
	ctx context.Context,
	studentID, courseID uuid.UUID,
) (*StudentDetail, error) {
	if _, err := s.courses.GetByID(ctx, courseID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrEnrollCourseNotFound
		}
		return nil, err
	}

	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if !student.Enrolled(courseID) {
		student.AddCourse(courseID)
		student.UpdatedAt = time.Now().UTC()
		if err := s.students.Update(ctx, student); err != nil {
			return nil, err
		}

		logger.FromContext(ctx).Info("student enrolled in course",
			"student_id", studentID,
			"course_id", courseID)
	}

	return s.expand(ctx, student)
}

// Unenroll removes courseID from the student's course set. Removing an id
// that was never enrolled is a no-op, and the course's continued existence
// is not re-verified; only presence in the set matters.
func (s *StudentService) Unenroll(
	ctx context.Context,
	studentID, courseID uuid.UUID,
) (*StudentDetail, error) {
	student, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if student.Enrolled(courseID) {
		student.RemoveCourse(courseID)
		student.UpdatedAt = time.Now().UTC()
		if err := s.students.Update(ctx, student); err != nil {
			return nil, err
		}

		logger.FromContext(ctx).Info("student removed from course",
			"student_id", studentID,
			"course_id", courseID)
	}

	return s.expand(ctx, student)
}

// Delete removes the student and their course memberships with them.
func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.students.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Info("student deleted", "student_id", id)
	return nil
}

func (s *StudentService) expand(
	ctx context.Context,
	student *domain.Student,
) (*StudentDetail, error) {
	courses, err := s.courses.GetByIDs(ctx, student.CourseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to expand course references: %w", err)
	}
	return &StudentDetail{Student: student, Courses: courses}, nil
}
