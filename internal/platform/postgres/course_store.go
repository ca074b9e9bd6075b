package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/store"
)

// PostgresCourseStore implements the store.CourseStore interface using a
// PostgreSQL database as the storage backend.
type PostgresCourseStore struct {
	db *sql.DB
}

// NewPostgresCourseStore creates a new PostgreSQL implementation of the
// CourseStore interface.
func NewPostgresCourseStore(db *sql.DB) *PostgresCourseStore {
	return &PostgresCourseStore{db: db}
}

// Ensure PostgresCourseStore implements store.CourseStore interface
var _ store.CourseStore = (*PostgresCourseStore)(nil)

const courseColumns = "id, title, code, credits, created_at, updated_at"

// Create implements store.CourseStore.Create
func (s *PostgresCourseStore) Create(ctx context.Context, course *domain.Course) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO courses (id, title, code, credits, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		course.ID, course.Title, course.Code, course.Credits,
		course.CreatedAt, course.UpdatedAt,
	)
	return MapError(err, nil)
}

// GetByID implements store.CourseStore.GetByID
func (s *PostgresCourseStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Course, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+courseColumns+" FROM courses WHERE id = $1", id)
	return scanCourse(row)
}

// GetByCode implements store.CourseStore.GetByCode
func (s *PostgresCourseStore) GetByCode(ctx context.Context, code string) (*domain.Course, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+courseColumns+" FROM courses WHERE code = $1", code)
	return scanCourse(row)
}

// GetByIDs implements store.CourseStore.GetByIDs. Ids that do not resolve
// are skipped, which is how dangling references in course sets disappear
// from expanded reads.
func (s *PostgresCourseStore) GetByIDs(
	ctx context.Context,
	ids []uuid.UUID,
) ([]domain.Course, error) {
	if len(ids) == 0 {
		return []domain.Course{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := "SELECT " + courseColumns + " FROM courses WHERE id IN (" +
		strings.Join(placeholders, ", ") + ")"
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, MapError(err, nil)
	}
	defer closeRows(rows)

	return collectCourses(rows)
}

// List implements store.CourseStore.List
func (s *PostgresCourseStore) List(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+courseColumns+" FROM courses ORDER BY created_at")
	if err != nil {
		return nil, MapError(err, nil)
	}
	defer closeRows(rows)

	return collectCourses(rows)
}

// Update implements store.CourseStore.Update
func (s *PostgresCourseStore) Update(ctx context.Context, course *domain.Course) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE courses
		SET title = $2, code = $3, credits = $4, updated_at = $5
		WHERE id = $1`,
		course.ID, course.Title, course.Code, course.Credits, course.UpdatedAt,
	)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrCourseNotFound)
}

// Delete implements store.CourseStore.Delete. Student and teacher course
// sets referencing the course are deliberately left untouched.
func (s *PostgresCourseStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM courses WHERE id = $1", id)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrCourseNotFound)
}

func scanCourse(row *sql.Row) (*domain.Course, error) {
	var course domain.Course
	err := row.Scan(
		&course.ID, &course.Title, &course.Code, &course.Credits,
		&course.CreatedAt, &course.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err, store.ErrCourseNotFound)
	}
	return &course, nil
}

func collectCourses(rows *sql.Rows) ([]domain.Course, error) {
	courses := []domain.Course{}
	for rows.Next() {
		var course domain.Course
		err := rows.Scan(
			&course.ID, &course.Title, &course.Code, &course.Credits,
			&course.CreatedAt, &course.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err, nil)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, nil)
	}
	return courses, nil
}
