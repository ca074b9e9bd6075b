package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/store"
)

// PostgresTeacherStore implements the store.TeacherStore interface using a
// PostgreSQL database as the storage backend, with the same jsonb
// course-id column as the student store.
type PostgresTeacherStore struct {
	db *sql.DB
}

// NewPostgresTeacherStore creates a new PostgreSQL implementation of the
// TeacherStore interface.
func NewPostgresTeacherStore(db *sql.DB) *PostgresTeacherStore {
	return &PostgresTeacherStore{db: db}
}

// Ensure PostgresTeacherStore implements store.TeacherStore interface
var _ store.TeacherStore = (*PostgresTeacherStore)(nil)

const teacherColumns = "id, name, email, course_ids, created_at, updated_at"

// Create implements store.TeacherStore.Create
func (s *PostgresTeacherStore) Create(ctx context.Context, teacher *domain.Teacher) error {
	courseIDs, err := marshalIDs(teacher.CourseIDs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO teachers (id, name, email, course_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		teacher.ID, teacher.Name, teacher.Email,
		courseIDs, teacher.CreatedAt, teacher.UpdatedAt,
	)
	return MapError(err, nil)
}

// GetByID implements store.TeacherStore.GetByID
func (s *PostgresTeacherStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Teacher, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+teacherColumns+" FROM teachers WHERE id = $1", id)
	return scanTeacher(row)
}

// GetByEmail implements store.TeacherStore.GetByEmail
func (s *PostgresTeacherStore) GetByEmail(
	ctx context.Context,
	email string,
) (*domain.Teacher, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+teacherColumns+" FROM teachers WHERE email = $1", email)
	return scanTeacher(row)
}

// List implements store.TeacherStore.List
func (s *PostgresTeacherStore) List(ctx context.Context) ([]domain.Teacher, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+teacherColumns+" FROM teachers ORDER BY created_at")
	if err != nil {
		return nil, MapError(err, nil)
	}
	defer closeRows(rows)

	teachers := []domain.Teacher{}
	for rows.Next() {
		var teacher domain.Teacher
		var courseIDs []byte
		err := rows.Scan(
			&teacher.ID, &teacher.Name, &teacher.Email,
			&courseIDs, &teacher.CreatedAt, &teacher.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err, nil)
		}
		if teacher.CourseIDs, err = unmarshalIDs(courseIDs); err != nil {
			return nil, err
		}
		teachers = append(teachers, teacher)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, nil)
	}
	return teachers, nil
}

// Update implements store.TeacherStore.Update
func (s *PostgresTeacherStore) Update(ctx context.Context, teacher *domain.Teacher) error {
	courseIDs, err := marshalIDs(teacher.CourseIDs)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE teachers
		SET name = $2, email = $3, course_ids = $4, updated_at = $5
		WHERE id = $1`,
		teacher.ID, teacher.Name, teacher.Email, courseIDs, teacher.UpdatedAt,
	)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrTeacherNotFound)
}

// Delete implements store.TeacherStore.Delete
func (s *PostgresTeacherStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM teachers WHERE id = $1", id)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrTeacherNotFound)
}

func scanTeacher(row *sql.Row) (*domain.Teacher, error) {
	var teacher domain.Teacher
	var courseIDs []byte
	err := row.Scan(
		&teacher.ID, &teacher.Name, &teacher.Email,
		&courseIDs, &teacher.CreatedAt, &teacher.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err, store.ErrTeacherNotFound)
	}
	if teacher.CourseIDs, err = unmarshalIDs(courseIDs); err != nil {
		return nil, err
	}
	return &teacher, nil
}
