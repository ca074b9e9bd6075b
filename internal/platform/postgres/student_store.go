package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/store"
)

// PostgresStudentStore implements the store.StudentStore interface using a
// PostgreSQL database as the storage backend. The course-id set is stored
// as a jsonb array on the student row, mirroring the document shape the
// rest of the system assumes.
type PostgresStudentStore struct {
	db *sql.DB
}

// NewPostgresStudentStore creates a new PostgreSQL implementation of the
// StudentStore interface.
func NewPostgresStudentStore(db *sql.DB) *PostgresStudentStore {
	return &PostgresStudentStore{db: db}
}

// Ensure PostgresStudentStore implements store.StudentStore interface
var _ store.StudentStore = (*PostgresStudentStore)(nil)

const studentColumns = "id, name, email, age, course_ids, created_at, updated_at"

// Create implements store.StudentStore.Create
func (s *PostgresStudentStore) Create(ctx context.Context, student *domain.Student) error {
	courseIDs, err := marshalIDs(student.CourseIDs)
	if err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO students (id, name, email, age, course_ids, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		student.ID, student.Name, student.Email, student.Age,
		courseIDs, student.CreatedAt, student.UpdatedAt,
	)
	return MapError(err, nil)
}

// GetByID implements store.StudentStore.GetByID
func (s *PostgresStudentStore) GetByID(
	ctx context.Context,
	id uuid.UUID,
) (*domain.Student, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+studentColumns+" FROM students WHERE id = $1", id)
	return scanStudent(row)
}

// GetByEmail implements store.StudentStore.GetByEmail
func (s *PostgresStudentStore) GetByEmail(
	ctx context.Context,
	email string,
) (*domain.Student, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+studentColumns+" FROM students WHERE email = $1", email)
	return scanStudent(row)
}

// List implements store.StudentStore.List
func (s *PostgresStudentStore) List(ctx context.Context) ([]domain.Student, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+studentColumns+" FROM students ORDER BY created_at")
	if err != nil {
		return nil, MapError(err, nil)
	}
	defer closeRows(rows)

	students := []domain.Student{}
	for rows.Next() {
		var student domain.Student
		var courseIDs []byte
		err := rows.Scan(
			&student.ID, &student.Name, &student.Email, &student.Age,
			&courseIDs, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, MapError(err, nil)
		}
		if student.CourseIDs, err = unmarshalIDs(courseIDs); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err, nil)
	}
	return students, nil
}

// Update implements store.StudentStore.Update
func (s *PostgresStudentStore) Update(ctx context.Context, student *domain.Student) error {
	courseIDs, err := marshalIDs(student.CourseIDs)
	if err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `
		UPDATE students
		SET name = $2, email = $3, age = $4, course_ids = $5, updated_at = $6
		WHERE id = $1`,
		student.ID, student.Name, student.Email, student.Age,
		courseIDs, student.UpdatedAt,
	)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrStudentNotFound)
}

// Delete implements store.StudentStore.Delete
func (s *PostgresStudentStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrStudentNotFound)
}

func scanStudent(row *sql.Row) (*domain.Student, error) {
	var student domain.Student
	var courseIDs []byte
	err := row.Scan(
		&student.ID, &student.Name, &student.Email, &student.Age,
		&courseIDs, &student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err, store.ErrStudentNotFound)
	}
	if student.CourseIDs, err = unmarshalIDs(courseIDs); err != nil {
		return nil, err
	}
	return &student, nil
}

// marshalIDs encodes a course-id set for the jsonb column. An empty set is
// stored as an empty array, never NULL.
func marshalIDs(ids []uuid.UUID) ([]byte, error) {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to encode course ids: %w", err)
	}
	return data, nil
}

func unmarshalIDs(data []byte) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	if len(data) == 0 {
		return ids, nil
	}
	if err := json.Unmarshal(data, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode course ids: %w", err)
	}
	return ids, nil
}
