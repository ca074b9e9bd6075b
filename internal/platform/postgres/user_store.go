package postgres

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/schooldesk/school-api/internal/domain"
	"github.com/schooldesk/school-api/internal/store"
)

// PostgresUserStore implements the store.UserStore interface using a
// PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db *sql.DB
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the
// UserStore interface. It accepts a database connection that should be
// initialized and managed by the caller.
func NewPostgresUserStore(db *sql.DB) *PostgresUserStore {
	return &PostgresUserStore{db: db}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO users (id, username, email, hashed_password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		user.ID, user.Username, user.Email, user.HashedPassword,
		string(user.Role), user.CreatedAt, user.UpdatedAt,
	)
	return MapError(err, nil)
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return s.getOne(ctx, "id = $1", id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email = $1", email)
}

// GetByUsername implements store.UserStore.GetByUsername
func (s *PostgresUserStore) GetByUsername(
	ctx context.Context,
	username string,
) (*domain.User, error) {
	return s.getOne(ctx, "username = $1", username)
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	result, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET username = $2, email = $3, hashed_password = $4, role = $5, updated_at = $6
		WHERE id = $1`,
		user.ID, user.Username, user.Email, user.HashedPassword,
		string(user.Role), user.UpdatedAt,
	)
	if err != nil {
		return MapError(err, nil)
	}
	return checkRowsAffected(result, store.ErrUserNotFound)
}

func (s *PostgresUserStore) getOne(
	ctx context.Context,
	where string,
	arg any,
) (*domain.User, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, username, email, hashed_password, role, created_at, updated_at
		FROM users WHERE `+where, arg)

	var user domain.User
	var role string
	err := row.Scan(
		&user.ID, &user.Username, &user.Email, &user.HashedPassword,
		&role, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, MapError(err, store.ErrUserNotFound)
	}
	user.Role = domain.Role(role)
	return &user, nil
}
