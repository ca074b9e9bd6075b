// Package postgres provides PostgreSQL-backed implementations of the data
// storage interfaces defined in internal/store, using the pgx driver via
// database/sql. Records are document-shaped rows: scalar columns plus a
// jsonb column holding each owner's course-id set. None of the unique
// fields carry a database unique index; uniqueness is enforced by the
// service layer's lookup-then-insert sequence.
package postgres
