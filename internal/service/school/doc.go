// Package school implements the relationship rules between students,
// teachers, and courses: uniqueness of identity fields, partial updates,
// and the idempotent set-membership protocol that keeps course enrollments
// consistent.
//
// Uniqueness is enforced by a lookup followed by an insert. The two steps
// are separate storage operations, so concurrent creates with the same
// unique key can both pass the lookup; see DESIGN.md for why the race is
// kept rather than closed with a unique index.
package school
