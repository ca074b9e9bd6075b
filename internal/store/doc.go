// Package store defines interfaces for data persistence operations.
// These interfaces abstract the underlying storage backend from the
// application's core logic, allowing the relationship rules to remain
// independent of specific database technologies or persistence details.
package store
