// Package migrations holds the embedded SQL schema migrations applied with
// goose at startup.
package migrations

import "embed"

// FS contains the goose migration files.
//
//go:embed *.sql
var FS embed.FS
