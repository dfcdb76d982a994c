// Package schemas provides embedded SQL migration files.
package schemas

import "embed"

// Migrations contains all SQL migration files.
// Each file holds one statement that works on both MySQL and SQLite and can be applied repeatedly.
//
//go:embed migrations/*.sql
var Migrations embed.FS
