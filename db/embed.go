// Package db embeds the SQL schema migrations so production builds can
// migrate without shipping the migration files alongside the binary.
package db

import "embed"

// Migrations holds the SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
