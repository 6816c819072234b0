// Package migrations embeds the SQL files that define the content, audit log,
// and appointment tables.
package migrations

import "embed"

// FS holds the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
