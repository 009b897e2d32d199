package migrations

import "embed"

// FS contains embedded SQLite migrations for carrier demo storage.
//
//go:embed *.sql
var FS embed.FS
