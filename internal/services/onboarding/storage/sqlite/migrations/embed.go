package migrations

import "embed"

// FS contains embedded SQLite migrations for onboarding storage.
//
//go:embed *.sql
var FS embed.FS
