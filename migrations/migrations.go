package migrations

import "embed"

// FS — SQL-миграции goose, их применяет internal/pkg/postgres.Migrate.
//
//go:embed *.sql
var FS embed.FS
