package migrations

import "github.com/uptrace/bun/migrate"

// Migrations holds every schema and data migration, named after the file that registers it.
var Migrations = migrate.NewMigrations()
