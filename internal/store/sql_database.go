package store

import (
	"database/sql"

	"github.com/futuristic/perceptronx/internal/logger"
	"github.com/futuristic/perceptronx/migrations"
)

// DB wraps the raw SQL connection together with the driver it was opened
// with, so repositories and migrations can branch on the dialect.
type DB struct {
	*sql.DB
	driver string
	logger *logger.Logger
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
