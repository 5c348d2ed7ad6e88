package store

import (
	"database/sql"

	"github.com/MKhiriev/go-case-sync/internal/logger"
	"github.com/MKhiriev/go-case-sync/migrations"
)

// DB wraps the local SQLite connection.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies the embedded schema migrations and logs the resulting
// schema version.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		return err
	}

	version, err := migrations.Version(db.DB)
	if err != nil {
		return err
	}
	db.logger.Info().Int64("schema_version", version).Msg("change queue schema is up to date")
	return nil
}
