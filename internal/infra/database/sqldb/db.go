package sqldb

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"go-forecast/internal/infra/database"
)

// Open returns a lib/pq pool for the archive database. The connection is
// verified by the health check, not here.
func Open(config database.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}
