package db

import "database/sql"

// DB wraps the raw sql.DB so callers depend on this package,
// not on the driver wiring.
type DB struct {
	*sql.DB
}
