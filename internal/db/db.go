package db

import "database/sql"

// DB wraps the shared sql.DB handle so callers depend on this package
// rather than on database/sql directly.
type DB struct {
	*sql.DB
}
