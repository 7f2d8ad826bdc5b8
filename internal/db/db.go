package db

import "database/sql"

// DB wraps database/sql so store packages depend on one local type.
type DB struct {
	*sql.DB
}
