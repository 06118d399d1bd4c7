package storages

import (
	"context"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const schema = `CREATE TABLE IF NOT EXISTS programs (
	name TEXT NOT NULL,
	id TEXT NOT NULL,
	source TEXT NOT NULL,
	program TEXT NOT NULL,
	created_at INTEGER NOT NULL,

	PRIMARY KEY(name)
) WITHOUT ROWID, STRICT;
CREATE INDEX IF NOT EXISTS programs_id ON programs(id);`

// Open opens the sqlite database at path and creates the tables.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if path == ":memory:" {
		// every connection would get its own database
		db.SetMaxOpenConns(1)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
