package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite activity archive and makes sure its schema exists.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// Every connection to :memory: is a separate database.
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	log.Printf("[db] activity archive ready at %s", dsn)
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS activities(
  id      TEXT PRIMARY KEY,          -- uuid v7, sorts by creation
  ts      TEXT NOT NULL,             -- RFC3339 UTC
  action  TEXT NOT NULL,
  type    TEXT NOT NULL CHECK (type IN ('product','user','stock')),
  details TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_activities_ts   ON activities(ts);
CREATE INDEX IF NOT EXISTS idx_activities_type ON activities(type);
`
	_, err := db.Exec(schema)
	return err
}
