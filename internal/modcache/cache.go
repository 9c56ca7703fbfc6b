// Package modcache is a read-only (to the evaluator), disk-backed
// cache of resolved nominal super-type chains and projection results
// (spec §5: "Module caches — read-only to the evaluator, mutated by
// the driver before evaluation begins"). The driver populates it
// before an evaluation run with Cache.Put; Cache.Lookup is the read
// path. The evaluator holds the handle on its Context and calls
// neither.
package modcache

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Cache is a handle to a sqlite-backed cache file.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if absent) the cache database at path. An empty
// path opens an in-memory cache, useful for tests and for drivers that
// don't want cross-run persistence.
func Open(path string) (*Cache, error) {
	dsn := path
	if dsn == "" {
		dsn = ":memory:"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("modcache: open %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS resolved (
		key TEXT PRIMARY KEY,
		type_string TEXT NOT NULL,
		member TEXT NOT NULL,
		result TEXT NOT NULL
	)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("modcache: migrate: %w", err)
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

// Lookup returns the cached reduced-type string for (typeString,
// member), if the driver populated one. member is "" for a plain
// super-type-chain entry.
func (c *Cache) Lookup(typeString, member string) (string, bool) {
	if c == nil || c.db == nil {
		return "", false
	}
	row := c.db.QueryRow(`SELECT result FROM resolved WHERE key = ?`, Key(typeString, member))
	var result string
	if err := row.Scan(&result); err != nil {
		return "", false
	}
	return result, true
}

// Put records a resolved entry. Exposed for the driver (the evaluator
// itself never calls this — see the package doc comment).
func (c *Cache) Put(typeString, member, result string) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO resolved (key, type_string, member, result) VALUES (?, ?, ?, ?)`,
		Key(typeString, member), typeString, member, result,
	)
	return err
}
