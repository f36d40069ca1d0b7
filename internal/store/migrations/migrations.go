// Package migrations applies versioned schema files in order.
//
// A source is any fs.FS holding files named NN_name.sql at its root. Each file is
// applied in its own transaction together with its schema_migrations row, so a
// failed file leaves the database at the previous version.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strconv"

	"github.com/footprint-tools/dispatch/internal/log"
)

//go:embed sql/*.sql
var embedded embed.FS

// Migration is one schema file.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// ID returns the file stem, e.g. "01_create_users".
func (m Migration) ID() string {
	return fmt.Sprintf("%02d_%s", m.Version, m.Name)
}

const schemaTable = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	applied_at TEXT NOT NULL DEFAULT (datetime('now'))
)`

var fileName = regexp.MustCompile(`^(\d+)_([A-Za-z0-9_]+)\.sql$`)

// Source returns the embedded dsp schema.
func Source() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err)
	}
	return sub
}

// Load reads every *.sql file of src, ordered by version.
func Load(src fs.FS) ([]Migration, error) {
	names, err := fs.Glob(src, "*.sql")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}

	byVersion := make(map[int]Migration, len(names))
	for _, name := range names {
		m := fileName.FindStringSubmatch(name)
		if m == nil {
			return nil, fmt.Errorf("migration %s: expected NN_name.sql", name)
		}
		version, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("migration %s: %w", name, err)
		}
		if prev, ok := byVersion[version]; ok {
			return nil, fmt.Errorf("migration %s: version %d already used by %s", name, version, prev.ID())
		}

		body, err := fs.ReadFile(src, name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		byVersion[version] = Migration{Version: version, Name: m[2], SQL: string(body)}
	}

	out := make([]Migration, 0, len(byVersion))
	for _, m := range byVersion {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Version < out[j].Version })
	return out, nil
}

// Run applies the embedded schema to db.
func Run(db *sql.DB) error {
	_, err := Apply(context.Background(), db, Source())
	return err
}

// Apply runs every migration of src newer than the database's version and returns
// how many were applied.
func Apply(ctx context.Context, db *sql.DB, src fs.FS) (int, error) {
	pending, err := Pending(ctx, db, src)
	if err != nil {
		return 0, err
	}

	for i, m := range pending {
		if err := applyOne(ctx, db, m); err != nil {
			return i, fmt.Errorf("migration %s: %w", m.ID(), err)
		}
		log.Debug("migrations: applied %s", m.ID())
	}
	return len(pending), nil
}

func applyOne(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	// No-op once committed.
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO schema_migrations (version, name) VALUES (?, ?)", m.Version, m.Name,
	); err != nil {
		return fmt.Errorf("record version: %w", err)
	}
	return tx.Commit()
}

// CurrentVersion returns the highest applied version, 0 for a fresh database.
func CurrentVersion(ctx context.Context, db *sql.DB) (int, error) {
	if _, err := db.ExecContext(ctx, schemaTable); err != nil {
		return 0, fmt.Errorf("create schema_migrations: %w", err)
	}

	var version sql.NullInt64
	if err := db.QueryRowContext(ctx, "SELECT MAX(version) FROM schema_migrations").Scan(&version); err != nil {
		return 0, fmt.Errorf("read schema version: %w", err)
	}
	return int(version.Int64), nil
}

// Pending returns the migrations of src newer than the database's version.
func Pending(ctx context.Context, db *sql.DB, src fs.FS) ([]Migration, error) {
	all, err := Load(src)
	if err != nil {
		return nil, err
	}

	current, err := CurrentVersion(ctx, db)
	if err != nil {
		return nil, err
	}

	i := sort.Search(len(all), func(i int) bool { return all[i].Version > current })
	return all[i:], nil
}
