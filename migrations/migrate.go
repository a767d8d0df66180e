// Package migrations embeds the SQL schema for every supported database and
// applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Dialects accepted by Migrate. They match the storage driver names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("migration error: db is nil")
	ErrUnsupportedDialect = errors.New("migration error: unsupported dialect")
)

// goose keeps its configuration in package globals.
var mu sync.Mutex

// gooseDialects maps a dialect to the goose dialect name and the embedded
// directory holding its migrations.
var gooseDialects = map[string]struct {
	name string
	dir  string
}{
	DialectPostgres: {name: "postgres", dir: "postgres"},
	DialectSQLite:   {name: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for dialect. log receives goose
// progress output; nil silences it.
func Migrate(db *sql.DB, dialect string, log goose.Logger) (err error) {
	if db == nil {
		return ErrNilDB
	}

	d, ok := gooseDialects[dialect]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedDialect, dialect)
	}

	if log == nil {
		log = goose.NopLogger()
	}

	mu.Lock()
	defer mu.Unlock()

	// a panicking Fatalf logger must not take the process down
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("migration error: %v", r)
		}
	}()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(log)

	if err := goose.SetDialect(d.name); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
