package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
)

// Storages aggregates every repository the services depend on, plus the
// transactor shared by them.
type Storages struct {
	UserRepository     UserRepository
	PlaylistRepository PlaylistRepository
	Transactor         Transactor

	db *DB
}

// NewStorages connects to the configured database, applies migrations and
// wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch cfg.DB.Driver {
	case config.DriverPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		db.Close()
		return nil, err
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, log),
		PlaylistRepository: NewPlaylistRepository(db, log),
		Transactor:         db,
		db:                 db,
	}
}

// Close releases the database connection pool.
func (s *Storages) Close() error {
	if s == nil || s.db == nil {
		return nil
	}

	return s.db.Close()
}
