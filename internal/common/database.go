package common

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/gen/ent"
	"github.com/priya-sndrs/InstSys-CaseStudy-sub000/internal/repository"
)

// InMemoryDSN is the shared-cache sqlite DSN batch runs use; the database
// lives only as long as the connection the pool holds open.
const InMemoryDSN = "file:instsys?mode=memory&cache=shared&_pragma=foreign_keys(1)"

// DatabaseResult bundles the opened handles with their cleanup.
type DatabaseResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool
	Cleanup func()
}

// InitDatabase opens the configured database, or an in-memory sqlite one
// when inmem is set. Non-postgres databases are migrated on open; postgres
// schemas are managed externally.
func InitDatabase(ctx context.Context, cfg *Config, inmem bool, logger *slog.Logger) (*DatabaseResult, error) {
	dsn := cfg.Database.DSN
	if inmem {
		dsn = InMemoryDSN
	}
	if dsn == "" {
		return nil, NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}

	entc, pool, err := repository.Open(ctx, repository.Config{
		DSN:              dsn,
		MaxConns:         cfg.Database.MaxConns,
		MinConns:         cfg.Database.MinConns,
		MaxConnLifetime:  cfg.Database.MaxConnLifetime,
		MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
		DialTimeout:      cfg.Database.DialTimeout,
		StatementTimeout: cfg.Database.StatementTimeout,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if !isPostgresDSN(dsn) {
		if err := repository.Migrate(ctx, entc, logger); err != nil {
			repository.Close(entc, pool, logger)
			return nil, fmt.Errorf("migrate database: %w", err)
		}
	}

	return &DatabaseResult{
		Client:  entc,
		Pool:    pool,
		Cleanup: func() { repository.Close(entc, pool, logger) },
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
