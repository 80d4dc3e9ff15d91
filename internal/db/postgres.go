package db

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-advisor/internal/config/configs"
)

// pingTimeout bounds the connectivity check done by NewPostgresPool.
const pingTimeout = 5 * time.Second

// NewPostgresPool creates a new pgxpool.Pool for cfg and verifies that a
// connection can be established by pinging the database. If pinging
// fails, the pool is closed and an error is returned. The caller must
// close the returned pool when it is no longer needed.
func NewPostgresPool(ctx context.Context, cfg configs.Postgres) (*pgxpool.Pool, error) {
	poolConf, err := pgxpool.ParseConfig(cfg.Addr.String())
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConf)
	if err != nil {
		return nil, err
	}

	ctxPing, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err = pool.Ping(ctxPing); err != nil {
		pool.Close()
		return nil, err
	}
	return pool, nil
}
