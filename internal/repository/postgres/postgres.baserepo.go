// FilePath: internal/repository/postgres/postgres.baserepo.go
package postgres

import (
	"context"

	"github.com/agrosense/hub/internal/database"
	"github.com/agrosense/hub/internal/errors"
)

type PostgresBaseRepo struct {
	db database.DB
}

func (r *PostgresBaseRepo) Ping(ctx context.Context) error {
	if err := r.db.GetDB().PingContext(ctx); err != nil {
		return errors.NewConnectionError("failed to ping database", err)
	}
	return nil
}

func (r *PostgresBaseRepo) Close() error {
	if err := r.db.GetDB().Close(); err != nil {
		return errors.NewQueryError("failed to close database", err)
	}
	return nil
}
