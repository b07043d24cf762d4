// FilePath: internal/database/database.go
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/internal/config"
	"github.com/agrosense/hub/internal/errors"
)

// DB abstracts the PostgreSQL connection handed to repositories.
type DB interface {
	Close() error
	Ping(ctx context.Context) error
	GetDB() *sqlx.DB
}

// PostgresDB represents a PostgreSQL database connection
type PostgresDB struct {
	db *sqlx.DB
}

// NewPostgresDB creates a new PostgreSQL database connection. The initial
// connect is retried with bounded exponential backoff; once the pool is up,
// individual queries are never retried.
func NewPostgresDB(cfg config.PostgresConfig) (DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)

	var db *sqlx.DB
	connect := func() error {
		var err error
		db, err = sqlx.Connect("postgres", dsn)
		if err != nil {
			nuts.L.Warnf("[PostgresDB] Connect attempt failed: %v", err)
			return err
		}
		return nil
	}

	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 4)
	if err := backoff.Retry(connect, policy); err != nil {
		return nil, errors.NewConnectionError("could not reach PostgreSQL", err).
			WithDetails(map[string]interface{}{
				"host":   cfg.Host,
				"port":   cfg.Port,
				"dbname": cfg.DBName,
				"user":   cfg.User,
			})
	}

	nuts.L.Infof("[PostgresDB] Connected to %s:%d/%s", cfg.Host, cfg.Port, cfg.DBName)
	return &PostgresDB{db: db}, nil
}

// VerifyConnection pings the database with a bounded deadline.
func VerifyConnection(db DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Ping(ctx); err != nil {
		return errors.NewConnectionError("database ping failed", err)
	}
	return nil
}

func (p *PostgresDB) Close() error {
	return p.db.Close()
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	return p.db.PingContext(ctx)
}

func (p *PostgresDB) GetDB() *sqlx.DB {
	return p.db
}
