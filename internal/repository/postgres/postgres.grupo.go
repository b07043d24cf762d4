// FilePath: internal/repository/postgres/postgres.grupo.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/agrosense/hub/internal/database"
	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/models"
)

type GrupoRepo struct {
	PostgresBaseRepo
}

func NewGrupoRepository(db database.DB) *GrupoRepo {
	repo := &PostgresBaseRepo{db: db}
	return &GrupoRepo{PostgresBaseRepo: *repo}
}

func (r *GrupoRepo) List(ctx context.Context) ([]*models.Grupo, error) {
	grupos := []*models.Grupo{}
	query := `SELECT id, nome, grupo_pai FROM grupo ORDER BY id`

	err := r.db.GetDB().SelectContext(ctx, &grupos, query)
	if err != nil {
		return nil, errors.NewQueryError("failed to list grupos", err)
	}
	return grupos, nil
}

func (r *GrupoRepo) Get(ctx context.Context, id int64) (*models.Grupo, error) {
	grupo := &models.Grupo{}
	query := `SELECT id, nome, grupo_pai FROM grupo WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, grupo, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("grupo not found", err)
		}
		return nil, errors.NewQueryError("failed to get grupo", err)
	}
	return grupo, nil
}
