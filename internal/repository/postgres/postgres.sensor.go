// FilePath: internal/repository/postgres/postgres.sensor.go
package postgres

import (
	"context"
	"database/sql"

	"github.com/agrosense/hub/internal/database"
	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/models"
)

type SensorRepo struct {
	PostgresBaseRepo
}

func NewSensorRepository(db database.DB) *SensorRepo {
	repo := &PostgresBaseRepo{db: db}
	return &SensorRepo{PostgresBaseRepo: *repo}
}

func (r *SensorRepo) List(ctx context.Context) ([]*models.Sensor, error) {
	sensors := []*models.Sensor{}
	query := `SELECT id, descricao, tipo FROM sensor ORDER BY id`

	err := r.db.GetDB().SelectContext(ctx, &sensors, query)
	if err != nil {
		return nil, errors.NewQueryError("failed to list sensors", err)
	}
	return sensors, nil
}

func (r *SensorRepo) Get(ctx context.Context, id int64) (*models.Sensor, error) {
	sensor := &models.Sensor{}
	query := `SELECT id, descricao, tipo FROM sensor WHERE id = $1`

	err := r.db.GetDB().GetContext(ctx, sensor, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.NewNotFoundError("sensor not found", err)
		}
		return nil, errors.NewQueryError("failed to get sensor", err)
	}
	return sensor, nil
}
