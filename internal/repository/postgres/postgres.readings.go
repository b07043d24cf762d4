// FilePath: internal/repository/postgres/postgres.readings.go
package postgres

import (
	"context"
	"time"

	"github.com/agrosense/hub/internal/database"
	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/models"
)

type ReadingRepo struct {
	PostgresBaseRepo
}

func NewReadingRepository(db database.DB) *ReadingRepo {
	repo := &PostgresBaseRepo{db: db}
	return &ReadingRepo{PostgresBaseRepo: *repo}
}

// FetchWindow pulls the joined readings window, newest first. valor is cast
// to text so one malformed value fails its row in the aggregator instead of
// failing the scan; dispositivo is coalesced because the column is nullable.
func (r *ReadingRepo) FetchWindow(ctx context.Context, since time.Time, grupoID *int64) ([]models.JoinedReading, error) {
	readings := []models.JoinedReading{}

	query := `
		SELECT i.id,
			i.sensor,
			s.descricao AS sensor_descricao,
			s.tipo AS sensor_tipo,
			CAST(i.valor AS TEXT) AS valor,
			i.grupo,
			g.nome AS grupo_nome,
			i.data_registro,
			COALESCE(i.dispositivo, '') AS dispositivo
		FROM informacoes i
		JOIN sensor s ON s.id = i.sensor
		JOIN grupo g ON g.id = i.grupo
		WHERE i.data_registro >= $1`
	args := []interface{}{since}

	if grupoID != nil {
		query += ` AND i.grupo = $2`
		args = append(args, *grupoID)
	}
	query += ` ORDER BY i.data_registro DESC`

	err := r.db.GetDB().SelectContext(ctx, &readings, query, args...)
	if err != nil {
		return nil, errors.NewQueryError("failed to fetch readings window", err)
	}
	return readings, nil
}
