// FilePath: internal/repository/repository.go
package repository

import (
	"context"
	"time"

	"github.com/agrosense/hub/internal/models"
)

// ReadingRepository fetches the joined readings window for aggregation.
type ReadingRepository interface {
	// FetchWindow returns readings since the given instant, joined with
	// sensor and grupo metadata, newest first. A nil grupoID means all
	// locations.
	FetchWindow(ctx context.Context, since time.Time, grupoID *int64) ([]models.JoinedReading, error)
}

// SensorRepository exposes the sensor catalogue.
type SensorRepository interface {
	List(ctx context.Context) ([]*models.Sensor, error)
	Get(ctx context.Context, id int64) (*models.Sensor, error)
}

// GrupoRepository exposes the facility/location catalogue.
type GrupoRepository interface {
	List(ctx context.Context) ([]*models.Grupo, error)
	Get(ctx context.Context, id int64) (*models.Grupo, error)
}

// TableBrowser runs validated filter/sort/paginate requests over the
// whitelisted tables.
type TableBrowser interface {
	Browse(ctx context.Context, req models.TableRequest) (*models.TablePage, error)
}
