// FilePath: internal/hubservice/hubservice.tables.go
package hubservice

import (
	"context"

	"github.com/agrosense/hub/internal/models"
)

// BrowseTable runs one validated filter/sort/paginate request. Either the
// full page comes back or a single structured error; there is no
// partial-rows-with-error hybrid.
func (s *HubService) BrowseTable(ctx context.Context, req models.TableRequest) (*models.TablePage, error) {
	return s.Tables.Browse(ctx, req)
}

// ListGrupos returns the facility catalogue.
func (s *HubService) ListGrupos(ctx context.Context) ([]*models.Grupo, error) {
	return s.Grupos.List(ctx)
}

// ListSensors returns the sensor catalogue.
func (s *HubService) ListSensors(ctx context.Context) ([]*models.Sensor, error) {
	return s.Sensors.List(ctx)
}
