// FilePath: internal/hubservice/hubservice.dashboard.go
package hubservice

import (
	"context"
	"time"

	"github.com/agrosense/hub/internal/aggregator"
	"github.com/agrosense/hub/internal/models"
)

// Dashboard fetches the readings window ending now and aggregates it. The
// grupo scope is an explicit parameter on every call; there is no ambient
// "selected location" state. Callers decide polling cadence themselves.
func (s *HubService) Dashboard(ctx context.Context, window time.Duration, grupoID *int64) (*models.DashboardData, error) {
	since := time.Now().Add(-window)

	rows, err := s.Readings.FetchWindow(ctx, since, grupoID)
	if err != nil {
		return nil, err
	}

	data := aggregator.Aggregate(rows)

	s.Monitoring.RecordSkippedReadings(data.SkippedRows)
	for _, key := range data.Unclassified {
		s.Monitoring.RecordClassificationGap(key)
	}
	for _, conflict := range data.Conflicts {
		s.Monitoring.RecordCategoryConflict(string(conflict.Category), conflict.SensorKey)
	}

	return data, nil
}
