// FilePath: internal/aggregator/aggregator.go
package aggregator

import (
	"fmt"
	"strconv"
	"strings"

	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/internal/models"
)

// readingHistoryCap bounds the reading list carried per category.
const readingHistoryCap = 10

// Aggregate reduces a window of joined readings into per-sensor groups and
// per-category summaries. Rows must arrive newest first; the first value of
// each group is taken as the current one without re-sorting.
//
// The reduction is pure and single-pass: no I/O, no shared state. Rows with
// an unparseable valor are skipped and counted, never fatal. Category
// collisions keep the first group (in row-discovery order, which the
// descending input makes deterministic) and report the rest as conflicts.
func Aggregate(rows []models.JoinedReading) *models.DashboardData {
	groups := make(map[string]*models.SensorGroup)
	order := []string{}
	skipped := 0

	for _, row := range rows {
		value, err := strconv.ParseFloat(strings.TrimSpace(row.Valor), 64)
		if err != nil {
			nuts.L.Warnf("[Aggregator] Skipping reading %d of sensor %d: valor %q is not numeric",
				row.ID, row.Sensor, row.Valor)
			skipped++
			continue
		}

		key := groupKey(row.SensorDescricao, row.Grupo)
		group, ok := groups[key]
		if !ok {
			group = &models.SensorGroup{
				SensorID:        row.Sensor,
				SensorName:      row.SensorDescricao,
				SensorType:      row.SensorTipo,
				GrupoID:         row.Grupo,
				GrupoNome:       row.GrupoNome,
				LatestValue:     value,
				LatestTimestamp: row.DataRegistro,
				Readings:        []models.Reading{},
			}
			groups[key] = group
			order = append(order, key)
		}
		group.Readings = append(group.Readings, models.Reading{
			Value:     value,
			Timestamp: row.DataRegistro,
			DeviceID:  row.Dispositivo,
		})
	}

	result := &models.DashboardData{
		Sensors:     groups,
		SkippedRows: skipped,
	}

	// Map iteration order is randomized, so the discovery-order slice keeps
	// category assignment deterministic across runs.
	claimed := map[models.Category]string{}
	for _, key := range order {
		group := groups[key]
		if len(group.Readings) == 0 {
			continue
		}

		category, ok := Classify(group.SensorType, group.SensorName)
		if !ok {
			result.Unclassified = append(result.Unclassified, key)
			continue
		}

		if holder, taken := claimed[category]; taken {
			result.Conflicts = append(result.Conflicts, models.CategoryConflict{
				Category:  category,
				SensorKey: key,
				HeldBy:    holder,
			})
			continue
		}
		claimed[category] = key
		setMetric(&result.Metrics, category, reduce(group.Readings))
	}

	return result
}

func groupKey(descricao string, grupo int64) string {
	return fmt.Sprintf("%s_%d", descricao, grupo)
}

// reduce computes the summary for one non-empty reading list, newest first.
func reduce(readings []models.Reading) models.CategoryMetric {
	sum := 0.0
	min := readings[0].Value
	max := readings[0].Value
	for _, r := range readings {
		sum += r.Value
		if r.Value < min {
			min = r.Value
		}
		if r.Value > max {
			max = r.Value
		}
	}

	capped := readings
	if len(capped) > readingHistoryCap {
		capped = capped[:readingHistoryCap]
	}

	return models.CategoryMetric{
		Current:  readings[0].Value,
		Average:  sum / float64(len(readings)),
		Min:      min,
		Max:      max,
		Readings: capped,
	}
}

func setMetric(metrics *models.CategoryMetrics, category models.Category, metric models.CategoryMetric) {
	switch category {
	case models.CategoryTemperature:
		metrics.Temperature = metric
	case models.CategoryHumidity:
		metrics.Humidity = metric
	case models.CategoryWater:
		metrics.Water = metric
	case models.CategoryEnergy:
		metrics.Energy = metric
	case models.CategoryFeed:
		metrics.Feed = metric
	case models.CategoryWeight:
		metrics.Weight = metric
	}
}
