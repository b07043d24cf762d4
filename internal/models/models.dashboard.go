// FilePath: internal/models/models.dashboard.go
package models

import "time"

type Category string

const (
	CategoryTemperature Category = "temperature"
	CategoryHumidity    Category = "humidity"
	CategoryWater       Category = "water"
	CategoryEnergy      Category = "energy"
	CategoryFeed        Category = "feed"
	CategoryWeight      Category = "weight"
)

// SensorGroup holds every reading of one sensor at one grupo for the
// aggregated window. Readings stay in source order (newest first).
type SensorGroup struct {
	SensorID        int64     `json:"sensor_id"`
	SensorName      string    `json:"sensor_name"`
	SensorType      string    `json:"sensor_type"`
	GrupoID         int64     `json:"grupo_id"`
	GrupoNome       string    `json:"grupo_nome"`
	LatestValue     float64   `json:"latest_value"`
	LatestTimestamp time.Time `json:"latest_timestamp"`
	Readings        []Reading `json:"readings"`
}

// CategoryMetric is the reduced summary for one category. A category
// without a matching sensor group keeps its zero defaults.
type CategoryMetric struct {
	Current  float64   `json:"current"`
	Average  float64   `json:"average"`
	Min      float64   `json:"min"`
	Max      float64   `json:"max"`
	Readings []Reading `json:"readings"`
}

// CategoryMetrics holds the six fixed category slots.
type CategoryMetrics struct {
	Temperature CategoryMetric `json:"temperature"`
	Humidity    CategoryMetric `json:"humidity"`
	Water       CategoryMetric `json:"water"`
	Energy      CategoryMetric `json:"energy"`
	Feed        CategoryMetric `json:"feed"`
	Weight      CategoryMetric `json:"weight"`
}

// CategoryConflict reports a sensor group that classified into a category
// slot already claimed by another group. The slot keeps the first group.
type CategoryConflict struct {
	Category  Category `json:"category"`
	SensorKey string   `json:"sensor_key"`
	HeldBy    string   `json:"held_by"`
}

// DashboardData is the full aggregation result for one window.
type DashboardData struct {
	Sensors      map[string]*SensorGroup `json:"sensors"`
	Metrics      CategoryMetrics         `json:"metrics"`
	Conflicts    []CategoryConflict      `json:"conflicts,omitempty"`
	Unclassified []string                `json:"unclassified,omitempty"`
	SkippedRows  int                     `json:"skipped_rows,omitempty"`
}
