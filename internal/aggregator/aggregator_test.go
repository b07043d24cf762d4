package aggregator

import (
	"fmt"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/agrosense/hub/internal/models"
)

func mkRow(sensor int64, desc, tipo, valor string, grupo int64, ts time.Time) models.JoinedReading {
	return models.JoinedReading{
		ID:              sensor*1000 + ts.Unix()%1000,
		Sensor:          sensor,
		SensorDescricao: desc,
		SensorTipo:      tipo,
		Valor:           valor,
		Grupo:           grupo,
		GrupoNome:       "Galpao A",
		DataRegistro:    ts,
		Dispositivo:     "esp32-01",
	}
}

func approx(got, want float64) bool {
	return math.Abs(got-want) < 0.01
}

// Scenario: 3 temperature readings and 2 humidity readings, newest first.
func TestAggregateScenario(t *testing.T) {
	now := time.Now()
	rows := []models.JoinedReading{
		mkRow(1, "Temperatura Galpao A", "Celsius", "22.5", 1, now),
		mkRow(2, "Umidade Ar", "Percentual", "65", 1, now.Add(-30*time.Second)),
		mkRow(1, "Temperatura Galpao A", "Celsius", "21.0", 1, now.Add(-1*time.Minute)),
		mkRow(2, "Umidade Ar", "Percentual", "68", 1, now.Add(-90*time.Second)),
		mkRow(1, "Temperatura Galpao A", "Celsius", "23.0", 1, now.Add(-2*time.Minute)),
	}

	data := Aggregate(rows)

	temp := data.Metrics.Temperature
	if temp.Current != 22.5 {
		t.Errorf("temperature current = %v, want 22.5", temp.Current)
	}
	if !approx(temp.Average, 22.17) {
		t.Errorf("temperature average = %v, want ~22.17", temp.Average)
	}
	if temp.Min != 21.0 || temp.Max != 23.0 {
		t.Errorf("temperature min/max = %v/%v, want 21/23", temp.Min, temp.Max)
	}
	if len(temp.Readings) != 3 {
		t.Errorf("temperature readings = %d, want 3", len(temp.Readings))
	}

	hum := data.Metrics.Humidity
	if hum.Current != 65 || !approx(hum.Average, 66.5) || hum.Min != 65 || hum.Max != 68 {
		t.Errorf("humidity = %+v, want current 65 avg 66.5 min 65 max 68", hum)
	}
	if len(hum.Readings) != 2 {
		t.Errorf("humidity readings = %d, want 2", len(hum.Readings))
	}

	zero := models.CategoryMetric{}
	for name, metric := range map[string]models.CategoryMetric{
		"water":  data.Metrics.Water,
		"energy": data.Metrics.Energy,
		"feed":   data.Metrics.Feed,
		"weight": data.Metrics.Weight,
	} {
		if metric.Current != zero.Current || metric.Average != zero.Average ||
			metric.Min != zero.Min || metric.Max != zero.Max || len(metric.Readings) != 0 {
			t.Errorf("%s should stay at zero defaults, got %+v", name, metric)
		}
	}

	if len(data.Sensors) != 2 {
		t.Errorf("sensors = %d, want 2", len(data.Sensors))
	}
	if len(data.Conflicts) != 0 || len(data.Unclassified) != 0 || data.SkippedRows != 0 {
		t.Errorf("unexpected conflicts/gaps/skips: %+v", data)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	data := Aggregate(nil)

	if len(data.Sensors) != 0 {
		t.Errorf("sensors = %d, want 0", len(data.Sensors))
	}
	if data.Metrics.Temperature.Current != 0 || data.Metrics.Weight.Max != 0 {
		t.Errorf("categories should be zero-valued, got %+v", data.Metrics)
	}
}

func TestReadingCap(t *testing.T) {
	now := time.Now()
	rows := make([]models.JoinedReading, 0, 50)
	for i := 0; i < 50; i++ {
		rows = append(rows, mkRow(1, "Temperatura Galpao A", "Celsius",
			fmt.Sprintf("%d", 100-i), 1, now.Add(-time.Duration(i)*time.Minute)))
	}

	data := Aggregate(rows)

	temp := data.Metrics.Temperature
	if len(temp.Readings) != 10 {
		t.Fatalf("capped readings = %d, want 10", len(temp.Readings))
	}
	// The 10 most recent readings are the first 10 values, 100..91.
	for i, r := range temp.Readings {
		if want := float64(100 - i); r.Value != want {
			t.Errorf("reading %d = %v, want %v", i, r.Value, want)
		}
	}
	// The group itself keeps the full window.
	group := data.Sensors["Temperatura Galpao A_1"]
	if group == nil || len(group.Readings) != 50 {
		t.Errorf("group should keep 50 readings, got %+v", group)
	}
}

func TestAggregateSkipsNonNumericValues(t *testing.T) {
	now := time.Now()
	rows := []models.JoinedReading{
		mkRow(1, "Temperatura Galpao A", "Celsius", "22.5", 1, now),
		mkRow(1, "Temperatura Galpao A", "Celsius", "offline", 1, now.Add(-time.Minute)),
		mkRow(1, "Temperatura Galpao A", "Celsius", "21.5", 1, now.Add(-2*time.Minute)),
	}

	data := Aggregate(rows)

	if data.SkippedRows != 1 {
		t.Errorf("skipped rows = %d, want 1", data.SkippedRows)
	}
	temp := data.Metrics.Temperature
	if temp.Current != 22.5 || len(temp.Readings) != 2 {
		t.Errorf("bad row should not poison the group: %+v", temp)
	}
}

func TestCategoryConflictKeepsFirstGroup(t *testing.T) {
	now := time.Now()
	rows := []models.JoinedReading{
		mkRow(1, "Temperatura Galpao A", "Celsius", "22.0", 1, now),
		mkRow(3, "Temperatura Maternidade", "Celsius", "30.0", 1, now.Add(-time.Second)),
	}

	data := Aggregate(rows)

	if data.Metrics.Temperature.Current != 22.0 {
		t.Errorf("first-discovered group should hold the slot, got current %v",
			data.Metrics.Temperature.Current)
	}
	if len(data.Conflicts) != 1 {
		t.Fatalf("conflicts = %d, want 1", len(data.Conflicts))
	}
	c := data.Conflicts[0]
	if c.Category != models.CategoryTemperature ||
		c.SensorKey != "Temperatura Maternidade_1" ||
		c.HeldBy != "Temperatura Galpao A_1" {
		t.Errorf("unexpected conflict: %+v", c)
	}
}

func TestAggregateDeterminism(t *testing.T) {
	now := time.Now()
	rows := []models.JoinedReading{}
	for i := 0; i < 8; i++ {
		rows = append(rows,
			mkRow(int64(i), fmt.Sprintf("Temperatura Setor %d", i), "Celsius",
				fmt.Sprintf("%d.5", 20+i), 1, now.Add(-time.Duration(i)*time.Second)))
	}

	first := Aggregate(rows)
	for run := 0; run < 20; run++ {
		again := Aggregate(rows)
		if !reflect.DeepEqual(first.Metrics, again.Metrics) {
			t.Fatalf("metrics differ between runs")
		}
		if !reflect.DeepEqual(first.Conflicts, again.Conflicts) {
			t.Fatalf("conflicts differ between runs")
		}
	}
}

func TestUnclassifiedGroupStaysOutOfMetrics(t *testing.T) {
	now := time.Now()
	rows := []models.JoinedReading{
		mkRow(9, "Pressao Silo", "Bar", "1.8", 2, now),
	}

	data := Aggregate(rows)

	if len(data.Unclassified) != 1 || data.Unclassified[0] != "Pressao Silo_2" {
		t.Errorf("unclassified = %v, want [Pressao Silo_2]", data.Unclassified)
	}
	if _, ok := data.Sensors["Pressao Silo_2"]; !ok {
		t.Errorf("unclassified group must still appear in sensors")
	}
	if data.Metrics.Temperature.Current != 0 {
		t.Errorf("no metric slot should be populated")
	}
}
