// FilePath: internal/models/models.reading.go
package models

import "time"

// JoinedReading is one row of the readings window as returned by the
// relational source: the raw reading joined with its sensor and grupo
// metadata, newest first.
//
// Valor is carried as text; the source casts the numeric column so that
// malformed values can be skipped per row instead of failing the scan.
type JoinedReading struct {
	ID              int64     `json:"id" db:"id"`
	Sensor          int64     `json:"sensor" db:"sensor"`
	SensorDescricao string    `json:"sensor_descricao" db:"sensor_descricao"`
	SensorTipo      string    `json:"sensor_tipo" db:"sensor_tipo"`
	Valor           string    `json:"valor" db:"valor"`
	Grupo           int64     `json:"grupo" db:"grupo"`
	GrupoNome       string    `json:"grupo_nome" db:"grupo_nome"`
	DataRegistro    time.Time `json:"data_registro" db:"data_registro"`
	Dispositivo     string    `json:"dispositivo" db:"dispositivo"`
}

// Reading is a single parsed measurement as carried inside a SensorGroup
// and a CategoryMetric.
type Reading struct {
	Value     float64   `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	DeviceID  string    `json:"device_id"`
}
