// FilePath: internal/models/models.catalog.go
package models

// Sensor is one entry of the sensor catalogue (the `sensor` table).
type Sensor struct {
	ID        int64  `json:"id" db:"id"`
	Descricao string `json:"descricao" db:"descricao"`
	Tipo      string `json:"tipo" db:"tipo"`
}

// Grupo identifies a facility/enclosure (the `grupo` table). It scopes
// reading queries and labels aggregation results.
type Grupo struct {
	ID       int64  `json:"id" db:"id"`
	Nome     string `json:"nome" db:"nome"`
	GrupoPai *int64 `json:"grupo_pai,omitempty" db:"grupo_pai"`
}
