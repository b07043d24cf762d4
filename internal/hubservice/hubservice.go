package hubservice

import (
	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/monitoring"
	"github.com/agrosense/hub/internal/repository"
)

// HubService contains all repositories and service-wide dependencies
type HubService struct {
	Readings   repository.ReadingRepository
	Sensors    repository.SensorRepository
	Grupos     repository.GrupoRepository
	Tables     repository.TableBrowser
	Monitoring *monitoring.Service
}

// New creates a new HubService instance
func New(
	readings repository.ReadingRepository,
	sensors repository.SensorRepository,
	grupos repository.GrupoRepository,
	tables repository.TableBrowser,
	monitor *monitoring.Service,
) *HubService {
	return &HubService{
		Readings:   readings,
		Sensors:    sensors,
		Grupos:     grupos,
		Tables:     tables,
		Monitoring: monitor,
	}
}

// Validate checks if all required dependencies are initialized
func (s *HubService) Validate() error {
	if s.Readings == nil {
		return ErrMissingRepository("readings")
	}
	if s.Sensors == nil {
		return ErrMissingRepository("sensors")
	}
	if s.Grupos == nil {
		return ErrMissingRepository("grupos")
	}
	if s.Tables == nil {
		return ErrMissingRepository("tables")
	}
	if s.Monitoring == nil {
		return ErrMissingRepository("monitoring")
	}
	return nil
}

func ErrMissingRepository(name string) error {
	return errors.NewInternalError("missing repository: "+name, nil)
}
