// FilePath: api/resources/resources.go
package resources

import (
	"encoding/json"
	"net/http"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/hubservice"
)

// Resources holds all HTTP resource handlers
type Resources struct {
	Dashboard *DashboardHandlers
	Tables    *TableHandlers
	Catalog   *CatalogHandlers
}

// NewResources creates a new Resources instance. defaultWindow is the
// aggregation window used when the caller does not pass one.
func NewResources(svc *hubservice.HubService, defaultWindow time.Duration) *Resources {
	return &Resources{
		Dashboard: &DashboardHandlers{hubservice: svc, defaultWindow: defaultWindow},
		Tables:    &TableHandlers{hubservice: svc},
		Catalog:   &CatalogHandlers{hubservice: svc},
	}
}

// Helper functions

func respondWithError(w http.ResponseWriter, err *errors.APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.Code)
	json.NewEncoder(w).Encode(err)
	nuts.L.Errorf("[API] %s", err.Error())
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

// asAPIError keeps structured errors intact and wraps anything else.
func asAPIError(err error, fallback string) *errors.APIError {
	if apiErr, ok := err.(*errors.APIError); ok {
		return apiErr
	}
	return errors.NewInternalError(fallback, err)
}
