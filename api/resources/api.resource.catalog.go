// FilePath: api/resources/api.resource.catalog.go
package resources

import (
	"net/http"

	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/internal/hubservice"
)

// CatalogHandlers serves the sensor and grupo reference catalogues
type CatalogHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary List grupos
// @Description List every facility/location grouping
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Grupo
// @Router /grupos [get]
func (h *CatalogHandlers) ListGrupos(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	grupos, err := h.hubservice.ListGrupos(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to list grupos").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, grupos)
}

// @Summary List sensors
// @Description List the sensor catalogue
// @Tags catalog
// @Produce json
// @Success 200 {array} models.Sensor
// @Router /sensors [get]
func (h *CatalogHandlers) ListSensors(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	sensors, err := h.hubservice.ListSensors(r.Context())
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to list sensors").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, sensors)
}
