// FilePath: api/resources/api.resource.dashboard.go
package resources

import (
	"net/http"
	"strconv"
	"time"

	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/hubservice"
)

// DashboardHandlers encapsulates the aggregation-related HTTP handlers
type DashboardHandlers struct {
	hubservice    *hubservice.HubService
	defaultWindow time.Duration
}

// @Summary Get the aggregated dashboard
// @Description Aggregate the recent readings window into per-category summaries
// @Tags dashboard
// @Produce json
// @Param grupo query int false "Grupo (location) ID to scope the window"
// @Param window query string false "Window duration (Go format, e.g. 24h)"
// @Success 200 {object} models.DashboardData
// @Failure 400 {object} errors.APIError
// @Router /dashboard [get]
func (h *DashboardHandlers) GetDashboard(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)
	query := r.URL.Query()

	var grupoID *int64
	if raw := query.Get("grupo"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			respondWithError(w, errors.NewValidationError("grupo must be an integer", err).WithRequestID(requestID))
			return
		}
		grupoID = &id
	}

	window := h.defaultWindow
	if raw := query.Get("window"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil || parsed <= 0 {
			respondWithError(w, errors.NewValidationError("window must be a positive duration", err).WithRequestID(requestID))
			return
		}
		window = parsed
	}

	data, err := h.hubservice.Dashboard(r.Context(), window, grupoID)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to aggregate dashboard").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, data)
}
