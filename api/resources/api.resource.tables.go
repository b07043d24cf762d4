// FilePath: api/resources/api.resource.tables.go
package resources

import (
	"net/http"

	"github.com/gorilla/schema"
	nuts "github.com/vaudience/go-nuts"

	"github.com/agrosense/hub/internal/errors"
	"github.com/agrosense/hub/internal/hubservice"
	"github.com/agrosense/hub/internal/models"
	"github.com/agrosense/hub/internal/query"
)

var tableRequestDecoder = func() *schema.Decoder {
	d := schema.NewDecoder()
	d.IgnoreUnknownKeys(true)
	return d
}()

// TableHandlers encapsulates the generic table browser HTTP handlers
type TableHandlers struct {
	hubservice *hubservice.HubService
}

// @Summary Browse a whitelisted table
// @Description Filter, sort and paginate over one of the whitelisted tables
// @Tags tables
// @Produce json
// @Param tableName query string true "Table name (informacoes, sensor, grupo)"
// @Param page query int false "Page number (1-based)"
// @Param pageSize query int false "Rows per page"
// @Param filter query string false "Free-text filter applied across all columns"
// @Param sortBy query string false "Sort column; unknown columns are ignored"
// @Param sortOrder query string false "ASC or DESC"
// @Success 200 {object} models.TablePage
// @Failure 400 {object} errors.APIError
// @Router /tables [get]
func (h *TableHandlers) BrowseTable(w http.ResponseWriter, r *http.Request) {
	requestID := nuts.NID("req", 12)

	var req models.TableRequest
	if err := tableRequestDecoder.Decode(&req, r.URL.Query()); err != nil {
		respondWithError(w, errors.NewValidationError("malformed query parameters", err).WithRequestID(requestID))
		return
	}
	if req.TableName == "" {
		respondWithError(w, errors.NewValidationError("tableName is required", nil).
			WithDetails(map[string]interface{}{"allowed": query.AllowedTables()}).
			WithRequestID(requestID))
		return
	}

	page, err := h.hubservice.BrowseTable(r.Context(), req)
	if err != nil {
		respondWithError(w, asAPIError(err, "failed to browse table").WithRequestID(requestID))
		return
	}

	respondWithJSON(w, http.StatusOK, page)
}
