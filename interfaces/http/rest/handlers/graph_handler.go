package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/application/services"
	"github.com/Igaki12/news-network-api/pkg/common"
)

// GraphHandler serves the per-day entity graph
type GraphHandler struct {
	datasets *services.DatasetService
	logger   *zap.Logger
}

// NewGraphHandler creates the graph handler
func NewGraphHandler(datasets *services.DatasetService, logger *zap.Logger) *GraphHandler {
	return &GraphHandler{datasets: datasets, logger: logger}
}

// GetGraph handles GET /api/v1/dates/{dateKey}/graph. The optional cap query
// parameter lets small-viewport clients request fewer nodes; invalid values
// fall back to the server default.
func (h *GraphHandler) GetGraph(w http.ResponseWriter, r *http.Request) {
	dayKey := chi.URLParam(r, "dateKey")
	if dayKey == "" {
		common.RespondError(w, http.StatusBadRequest, "VALIDATION", "date key is required")
		return
	}

	entityCap := 0
	if raw := r.URL.Query().Get("cap"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			entityCap = parsed
		}
	}

	result, err := h.datasets.GraphForDay(dayKey, entityCap)
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, result)
}
