package handlers

import (
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/Igaki12/news-network-api/application/services"
	"github.com/Igaki12/news-network-api/domain/article"
	"github.com/Igaki12/news-network-api/pkg/common"
)

// DatasetHandler serves dataset lifecycle and day listing endpoints
type DatasetHandler struct {
	datasets       *services.DatasetService
	maxUploadBytes int64
	logger         *zap.Logger
}

// NewDatasetHandler creates the dataset handler
func NewDatasetHandler(datasets *services.DatasetService, maxUploadBytes int64, logger *zap.Logger) *DatasetHandler {
	return &DatasetHandler{
		datasets:       datasets,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload handles POST /api/v1/dataset. The body is the raw JSONL text.
func (h *DatasetHandler) Upload(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxUploadBytes))
	if err != nil {
		common.RespondError(w, http.StatusRequestEntityTooLarge, "VALIDATION", "upload too large")
		return
	}

	days, err := h.datasets.LoadFromText(r.Context(), string(body))
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"days": days,
	})
}

// LoadSample handles POST /api/v1/dataset/sample
func (h *DatasetHandler) LoadSample(w http.ResponseWriter, r *http.Request) {
	days, err := h.datasets.LoadSample(r.Context())
	if err != nil {
		common.RespondAppError(w, err)
		return
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"days": days,
	})
}

// Reset handles DELETE /api/v1/dataset
func (h *DatasetHandler) Reset(w http.ResponseWriter, r *http.Request) {
	h.datasets.Reset()
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"reset": true,
	})
}

// dayEntry pairs a raw day key with its display form
type dayEntry struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// ListDays handles GET /api/v1/dates
func (h *DatasetHandler) ListDays(w http.ResponseWriter, r *http.Request) {
	days, err := h.datasets.Days()
	if err != nil {
		common.RespondAppError(w, err)
		return
	}

	entries := make([]dayEntry, len(days))
	for i, day := range days {
		entries[i] = dayEntry{Key: day, Label: article.FormatDayKey(day)}
	}
	common.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"dates": entries,
	})
}
