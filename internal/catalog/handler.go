// internal/catalog/handler.go
package catalog

import (
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
)

type Handler struct {
	catalog *Catalog
	logger  *slog.Logger
}

func NewHandler(c *Catalog, logger *slog.Logger) *Handler {
	return &Handler{catalog: c, logger: logger}
}

// Register mounts the landmark routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/landmarks", h.HandleList)
	r.Get("/landmarks/nearest", h.HandleNearest)
	r.Get("/landmarks/{id}", h.HandleGet)
}

func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.catalog.Entries())
}

func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid landmark ID")
		return
	}

	l, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "landmark not found")
			return
		}
		h.logger.Error("get landmark", "id", id, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) HandleNearest(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer(tracerName).Start(r.Context(), "catalog.nearest")
	defer span.End()

	raw := r.URL.Query().Get("distance_ly")
	if raw == "" {
		writeError(w, http.StatusBadRequest, "missing distance_ly")
		return
	}
	d, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		writeError(w, http.StatusBadRequest, "distance_ly must be a non-negative number")
		return
	}

	l, ok := h.catalog.NearestTo(d)
	annotateNearest(ctx, l, ok)
	if !ok {
		writeError(w, http.StatusNotFound, "catalog is empty")
		return
	}

	writeJSON(w, http.StatusOK, l)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
