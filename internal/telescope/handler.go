// internal/telescope/handler.go
package telescope

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"timetelescope/internal/catalog"
)

const instrumentationName = "timetelescope/telescope"

// CalculateRequest is the body accepted by POST /calculate.
// TargetDate is nil when the field is absent or null.
type CalculateRequest struct {
	TargetDate *time.Time `json:"target_date"`
}

// CalculateResponse is the body returned by POST /calculate.
type CalculateResponse struct {
	LightYears        float64           `json:"light_years"`
	Kilometers        float64           `json:"kilometers"`
	Miles             float64           `json:"miles"`
	YearsAgo          float64           `json:"years_ago"`
	NearestLandmark   *catalog.Landmark `json:"nearest_landmark"`
	TravelTimeVoyager string            `json:"travel_time_voyager"`
}

// NewCalculateResponse maps a Result onto the wire format.
func NewCalculateResponse(res *Result) CalculateResponse {
	return CalculateResponse{
		LightYears:        res.LightYears,
		Kilometers:        res.Kilometers,
		Miles:             res.Miles,
		YearsAgo:          res.LightYears,
		NearestLandmark:   res.NearestLandmark,
		TravelTimeVoyager: res.TravelTime,
	}
}

type Handler struct {
	nearest      catalog.Nearest
	now          func() time.Time
	logger       *slog.Logger
	tracer       trace.Tracer
	calculations metric.Int64Counter
	landmarkHits metric.Int64Counter
}

// NewHandler creates a handler answering from nearest. A nil now defaults to time.Now.
func NewHandler(nearest catalog.Nearest, now func() time.Time, logger *slog.Logger) *Handler {
	if now == nil {
		now = time.Now
	}
	meter := otel.Meter(instrumentationName)
	calculations, err := meter.Int64Counter(
		"telescope.calculations",
		metric.WithDescription("Distance calculations served, by outcome."),
	)
	if err != nil {
		logger.Warn("calculation counter unavailable", "error", err)
	}
	landmarkHits, err := meter.Int64Counter(
		"telescope.landmark_hits",
		metric.WithDescription("Calculations answered with each nearest landmark."),
	)
	if err != nil {
		logger.Warn("landmark counter unavailable", "error", err)
	}
	return &Handler{
		nearest:      nearest,
		now:          now,
		logger:       logger,
		tracer:       otel.Tracer(instrumentationName),
		calculations: calculations,
		landmarkHits: landmarkHits,
	}
}

// Register mounts the calculator routes on r.
func (h *Handler) Register(r chi.Router) {
	r.Get("/health", h.HandleHealth)
	r.Post("/calculate", h.HandleCalculate)
}

func (h *Handler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "telescope.calculate")
	defer span.End()

	r.Body = http.MaxBytesReader(w, r.Body, 1<<16)
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.count(ctx, "invalid_body")
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.TargetDate == nil {
		h.count(ctx, "invalid_body")
		writeError(w, http.StatusBadRequest, "target_date is required")
		return
	}

	target := *req.TargetDate
	span.SetAttributes(attribute.String("target_date", target.UTC().Format(time.RFC3339)))

	res, err := Calculate(h.now().UTC(), target, h.nearest)
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			h.count(ctx, "future_target")
			writeError(w, http.StatusBadRequest, "Target date must be in the past.")
			return
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "calculate")
		h.logger.Error("calculate", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	span.SetAttributes(
		attribute.Float64("light_years", res.LightYears),
		attribute.Bool("landmark.found", res.NearestLandmark != nil),
	)
	h.count(ctx, "ok")
	if res.NearestLandmark != nil && h.landmarkHits != nil {
		h.landmarkHits.Add(ctx, 1, metric.WithAttributes(
			attribute.Int64("landmark.id", res.NearestLandmark.ID),
			attribute.String("landmark.name", res.NearestLandmark.Name),
		))
	}
	writeJSON(w, http.StatusOK, NewCalculateResponse(res))
}

func (h *Handler) count(ctx context.Context, outcome string) {
	if h.calculations == nil {
		return
	}
	h.calculations.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
