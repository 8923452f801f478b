package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/eugenenazirov/packing-list/internal/catalog"
	"github.com/eugenenazirov/packing-list/internal/packing"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires the calculator and catalog dependencies into HTTP handlers.
type Handler struct {
	calculator packing.Calculator
	catalog    catalog.Store
	validate   *validator.Validate

	clock    func() time.Time
	loadedAt time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc packing.Calculator, store catalog.Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calc,
		catalog:    store,
		validate:   newValidator(),
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	h.loadedAt = h.clock()
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	_ = r
	defs := packing.CategoryDefinitions()
	resp := categoriesResponse{
		Categories: make([]categoryResponse, 0, len(defs)),
		Weather:    packing.AllWeatherConditions(),
	}
	for _, def := range defs {
		resp.Categories = append(resp.Categories, categoryResponse{
			Key:     def.Category,
			Label:   def.Label,
			Outputs: def.Outputs,
			Tags:    def.Tags,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListPresets(w http.ResponseWriter, r *http.Request) {
	_ = r
	presets, err := h.catalog.ListPresets()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := presetsResponse{
		Presets:   presets,
		UpdatedAt: h.loadedAt,
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	preset, err := h.catalog.GetPreset(r.PathValue("name"))
	if err != nil {
		h.writePresetError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preset)
}

func (h *Handler) handleExtras(w http.ResponseWriter, r *http.Request) {
	_ = r
	cat, err := h.catalog.Catalog()
	if err != nil {
		writeInternalError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, extrasResponse{Groups: labelledExtras(cat, cat.Extras)})
}

func (h *Handler) handlePackingList(w http.ResponseWriter, r *http.Request) {
	var req packingListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", describeValidation(err))
		return
	}

	trip, preset, err := h.buildTrip(req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrPresetNotFound):
			h.writePresetError(w, err)
		case errors.Is(err, packing.ErrUnknownWeather), errors.Is(err, packing.ErrUnknownCategory):
			writeError(w, http.StatusBadRequest, "Invalid trip", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	list, err := h.calculator.Calculate(trip)
	if err != nil {
		switch {
		case errors.Is(err, packing.ErrInvalidDays),
			errors.Is(err, packing.ErrInvalidRate),
			errors.Is(err, packing.ErrTooManyItems),
			errors.Is(err, packing.ErrInvalidLaundry),
			errors.Is(err, packing.ErrInvalidTemperature):
			writeError(w, http.StatusBadRequest, "Invalid trip", err.Error())
		default:
			writeInternalError(w, err)
		}
		return
	}

	resp := packingListResponse{
		Trip: tripSummary{
			Days:              trip.Days,
			Temperature:       trip.Temperature,
			Weather:           trip.Weather,
			LaundryEveryNDays: trip.LaundryEveryNDays,
			Preset:            preset.Name,
		},
		Clothing:    list.Clothing,
		Accessories: list.Accessories,
		TotalItems:  list.TotalItems(),
		GeneratedAt: h.clock(),
	}
	if preset.Name != "" && len(preset.Extras) > 0 {
		cat, err := h.catalog.Catalog()
		if err != nil {
			writeInternalError(w, err)
			return
		}
		resp.Extras = labelledExtras(cat, preset.Extras)
	}
	writeJSON(w, http.StatusOK, resp)
}

// buildTrip turns a validated request into a TripConfig. Preset rates are
// applied first and explicit clothing entries override them; an explicit
// null removes a category.
func (h *Handler) buildTrip(req packingListRequest) (packing.TripConfig, catalog.Preset, error) {
	var preset catalog.Preset
	clothing := make(map[packing.ClothingCategory]*packing.ClothingRate, len(packing.AllClothingCategories()))
	for _, category := range packing.AllClothingCategories() {
		clothing[category] = nil
	}

	if name := strings.TrimSpace(req.Preset); name != "" {
		p, err := h.catalog.GetPreset(name)
		if err != nil {
			return packing.TripConfig{}, catalog.Preset{}, err
		}
		preset = p
		clothing = p.TripClothing()
	}

	for raw, rate := range req.Clothing {
		category, err := packing.ParseClothingCategory(raw)
		if err != nil {
			return packing.TripConfig{}, catalog.Preset{}, err
		}
		clothing[category] = rate
	}

	weather := make([]packing.WeatherCondition, 0, len(req.Weather))
	for _, raw := range req.Weather {
		w, err := packing.ParseWeatherCondition(raw)
		if err != nil {
			return packing.TripConfig{}, catalog.Preset{}, err
		}
		weather = append(weather, w)
	}

	return packing.TripConfig{
		Days:              req.Days,
		Temperature:       *req.Temperature,
		Weather:           weather,
		LaundryEveryNDays: req.LaundryEveryNDays,
		Clothing:          clothing,
	}, preset, nil
}

func (h *Handler) writePresetError(w http.ResponseWriter, err error) {
	if !errors.Is(err, catalog.ErrPresetNotFound) {
		writeInternalError(w, err)
		return
	}
	suggestion := "List available presets with GET /api/presets"
	if presets, listErr := h.catalog.ListPresets(); listErr == nil && len(presets) > 0 {
		names := make([]string, 0, len(presets))
		for _, p := range presets {
			names = append(names, p.Name)
		}
		suggestion = fmt.Sprintf("Available presets: %s", strings.Join(names, ", "))
	}
	writeError(w, http.StatusNotFound, "Preset not found", err.Error(), suggestion)
}

func labelledExtras(cat catalog.Catalog, groups []catalog.ExtrasGroup) []extrasGroupResponse {
	out := make([]extrasGroupResponse, 0, len(groups))
	for _, g := range groups {
		items := make([]extraItemResponse, 0, len(g.Items))
		for _, item := range g.Items {
			items = append(items, extraItemResponse{
				Key:     item.Key,
				Label:   cat.Label(item.Key),
				Enabled: item.Enabled,
				Count:   item.Count,
			})
		}
		out = append(out, extrasGroupResponse{Label: g.Label, Items: items})
	}
	return out
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type packingListRequest struct {
	Days              int                              `json:"days" validate:"gt=0"`
	Temperature       *float64                         `json:"temperature" validate:"required"`
	Weather           []string                         `json:"weather" validate:"max=12"`
	LaundryEveryNDays *float64                         `json:"laundryEveryNDays" validate:"omitempty,gt=0"`
	Preset            string                           `json:"preset" validate:"max=64"`
	Clothing          map[string]*packing.ClothingRate `json:"clothing"`
}

type tripSummary struct {
	Days              int                        `json:"days"`
	Temperature       float64                    `json:"temperature"`
	Weather           []packing.WeatherCondition `json:"weather"`
	LaundryEveryNDays *float64                   `json:"laundryEveryNDays"`
	Preset            string                     `json:"preset,omitempty"`
}

type packingListResponse struct {
	Trip        tripSummary                            `json:"trip"`
	Clothing    map[packing.OutputClothingCategory]int `json:"clothing"`
	Accessories packing.Accessories                    `json:"accessories"`
	TotalItems  int                                    `json:"totalItems"`
	Extras      []extrasGroupResponse                  `json:"extras,omitempty"`
	GeneratedAt time.Time                              `json:"generatedAt"`
}

type presetsResponse struct {
	Presets   []catalog.Preset `json:"presets"`
	UpdatedAt time.Time        `json:"updatedAt"`
}

type extrasResponse struct {
	Groups []extrasGroupResponse `json:"groups"`
}

type extrasGroupResponse struct {
	Label string              `json:"label"`
	Items []extraItemResponse `json:"items"`
}

type extraItemResponse struct {
	Key     string `json:"key"`
	Label   string `json:"label"`
	Enabled bool   `json:"enabled"`
	Count   *int   `json:"count,omitempty"`
}

type categoriesResponse struct {
	Categories []categoryResponse         `json:"categories"`
	Weather    []packing.WeatherCondition `json:"weather"`
}

type categoryResponse struct {
	Key     packing.ClothingCategory         `json:"key"`
	Label   string                           `json:"label"`
	Outputs []packing.OutputClothingCategory `json:"outputs"`
	Tags    []packing.CategoryTag            `json:"tags,omitempty"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
