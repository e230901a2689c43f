package handler

import (
	"encoding/json"
	"net/http"

	"rewind/internal/api/v1/dto"
	"rewind/internal/model"
	"rewind/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// GateHandler exposes the anonymous usage gate: fingerprint resolution and
// free-transformation recording.
type GateHandler struct {
	gateService service.GateService
	validate    *validator.Validate
	logger      zerolog.Logger
}

// NewGateHandler creates a new GateHandler.
func NewGateHandler(gateService service.GateService, v *validator.Validate, logger zerolog.Logger) *GateHandler {
	return &GateHandler{gateService: gateService, validate: v, logger: logger}
}

// RegisterRoutes mounts v1 gate routes. Both endpoints are anonymous by
// design: they exist precisely for visitors without an account.
func (h *GateHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/gate/resolve", http.HandlerFunc(h.resolve))
	mux.Handle("/gate/transformations", http.HandlerFunc(h.recordTransformation))
}

// resolve godoc
// @Summary Resolve a device fingerprint to its usage state
// @Description Composes a fingerprint from the submitted signal readings and resolves it against the quota store (exact match, then similarity search).
// @Tags gate
// @Accept json
// @Produce json
// @Param signals body dto.SignalReadingsDTO true "Raw browser signal readings"
// @Success 200 {object} dto.GateStateResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 503 {string} string "Quota store unavailable (deny policy)"
// @Router /gate/resolve [post]
func (h *GateHandler) resolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	readings, ok := h.decodeSignals(w, r)
	if !ok {
		return
	}

	state, err := h.gateService.Resolve(r.Context(), readings.Readings())
	if err != nil {
		h.logger.Error().Err(err).Msg("gate resolution failed")
		http.Error(w, "Usage state unavailable", http.StatusServiceUnavailable)
		return
	}

	writeGateState(w, http.StatusOK, state)
}

// recordTransformation godoc
// @Summary Record one consumed free transformation
// @Description Atomically increments the usage counter for the device identified by the submitted signal readings. Called by the client after a generation succeeds.
// @Tags gate
// @Accept json
// @Produce json
// @Param signals body dto.SignalReadingsDTO true "Raw browser signal readings"
// @Success 202 {object} dto.GateStateResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Router /gate/transformations [post]
func (h *GateHandler) recordTransformation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	readings, ok := h.decodeSignals(w, r)
	if !ok {
		return
	}

	// RecordTransformation fails open by contract, so err only reflects a
	// malformed request having slipped past validation.
	state, err := h.gateService.RecordTransformation(r.Context(), readings.Readings())
	if err != nil {
		h.logger.Error().Err(err).Msg("recording transformation failed")
		http.Error(w, "Failed to record transformation", http.StatusInternalServerError)
		return
	}

	writeGateState(w, http.StatusAccepted, state)
}

func (h *GateHandler) decodeSignals(w http.ResponseWriter, r *http.Request) (*dto.SignalReadingsDTO, bool) {
	var req dto.SignalReadingsDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return nil, false
	}
	return &req, true
}

func writeGateState(w http.ResponseWriter, status int, state *model.GateState) {
	resp := dto.GateStateResponseDTO{
		FingerprintHash:      state.FingerprintHash,
		IsBlocked:            state.IsBlocked,
		HasUsedFreeTransform: state.HasUsedFreeTransform,
		TransformationCount:  state.TransformationCount,
		MatchedVia:           state.MatchedVia,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
