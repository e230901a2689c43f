package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"rewind/internal/api/v1/dto"
	"rewind/internal/middleware"
	"rewind/internal/model"
	"rewind/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// TransformationHandler creates generation requests and lists a user's
// transformation history.
type TransformationHandler struct {
	transformService service.TransformService
	validate         *validator.Validate
	logger           zerolog.Logger
}

// NewTransformationHandler creates a new TransformationHandler.
func NewTransformationHandler(transformService service.TransformService, v *validator.Validate, logger zerolog.Logger) *TransformationHandler {
	return &TransformationHandler{transformService: transformService, validate: v, logger: logger}
}

// RegisterRoutes mounts v1 transformation routes. Creation accepts both
// authenticated and anonymous callers; history requires an account.
func (h *TransformationHandler) RegisterRoutes(mux *http.ServeMux, optionalAuthMw, authMw func(http.Handler) http.Handler) {
	mux.Handle("/transformations", optionalAuthMw(http.HandlerFunc(h.createTransformation)))
	mux.Handle("/me/transformations", authMw(http.HandlerFunc(h.listMyTransformations)))
}

// createTransformation godoc
// @Summary Create a generation request
// @Description Creates a pending era transformation. Anonymous callers must include signal readings and pass the free-usage gate.
// @Tags transformations
// @Accept json
// @Produce json
// @Param transformation body dto.TransformationCreateDTO true "Transformation request"
// @Success 201 {object} dto.TransformationResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 402 {string} string "Free usage limit reached"
// @Failure 403 {string} string "Device blocked"
// @Failure 404 {string} string "Era not found"
// @Router /transformations [post]
func (h *TransformationHandler) createTransformation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.TransformationCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	createReq := service.CreateTransformationRequest{
		EraSlug:   req.EraSlug,
		PhotoPath: req.PhotoPath,
	}
	if userID, ok := middleware.UserID(r.Context()); ok {
		createReq.UserID = &userID
	} else {
		if req.Signals == nil {
			http.Error(w, "Signal readings required for anonymous requests", http.StatusBadRequest)
			return
		}
		readings := req.Signals.Readings()
		createReq.Readings = &readings
	}

	t, err := h.transformService.Create(r.Context(), createReq)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEraNotFound):
			http.Error(w, "Era not found", http.StatusNotFound)
		case errors.Is(err, service.ErrDeviceBlocked):
			http.Error(w, "Device blocked", http.StatusForbidden)
		case errors.Is(err, service.ErrUsageLimitReached):
			http.Error(w, "Free usage limit reached", http.StatusPaymentRequired)
		default:
			h.logger.Error().Err(err).Msg("creating transformation failed")
			http.Error(w, "Failed to create transformation", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(transformationResponse(t))
}

// listMyTransformations godoc
// @Summary List the authenticated user's transformations
// @Tags transformations
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.TransformationResponseDTO
// @Failure 401 {string} string "Unauthorized"
// @Router /me/transformations [get]
func (h *TransformationHandler) listMyTransformations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized: user ID not found in context", http.StatusUnauthorized)
		return
	}

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	list, err := h.transformService.ListForUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, "Failed to retrieve transformations: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]dto.TransformationResponseDTO, 0, len(list))
	for i := range list {
		resp = append(resp, transformationResponse(&list[i]))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

func transformationResponse(t *model.Transformation) dto.TransformationResponseDTO {
	return dto.TransformationResponseDTO{
		TransformationID: t.TransformationID,
		EraSlug:          t.EraSlug,
		PhotoPath:        t.PhotoPath,
		Prompt:           t.Prompt,
		Status:           t.Status,
		ResultPath:       t.ResultPath,
		CreatedAt:        t.CreatedAt,
		CompletedAt:      t.CompletedAt,
	}
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return fallback
	}
	return v
}
