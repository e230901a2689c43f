package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"rewind/internal/api/v1/dto"
	"rewind/internal/service"

	"github.com/go-playground/validator/v10"
)

// UploadHandler issues presigned photo-upload URLs.
type UploadHandler struct {
	uploadService service.UploadService
	validate      *validator.Validate
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(uploadService service.UploadService, v *validator.Validate) *UploadHandler {
	return &UploadHandler{uploadService: uploadService, validate: v}
}

// RegisterRoutes mounts v1 upload routes. Anonymous visitors upload their
// photo before passing the gate, so the endpoint takes optional auth.
func (h *UploadHandler) RegisterRoutes(mux *http.ServeMux, optionalAuthMw func(http.Handler) http.Handler) {
	mux.Handle("/uploads", optionalAuthMw(http.HandlerFunc(h.createUpload)))
}

// createUpload godoc
// @Summary Create a presigned photo upload URL
// @Tags uploads
// @Accept json
// @Produce json
// @Param upload body dto.UploadCreateDTO true "Upload request"
// @Success 201 {object} dto.UploadResponseDTO
// @Failure 400 {string} string "Invalid JSON payload or validation failed"
// @Failure 415 {string} string "Unsupported media type"
// @Router /uploads [post]
func (h *UploadHandler) createUpload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}

	var req dto.UploadCreateDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		http.Error(w, "Validation failed: "+err.Error(), http.StatusBadRequest)
		return
	}

	target, err := h.uploadService.CreateUploadURL(r.Context(), req.ContentType)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedMediaType) {
			http.Error(w, "Unsupported media type: "+req.ContentType, http.StatusUnsupportedMediaType)
			return
		}
		http.Error(w, "Failed to create upload URL: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := dto.UploadResponseDTO{
		UploadURL:   target.UploadURL,
		StoragePath: target.StoragePath,
		ExpiresAt:   target.ExpiresAt,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(resp)
}
