package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"rewind/internal/api/v1/dto"
	"rewind/internal/model"
	"rewind/internal/repository"
)

// EraHandler serves the era catalog.
type EraHandler struct {
	eraRepo repository.EraRepository
}

// NewEraHandler creates a new EraHandler.
func NewEraHandler(eraRepo repository.EraRepository) *EraHandler {
	return &EraHandler{eraRepo: eraRepo}
}

// RegisterRoutes mounts v1 era routes. The catalog is public.
func (h *EraHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.Handle("/eras", http.HandlerFunc(h.listEras))
	mux.Handle("/eras/", http.HandlerFunc(h.getEra))
}

// listEras godoc
// @Summary List active eras
// @Tags eras
// @Produce json
// @Success 200 {array} dto.EraResponseDTO
// @Router /eras [get]
func (h *EraHandler) listEras(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	eras, err := h.eraRepo.ListActive(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve eras: "+err.Error(), http.StatusInternalServerError)
		return
	}

	resp := make([]dto.EraResponseDTO, 0, len(eras))
	for _, era := range eras {
		resp = append(resp, eraResponse(&era))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// getEra godoc
// @Summary Get one era by slug
// @Tags eras
// @Produce json
// @Param slug path string true "Era slug"
// @Success 200 {object} dto.EraResponseDTO
// @Failure 404 {string} string "Era not found"
// @Router /eras/{slug} [get]
func (h *EraHandler) getEra(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
		return
	}
	slug := strings.TrimPrefix(r.URL.Path, "/eras/")
	if slug == "" || strings.Contains(slug, "/") {
		http.NotFound(w, r)
		return
	}

	era, err := h.eraRepo.GetBySlug(r.Context(), slug)
	if err != nil {
		http.Error(w, "Failed to retrieve era: "+err.Error(), http.StatusInternalServerError)
		return
	}
	if era == nil || !era.IsActive {
		http.Error(w, "Era not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(eraResponse(era))
}

func eraResponse(era *model.Era) dto.EraResponseDTO {
	return dto.EraResponseDTO{
		Slug:        era.Slug,
		Name:        era.Name,
		Description: era.Description,
		StartYear:   era.StartYear,
		EndYear:     era.EndYear,
		Celebrities: era.Celebrities,
	}
}
