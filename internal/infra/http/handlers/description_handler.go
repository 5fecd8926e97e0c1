package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/brandleads/internal/usecase"
)

type DescriptionHandler struct {
	UC *usecase.DescriptionUpdateUseCase
}

func NewDescriptionHandler(uc *usecase.DescriptionUpdateUseCase) *DescriptionHandler {
	return &DescriptionHandler{UC: uc}
}

// Request handles POST /api/lead/{id}/description-request (client portal).
func (h *DescriptionHandler) Request(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var input usecase.RequestDescriptionUpdateInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	request, err := h.UC.Request(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"request": request})
}

// Resolve handles PUT /api/admin/leads/{id}/description-request/{requestId}.
// The status value is caller-supplied; resolution is terminal either way.
func (h *DescriptionHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}
	requestID := chi.URLParam(r, "requestId")

	var input struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	request, err := h.UC.Resolve(r.Context(), id, requestID, input.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"request": request})
}
