package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/brandleads/internal/infra/http/middleware"
	"github.com/xavierca1/brandleads/internal/usecase"
)

type LeadHandler struct {
	CreateUC    *usecase.CreateLeadUseCase
	UpdateUC    *usecase.UpdateLeadUseCase
	Repo        usecase.LeadRepositoryInterface
	rateLimiter *RateLimiter
}

func NewLeadHandler(
	createUC *usecase.CreateLeadUseCase,
	updateUC *usecase.UpdateLeadUseCase,
	repo usecase.LeadRepositoryInterface,
) *LeadHandler {
	return &LeadHandler{
		CreateUC:    createUC,
		UpdateUC:    updateUC,
		Repo:        repo,
		rateLimiter: NewRateLimiter(10, time.Minute), // 10 req/min per IP on the public form
	}
}

func leadID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// Create handles the public marketing-site form (POST /api/lead).
func (h *LeadHandler) Create(w http.ResponseWriter, r *http.Request) {
	clientIP := getClientIP(r)
	if !h.rateLimiter.Allow(clientIP) {
		writeError(w, http.StatusTooManyRequests, "Too many requests. Please try again later.")
		return
	}

	var input usecase.CreateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.CreateUC.Execute(r.Context(), input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordLeadCaptured()
	writeSuccess(w, http.StatusCreated, map[string]any{"id": lead.ID, "lead": lead})
}

func (h *LeadHandler) List(w http.ResponseWriter, r *http.Request) {
	leads, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"leads": leads})
}

func (h *LeadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	lead, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"lead": lead})
}

func (h *LeadHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var input usecase.UpdateLeadInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.UpdateUC.Execute(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"lead": lead})
}

func (h *LeadHandler) SetRemark(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var input struct {
		Remark     string `json:"remark"`
		ApprovedBy string `json:"approvedBy"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.UpdateUC.SetRemark(r.Context(), id, input.Remark, input.ApprovedBy)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"lead": lead})
}

func (h *LeadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
