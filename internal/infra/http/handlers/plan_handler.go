package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/brandleads/internal/entity"
)

type PlanRepositoryInterface interface {
	Create(ctx context.Context, plan *entity.Plan) error
	FindByID(ctx context.Context, id int) (*entity.Plan, error)
	List(ctx context.Context) ([]entity.Plan, error)
	Update(ctx context.Context, id int, plan *entity.Plan) error
	Delete(ctx context.Context, id int) error
}

type PlanHandler struct {
	Repo PlanRepositoryInterface
}

func NewPlanHandler(repo PlanRepositoryInterface) *PlanHandler {
	return &PlanHandler{Repo: repo}
}

func planID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *PlanHandler) List(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"plans": plans})
}

func (h *PlanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}

	plan, err := h.Repo.FindByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"plan": plan})
}

func (h *PlanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var plan entity.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := plan.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Create(r.Context(), &plan); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusCreated, map[string]any{"plan": plan})
}

func (h *PlanHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}

	var plan entity.Plan
	if err := json.NewDecoder(r.Body).Decode(&plan); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := plan.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.Update(r.Context(), id, &plan); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"plan": plan})
}

func (h *PlanHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := planID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid plan id")
		return
	}

	if err := h.Repo.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
