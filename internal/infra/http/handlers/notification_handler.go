package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/xavierca1/brandleads/internal/entity"
)

type NotificationRepositoryInterface interface {
	List(ctx context.Context) ([]entity.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id string) error
}

type NotificationHandler struct {
	Repo NotificationRepositoryInterface
}

func NewNotificationHandler(repo NotificationRepositoryInterface) *NotificationHandler {
	return &NotificationHandler{Repo: repo}
}

func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	notifications, err := h.Repo.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Repo.MarkRead(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	if err := h.Repo.MarkAllRead(r.Context()); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *NotificationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.Repo.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}
