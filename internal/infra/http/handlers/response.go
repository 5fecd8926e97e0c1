package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/xavierca1/brandleads/internal/entity"
	"github.com/xavierca1/brandleads/internal/infra/database"
	"github.com/xavierca1/brandleads/internal/usecase"
)

// Every endpoint answers {"success": bool, ...} so the front-end has one
// shape to deal with.
func writeSuccess(w http.ResponseWriter, status int, fields map[string]any) {
	body := map[string]any{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success": false,
		"message": message,
	})
}

// respondError maps the domain error taxonomy onto HTTP statuses:
// validation and domain rules 400, missing entities 404, storage 500 with a
// generic message (the detail stays server-side).
func respondError(w http.ResponseWriter, err error) {
	var validationErrs usecase.ValidationErrors
	if errors.As(err, &validationErrs) {
		writeError(w, http.StatusBadRequest, validationErrs.Error())
		return
	}

	var domainErr *usecase.DomainError
	if errors.As(err, &domainErr) {
		writeError(w, http.StatusBadRequest, domainErr.Message)
		return
	}

	switch {
	case errors.Is(err, entity.ErrLeadNotFound),
		errors.Is(err, entity.ErrPlanNotFound),
		errors.Is(err, entity.ErrNotificationNotFound),
		errors.Is(err, entity.ErrDescriptionRequestNotFound):
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	var storageErr *database.StorageError
	if errors.As(err, &storageErr) {
		log.Printf("❌ [HTTP] %v", storageErr)
		writeError(w, http.StatusInternalServerError, "Storage failure")
		return
	}

	log.Printf("❌ [HTTP] Unexpected error: %v", err)
	writeError(w, http.StatusInternalServerError, "Internal server error")
}
