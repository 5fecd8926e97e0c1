package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/brandleads/internal/infra/http/middleware"
	"github.com/xavierca1/brandleads/internal/usecase"
)

type CredentialHandler struct {
	IssueUC *usecase.IssueCredentialsUseCase
	LoginUC *usecase.ClientLoginUseCase
}

func NewCredentialHandler(issueUC *usecase.IssueCredentialsUseCase, loginUC *usecase.ClientLoginUseCase) *CredentialHandler {
	return &CredentialHandler{
		IssueUC: issueUC,
		LoginUC: loginUC,
	}
}

// Issue handles POST /api/admin/leads/{id}/credentials.
func (h *CredentialHandler) Issue(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var input usecase.IssueCredentialsInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	output, err := h.IssueUC.Execute(r.Context(), id, input)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordCredentialsIssued()
	writeSuccess(w, http.StatusOK, map[string]any{"credentials": output})
}

// ClientLogin handles POST /api/client/login.
func (h *CredentialHandler) ClientLogin(w http.ResponseWriter, r *http.Request) {
	var input usecase.ClientLoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.LoginUC.Execute(r.Context(), input)
	if err != nil {
		if err == usecase.ErrInvalidCredentials {
			writeError(w, http.StatusUnauthorized, err.Error())
			return
		}
		respondError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, map[string]any{"lead": lead})
}
