package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/xavierca1/brandleads/internal/infra/http/middleware"
	"github.com/xavierca1/brandleads/internal/usecase"
)

type PaymentHandler struct {
	PaymentUC *usecase.RecordPaymentUseCase
}

func NewPaymentHandler(paymentUC *usecase.RecordPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{PaymentUC: paymentUC}
}

// Record handles PUT /api/admin/leads/{id}/payment. The admin form submits
// the payment entry and, optionally, the expected total in one request.
func (h *PaymentHandler) Record(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var body struct {
		Payment     usecase.RecordPaymentInput `json:"payment"`
		TotalAmount *float64                   `json:"totalAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.PaymentUC.Execute(r.Context(), id, body.Payment, body.TotalAmount)
	if err != nil {
		respondError(w, err)
		return
	}

	middleware.RecordPayment(body.Payment.Method)
	writeSuccess(w, http.StatusOK, map[string]any{"lead": lead})
}

// SetTotal handles PUT /api/admin/leads/{id}/total-amount. A null or absent
// totalAmount clears the stored total.
func (h *PaymentHandler) SetTotal(w http.ResponseWriter, r *http.Request) {
	id, ok := leadID(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "Invalid lead id")
		return
	}

	var body struct {
		TotalAmount *float64 `json:"totalAmount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	lead, err := h.PaymentUC.SetTotalAmount(r.Context(), id, body.TotalAmount)
	if err != nil {
		respondError(w, err)
		return
	}
	writeSuccess(w, http.StatusOK, map[string]any{"lead": lead})
}
