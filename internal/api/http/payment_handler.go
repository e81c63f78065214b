package http

import (
	"net/http"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

func (h *PaymentHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	claims, err := claimsFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		BookingID        *int32 `json:"booking_id,omitempty"`
		PaymentFor       string `json:"payment_for"`
		AmountCents      int64  `json:"amount_cents"`
		UpiTransactionID string `json:"upi_transaction_id,omitempty"`
		Notes            string `json:"notes,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.paymentSvc.Create(r.Context(), tenant.ID, claims.UserID, service.CreatePaymentInput{
		BookingID:        req.BookingID,
		PaymentFor:       domain.PaymentFor(req.PaymentFor),
		AmountCents:      req.AmountCents,
		UpiTransactionID: req.UpiTransactionID,
		Notes:            req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Payment submitted for verification",
		"payment_id": payment.ID,
	})
}

func (h *PaymentHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	payments, err := h.paymentSvc.ListPending(r.Context(), tenant.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, payments)
}

func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	claims, err := claimsFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	paymentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.paymentSvc.Verify(r.Context(), tenant.ID, paymentID, claims.UserID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment verified"})
}

func (h *PaymentHandler) Reject(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	claims, err := claimsFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	paymentID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req struct {
		Reason string `json:"reason,omitempty"`
	}
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.paymentSvc.Reject(r.Context(), tenant.ID, paymentID, claims.UserID, req.Reason); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Payment rejected"})
}
