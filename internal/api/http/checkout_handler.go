package http

import (
	"net/http"
	"time"

	"pgstay-backend/internal/service"
)

type CheckoutHandler struct {
	checkoutSvc service.CheckoutService
}

func NewCheckoutHandler(checkoutSvc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutSvc: checkoutSvc}
}

func (h *CheckoutHandler) Preview(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	residentID, err := pathID(r, "residentId")
	if err != nil {
		writeError(w, err)
		return
	}

	preview, err := h.checkoutSvc.Preview(r.Context(), tenant.ID, residentID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, preview)
}

type confirmCheckoutRequest struct {
	ActualMoveOutDate    string `json:"actual_move_out_date"`
	DamageDeductionCents int64  `json:"damage_deduction_cents,omitempty"`
	OtherChargesCents    int64  `json:"other_charges_cents,omitempty"`
	Notes                string `json:"notes,omitempty"`
}

func (h *CheckoutHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	residentID, err := pathID(r, "residentId")
	if err != nil {
		writeError(w, err)
		return
	}

	var req confirmCheckoutRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	moveOut, err := time.Parse("2006-01-02", req.ActualMoveOutDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid actual move-out date"})
		return
	}

	finalAmount, err := h.checkoutSvc.Confirm(r.Context(), tenant.ID, residentID, service.ConfirmCheckoutInput{
		ActualMoveOutDate:    moveOut,
		DamageDeductionCents: req.DamageDeductionCents,
		OtherChargesCents:    req.OtherChargesCents,
		Notes:                req.Notes,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":                 "Checkout completed successfully",
		"final_settlement_amount": finalAmount,
	})
}

func (h *CheckoutHandler) MySettlement(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resident, err := h.checkoutSvc.MySettlement(r.Context(), tenant.ID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"refundable_amount_cents": resident.RefundableAmountCents,
		"final_settlement_date":   resident.FinalSettlementDate,
	})
}
