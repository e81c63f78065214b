package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/service"
)

type BookingHandler struct {
	bookingSvc service.BookingService
}

func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

type createBookingRequest struct {
	BedID                int32  `json:"bed_id"`
	CheckInDate          string `json:"check_in_date"`
	ExpectedCheckOutDate string `json:"expected_check_out_date,omitempty"`
	SpecialRequests      string `json:"special_requests,omitempty"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.BedID == 0 || req.CheckInDate == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Bed ID and check-in date are required"})
		return
	}

	checkIn, err := time.Parse("2006-01-02", req.CheckInDate)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid check-in date"})
		return
	}
	var checkOut *time.Time
	if req.ExpectedCheckOutDate != "" {
		parsed, err := time.Parse("2006-01-02", req.ExpectedCheckOutDate)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Message: "Invalid expected check-out date"})
			return
		}
		checkOut = &parsed
	}

	booking, err := h.bookingSvc.Create(r.Context(), tenant.ID, claims.UserID, service.CreateBookingInput{
		BedID:                req.BedID,
		CheckInDate:          checkIn,
		ExpectedCheckOutDate: checkOut,
		SpecialRequests:      req.SpecialRequests,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Booking created successfully",
		"booking_id": booking.ID,
		"status":     domain.BookingStatusPending,
	})
}

func (h *BookingHandler) ListMine(w http.ResponseWriter, r *http.Request) {
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

	bookings, err := h.bookingSvc.ListMine(r.Context(), tenant.ID, claims.UserID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	bookings, err := h.bookingSvc.ListPending(r.Context(), tenant.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

type approveBookingRequest struct {
	SecurityDepositCents int64 `json:"security_deposit_cents,omitempty"`
}

func (h *BookingHandler) Approve(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	// Body is optional; a missing deposit falls back to the bed's rent.
	var req approveBookingRequest
	_ = decodeBody(r, &req)

	if err := h.bookingSvc.Approve(r.Context(), tenant.ID, bookingID, req.SecurityDepositCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking approved successfully"})
}

func (h *BookingHandler) Reject(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	bookingID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.bookingSvc.Reject(r.Context(), tenant.ID, bookingID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Booking rejected successfully"})
}

func pathID(r *http.Request, name string) (int32, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, domain.ErrValidation
	}
	return int32(id), nil
}
