package http

import (
	"net/http"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/service"
)

type BedHandler struct {
	bedSvc service.BedService
}

func NewBedHandler(bedSvc service.BedService) *BedHandler {
	return &BedHandler{bedSvc: bedSvc}
}

type bedRequest struct {
	RoomID            int32  `json:"room_id"`
	BedNumber         string `json:"bed_number"`
	RentPerMonthCents int64  `json:"rent_per_month_cents"`
	Description       string `json:"description,omitempty"`
}

func (h *BedHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req bedRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	bed := &domain.Bed{
		TenantID:          tenant.ID,
		RoomID:            req.RoomID,
		BedNumber:         req.BedNumber,
		RentPerMonthCents: req.RentPerMonthCents,
		Description:       req.Description,
	}
	if err := h.bedSvc.Create(r.Context(), bed); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Bed created successfully",
		"bed_id":  bed.ID,
	})
}

func (h *BedHandler) ListByRoom(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	roomID, err := pathID(r, "roomId")
	if err != nil {
		writeError(w, err)
		return
	}

	beds, err := h.bedSvc.ListByRoom(r.Context(), tenant.ID, roomID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, beds)
}

func (h *BedHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	bedID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req bedRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := h.bedSvc.Update(r.Context(), tenant.ID, bedID, req.BedNumber, req.Description, req.RentPerMonthCents); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Bed updated successfully"})
}
