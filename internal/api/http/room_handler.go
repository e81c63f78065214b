package http

import (
	"net/http"

	"pgstay-backend/internal/domain"
	"pgstay-backend/internal/service"
)

type RoomHandler struct {
	roomSvc service.RoomService
}

func NewRoomHandler(roomSvc service.RoomService) *RoomHandler {
	return &RoomHandler{roomSvc: roomSvc}
}

type roomRequest struct {
	RoomNumber        string   `json:"room_number"`
	FloorNumber       int32    `json:"floor_number,omitempty"`
	RoomType          string   `json:"room_type,omitempty"`
	MaxOccupancy      int32    `json:"max_occupancy"`
	RentPerMonthCents int64    `json:"rent_per_month_cents"`
	Amenities         []string `json:"amenities,omitempty"`
	Description       string   `json:"description,omitempty"`
}

func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	var req roomRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	room := &domain.Room{
		TenantID:          tenant.ID,
		RoomNumber:        req.RoomNumber,
		FloorNumber:       req.FloorNumber,
		RoomType:          domain.RoomType(req.RoomType),
		MaxOccupancy:      req.MaxOccupancy,
		RentPerMonthCents: req.RentPerMonthCents,
		Amenities:         req.Amenities,
		Description:       req.Description,
	}
	if err := h.roomSvc.Create(r.Context(), room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Room created successfully",
		"room_id": room.ID,
	})
}

func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	rooms, err := h.roomSvc.List(r.Context(), tenant.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rooms)
}

func (h *RoomHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	roomID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req roomRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	room := &domain.Room{
		ID:                roomID,
		TenantID:          tenant.ID,
		RoomNumber:        req.RoomNumber,
		FloorNumber:       req.FloorNumber,
		RoomType:          domain.RoomType(req.RoomType),
		MaxOccupancy:      req.MaxOccupancy,
		RentPerMonthCents: req.RentPerMonthCents,
		Amenities:         req.Amenities,
		Description:       req.Description,
	}
	if err := h.roomSvc.Update(r.Context(), room); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Room updated successfully"})
}
