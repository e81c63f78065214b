package http

import (
	"net/http"

	"pgstay-backend/internal/service"
)

type ResidentHandler struct {
	residentSvc service.ResidentService
}

func NewResidentHandler(residentSvc service.ResidentService) *ResidentHandler {
	return &ResidentHandler{residentSvc: residentSvc}
}

func (h *ResidentHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	tenant, err := tenantFrom(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	residents, err := h.residentSvc.ListActive(r.Context(), tenant.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, residents)
}
