package handlers

import (
	"net/http"

	"github.com/Deesus/Swiss-Tournament-Scheduler/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) ResetMatches(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetMatches(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "all matches deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *AdminHandler) ResetAll(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.ResetAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"message": "all players and matches deleted"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
