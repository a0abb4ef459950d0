package handlers

import (
	"net/http"

	"github.com/Deesus/Swiss-Tournament-Scheduler/services"
)

type OverviewHandler struct {
	overviewService services.OverviewService
}

func NewOverviewHandler(overviewService services.OverviewService) *OverviewHandler {
	return &OverviewHandler{overviewService: overviewService}
}

func (h *OverviewHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.overviewService.ListTournaments(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournaments": summaries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
