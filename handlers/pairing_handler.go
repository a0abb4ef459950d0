package handlers

import (
	"net/http"

	"github.com/Deesus/Swiss-Tournament-Scheduler/services"
)

type PairingHandler struct {
	pairingService services.PairingService
}

func NewPairingHandler(pairingService services.PairingService) *PairingHandler {
	return &PairingHandler{pairingService: pairingService}
}

func (h *PairingHandler) Get(w http.ResponseWriter, r *http.Request) {
	scope, err := getScope(r)
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	pairings, err := h.pairingService.GeneratePairings(r.Context(), scope)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"pairings": pairings}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
