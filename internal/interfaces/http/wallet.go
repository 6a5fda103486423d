package http

import (
	"log"
	"net/http"

	"solidadmin/internal/domain/wallet"
)

type WalletHandler struct {
	service *wallet.Service
}

func NewWalletHandler(service *wallet.Service) *WalletHandler {
	return &WalletHandler{service: service}
}

// HandleStatus returns every operational wallet with classified balances.
func (h *WalletHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	status, err := h.service.Status(r.Context())
	if err != nil {
		log.Printf("Error loading wallet status: %v", err)
		http.Error(w, "Failed to load wallet status", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, status)
}
