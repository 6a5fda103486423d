package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"solidadmin/internal/domain/rewards"
	"solidadmin/internal/shared/middleware"
)

type RewardsHandler struct {
	service *rewards.Service
}

func NewRewardsHandler(service *rewards.Service) *RewardsHandler {
	return &RewardsHandler{service: service}
}

type RewardsUpdateRequest struct {
	BaseAPY          *string                 `json:"baseApy"`
	BoostedAPY       *string                 `json:"boostedApy"`
	CashbackPercent  *string                 `json:"cashbackPercent"`
	ReferralBonus    *string                 `json:"referralBonus"`
	DepositBonusTier []rewards.BonusTier     `json:"depositBonusTiers"`
	Sections         []rewards.ConfigSection `json:"sections"`
}

// HandleConfig serves GET and PATCH on /admin/v1/rewards-config.
func (h *RewardsHandler) HandleConfig(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		config, err := h.service.Get(r.Context())
		if err != nil {
			if errors.Is(err, rewards.ErrConfigNotFound) {
				http.Error(w, "Rewards config not found", http.StatusNotFound)
				return
			}
			log.Printf("Error loading rewards config: %v", err)
			http.Error(w, "Failed to load rewards config", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, config)

	case http.MethodPatch:
		var req RewardsUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding rewards config update: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		adminID, _ := middleware.AdminID(r.Context())
		config, err := h.service.Update(r.Context(), rewards.UpdateParams{
			BaseAPY:          req.BaseAPY,
			BoostedAPY:       req.BoostedAPY,
			CashbackPercent:  req.CashbackPercent,
			ReferralBonus:    req.ReferralBonus,
			DepositBonusTier: req.DepositBonusTier,
			Sections:         req.Sections,
			UpdatedBy:        adminID,
		})
		if err != nil {
			log.Printf("Error updating rewards config: %v", err)
			http.Error(w, "Failed to update rewards config", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, config)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleClearCache drops the cached config so mobile clients see edits made
// directly in the database.
func (h *RewardsHandler) HandleClearCache(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.service.ClearCache()
	respondJSON(w, http.StatusOK, map[string]string{"status": "cache cleared"})
}
