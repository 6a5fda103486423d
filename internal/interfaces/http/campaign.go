package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"solidadmin/internal/domain/campaign"
)

type CampaignHandler struct {
	campaignRepo campaign.Repository
}

func NewCampaignHandler(campaignRepo campaign.Repository) *CampaignHandler {
	return &CampaignHandler{campaignRepo: campaignRepo}
}

type CampaignRequest struct {
	Name        *string    `json:"name"`
	Description *string    `json:"description"`
	Multiplier  *float64   `json:"multiplier"`
	StartsAt    *time.Time `json:"startsAt"`
	EndsAt      *time.Time `json:"endsAt"`
	Active      *bool      `json:"active"`
	ImageURL    *string    `json:"imageUrl"`
}

// HandleCampaigns serves the /admin/v1/campaigns collection.
func (h *CampaignHandler) HandleCampaigns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleCampaign serves a single /admin/v1/campaigns/{id}.
func (h *CampaignHandler) HandleCampaign(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/v1/campaigns/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Campaign ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGet(w, r, id)
	case http.MethodPatch:
		h.handleUpdate(w, r, id)
	case http.MethodDelete:
		h.handleDelete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *CampaignHandler) handleList(w http.ResponseWriter, r *http.Request) {
	campaigns, err := h.campaignRepo.List(r.Context())
	if err != nil {
		log.Printf("Error listing campaigns: %v", err)
		http.Error(w, "Failed to list campaigns", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, campaigns)
}

func (h *CampaignHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding campaign create request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	params := campaign.CreateParams{Active: true}
	if req.Name != nil {
		params.Name = *req.Name
	}
	if req.Description != nil {
		params.Description = *req.Description
	}
	if req.Multiplier != nil {
		params.Multiplier = *req.Multiplier
	}
	if req.StartsAt != nil {
		params.StartsAt = *req.StartsAt
	}
	params.EndsAt = req.EndsAt
	if req.Active != nil {
		params.Active = *req.Active
	}
	params.ImageURL = req.ImageURL

	if err := params.Validate(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.campaignRepo.Create(r.Context(), params)
	if err != nil {
		log.Printf("Error creating campaign: %v", err)
		http.Error(w, "Failed to create campaign", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

func (h *CampaignHandler) handleGet(w http.ResponseWriter, r *http.Request, id string) {
	c, err := h.campaignRepo.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			http.Error(w, "Campaign not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting campaign %s: %v", id, err)
		http.Error(w, "Failed to get campaign", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

func (h *CampaignHandler) handleUpdate(w http.ResponseWriter, r *http.Request, id string) {
	var req CampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("Error decoding campaign update request: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	updated, err := h.campaignRepo.Update(r.Context(), id, campaign.UpdateParams{
		Name:        req.Name,
		Description: req.Description,
		Multiplier:  req.Multiplier,
		StartsAt:    req.StartsAt,
		EndsAt:      req.EndsAt,
		Active:      req.Active,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			http.Error(w, "Campaign not found", http.StatusNotFound)
			return
		}
		log.Printf("Error updating campaign %s: %v", id, err)
		http.Error(w, "Failed to update campaign", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}

func (h *CampaignHandler) handleDelete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.campaignRepo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, campaign.ErrCampaignNotFound) {
			http.Error(w, "Campaign not found", http.StatusNotFound)
			return
		}
		log.Printf("Error deleting campaign %s: %v", id, err)
		http.Error(w, "Failed to delete campaign", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
