package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"solidadmin/internal/domain/content"
)

type ContentHandler struct {
	contentRepo content.Repository
}

func NewContentHandler(contentRepo content.Repository) *ContentHandler {
	return &ContentHandler{contentRepo: contentRepo}
}

type BannerRequest struct {
	Title     *string    `json:"title"`
	Body      *string    `json:"body"`
	ImageURL  *string    `json:"imageUrl"`
	LinkURL   *string    `json:"linkUrl"`
	Active    *bool      `json:"active"`
	SortOrder *int       `json:"sortOrder"`
	StartsAt  *time.Time `json:"startsAt"`
	EndsAt    *time.Time `json:"endsAt"`
}

func (r BannerRequest) params() content.BannerParams {
	return content.BannerParams{
		Title:     r.Title,
		Body:      r.Body,
		ImageURL:  r.ImageURL,
		LinkURL:   r.LinkURL,
		Active:    r.Active,
		SortOrder: r.SortOrder,
		StartsAt:  r.StartsAt,
		EndsAt:    r.EndsAt,
	}
}

// HandleBanners serves the /admin/v1/promotions-banner collection.
func (h *ContentHandler) HandleBanners(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		banners, err := h.contentRepo.ListBanners(r.Context())
		if err != nil {
			log.Printf("Error listing banners: %v", err)
			http.Error(w, "Failed to list banners", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, banners)

	case http.MethodPost:
		var req BannerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding banner create request: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		created, err := h.contentRepo.CreateBanner(r.Context(), req.params())
		if err != nil {
			if errors.Is(err, content.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Error creating banner: %v", err)
			http.Error(w, "Failed to create banner", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandleBanner serves a single /admin/v1/promotions-banner/{id}.
func (h *ContentHandler) HandleBanner(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/v1/promotions-banner/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Banner ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req BannerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding banner update request: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		updated, err := h.contentRepo.UpdateBanner(r.Context(), id, req.params())
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.Error(w, "Banner not found", http.StatusNotFound)
				return
			}
			log.Printf("Error updating banner %s: %v", id, err)
			http.Error(w, "Failed to update banner", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.contentRepo.DeleteBanner(r.Context(), id); err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.Error(w, "Banner not found", http.StatusNotFound)
				return
			}
			log.Printf("Error deleting banner %s: %v", id, err)
			http.Error(w, "Failed to delete banner", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

type PopupRequest struct {
	Title      *string `json:"title"`
	Body       *string `json:"body"`
	ImageURL   *string `json:"imageUrl"`
	ButtonText *string `json:"buttonText"`
	ButtonURL  *string `json:"buttonUrl"`
	Active     *bool   `json:"active"`
	MinVersion *string `json:"minVersion"`
}

func (r PopupRequest) params() content.PopupParams {
	return content.PopupParams{
		Title:      r.Title,
		Body:       r.Body,
		ImageURL:   r.ImageURL,
		ButtonText: r.ButtonText,
		ButtonURL:  r.ButtonURL,
		Active:     r.Active,
		MinVersion: r.MinVersion,
	}
}

// HandlePopups serves the /admin/v1/whats-new collection.
func (h *ContentHandler) HandlePopups(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		popups, err := h.contentRepo.ListPopups(r.Context())
		if err != nil {
			log.Printf("Error listing popups: %v", err)
			http.Error(w, "Failed to list popups", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, popups)

	case http.MethodPost:
		var req PopupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding popup create request: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		created, err := h.contentRepo.CreatePopup(r.Context(), req.params())
		if err != nil {
			if errors.Is(err, content.ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			log.Printf("Error creating popup: %v", err)
			http.Error(w, "Failed to create popup", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusCreated, created)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// HandlePopup serves a single /admin/v1/whats-new/{id}.
func (h *ContentHandler) HandlePopup(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/admin/v1/whats-new/")
	if id == "" || strings.Contains(id, "/") {
		http.Error(w, "Popup ID is required", http.StatusBadRequest)
		return
	}

	switch r.Method {
	case http.MethodPatch:
		var req PopupRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Printf("Error decoding popup update request: %v", err)
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}

		updated, err := h.contentRepo.UpdatePopup(r.Context(), id, req.params())
		if err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.Error(w, "Popup not found", http.StatusNotFound)
				return
			}
			log.Printf("Error updating popup %s: %v", id, err)
			http.Error(w, "Failed to update popup", http.StatusInternalServerError)
			return
		}
		respondJSON(w, http.StatusOK, updated)

	case http.MethodDelete:
		if err := h.contentRepo.DeletePopup(r.Context(), id); err != nil {
			if errors.Is(err, content.ErrNotFound) {
				http.Error(w, "Popup not found", http.StatusNotFound)
				return
			}
			log.Printf("Error deleting popup %s: %v", id, err)
			http.Error(w, "Failed to delete popup", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
