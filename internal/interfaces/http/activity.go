package http

import (
	"log"
	"net/http"

	"solidadmin/internal/domain/activity"
)

type ActivityHandler struct {
	activityRepo activity.Repository
}

func NewActivityHandler(activityRepo activity.Repository) *ActivityHandler {
	return &ActivityHandler{activityRepo: activityRepo}
}

type ActivityListResponse struct {
	Activities []*activity.Activity `json:"activities"`
	Meta       activity.ListMeta    `json:"meta"`
}

// HandleList returns the flat admin activity table: ground truth, no
// clean-view filtering.
func (h *ActivityHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	typeFilter := r.URL.Query().Get("type")
	if typeFilter != "" && !activity.IsValidType(activity.Type(typeFilter)) {
		http.Error(w, "Invalid activity type", http.StatusBadRequest)
		return
	}
	statusFilter := r.URL.Query().Get("status")
	if statusFilter != "" && !activity.IsValidStatus(activity.Status(statusFilter)) {
		http.Error(w, "Invalid activity status", http.StatusBadRequest)
		return
	}

	page, limit := parsePagination(r)
	filters := activity.ListFilters{
		Type:        typeFilter,
		Status:      statusFilter,
		DepositType: r.URL.Query().Get("depositType"),
		Sort:        r.URL.Query().Get("sort"),
		Order:       r.URL.Query().Get("order"),
		Page:        page,
		Limit:       limit,
	}

	activities, total, err := h.activityRepo.List(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing activities: %v", err)
		http.Error(w, "Failed to list activities", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, ActivityListResponse{
		Activities: activities,
		Meta: activity.ListMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	})
}

type CardTransactionListResponse struct {
	Transactions []*activity.CardTransaction `json:"transactions"`
	Meta         activity.ListMeta           `json:"meta"`
}

// HandleCardTransactions returns the card transaction table with attached
// cashback payout state.
func (h *ActivityHandler) HandleCardTransactions(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, limit := parsePagination(r)
	filters := activity.CardTransactionFilters{
		Status: r.URL.Query().Get("status"),
		Sort:   r.URL.Query().Get("sort"),
		Order:  r.URL.Query().Get("order"),
		Page:   page,
		Limit:  limit,
	}

	transactions, total, err := h.activityRepo.ListCardTransactions(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing card transactions: %v", err)
		http.Error(w, "Failed to list card transactions", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, CardTransactionListResponse{
		Transactions: transactions,
		Meta: activity.ListMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	})
}
