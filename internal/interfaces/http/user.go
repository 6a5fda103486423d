package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"solidadmin/internal/domain/activity"
	"solidadmin/internal/domain/user"
)

type UserHandler struct {
	userRepo     user.Repository
	activityRepo activity.Repository
	grouper      *activity.Grouper
}

func NewUserHandler(userRepo user.Repository, activityRepo activity.Repository, grouper *activity.Grouper) *UserHandler {
	return &UserHandler{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		grouper:      grouper,
	}
}

type UserListResponse struct {
	Users []*user.User  `json:"users"`
	Meta  user.ListMeta `json:"meta"`
}

// HandleList returns the paginated, searchable users table.
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page, limit := parsePagination(r)
	filters := user.ListFilters{
		Search: r.URL.Query().Get("search"),
		Sort:   r.URL.Query().Get("sort"),
		Order:  r.URL.Query().Get("order"),
		Page:   page,
		Limit:  limit,
	}

	users, total, err := h.userRepo.List(r.Context(), filters)
	if err != nil {
		log.Printf("Error listing users: %v", err)
		http.Error(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, UserListResponse{
		Users: users,
		Meta: user.ListMeta{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	})
}

// HandleUser dispatches /admin/v1/users/{id}[/balances|/activity].
func (h *UserHandler) HandleUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/admin/v1/users/")
	parts := strings.SplitN(rest, "/", 2)

	userID, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		http.Error(w, "Invalid user ID", http.StatusBadRequest)
		return
	}

	sub := ""
	if len(parts) == 2 {
		sub = parts[1]
	}

	switch sub {
	case "":
		h.handleGet(w, r, userID)
	case "balances":
		h.handleBalances(w, r, userID)
	case "activity":
		h.handleActivity(w, r, userID)
	default:
		http.Error(w, "Not found", http.StatusNotFound)
	}
}

func (h *UserHandler) handleGet(w http.ResponseWriter, r *http.Request, userID int64) {
	u, err := h.userRepo.GetByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			http.Error(w, "User not found", http.StatusNotFound)
			return
		}
		log.Printf("Error getting user %d: %v", userID, err)
		http.Error(w, "Failed to get user", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, u)
}

func (h *UserHandler) handleBalances(w http.ResponseWriter, r *http.Request, userID int64) {
	balances, err := h.userRepo.ListBalances(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing balances for user %d: %v", userID, err)
		http.Error(w, "Failed to list balances", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, balances)
}

type ActivityFeedResponse struct {
	Feed    []activity.Entry `json:"feed"`
	ShowAll bool             `json:"showAll"`
}

// handleActivity returns a user's activity. With grouped=true the response is
// the sectioned display feed; showAll=true disables the clean-view filter.
func (h *UserHandler) handleActivity(w http.ResponseWriter, r *http.Request, userID int64) {
	activities, err := h.activityRepo.ListByUser(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing activities for user %d: %v", userID, err)
		http.Error(w, "Failed to list activities", http.StatusInternalServerError)
		return
	}

	showAll := r.URL.Query().Get("showAll") == "true"
	grouped := r.URL.Query().Get("grouped") != "false"

	if !grouped {
		respondJSON(w, http.StatusOK, activities)
		return
	}

	feed := h.grouper.Group(activities, showAll)
	respondJSON(w, http.StatusOK, ActivityFeedResponse{Feed: feed, ShowAll: showAll})
}
