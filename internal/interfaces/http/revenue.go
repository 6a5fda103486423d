package http

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"solidadmin/internal/domain/revenue"
)

type RevenueHandler struct {
	service *revenue.Service
}

func NewRevenueHandler(service *revenue.Service) *RevenueHandler {
	return &RevenueHandler{service: service}
}

// parseRange reads from/to query parameters (YYYY-MM-DD). Defaults to the
// last 30 days when absent.
func parseRange(r *http.Request, now time.Time) (revenue.Range, error) {
	rng := revenue.Range{From: now.AddDate(0, 0, -30), To: now}

	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		from, err := time.Parse("2006-01-02", fromStr)
		if err != nil {
			return revenue.Range{}, fmt.Errorf("invalid from date (use YYYY-MM-DD)")
		}
		rng.From = from
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		to, err := time.Parse("2006-01-02", toStr)
		if err != nil {
			return revenue.Range{}, fmt.Errorf("invalid to date (use YYYY-MM-DD)")
		}
		// Inclusive end date
		rng.To = to.AddDate(0, 0, 1)
	}

	if !rng.To.After(rng.From) {
		return revenue.Range{}, fmt.Errorf("to must be after from")
	}

	return rng, nil
}

// HandleSummary returns totals, per-source breakdown and per-user averages.
func (h *RevenueHandler) HandleSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rng, err := parseRange(r, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summarize(r.Context(), rng)
	if err != nil {
		log.Printf("Error summarizing revenue: %v", err)
		http.Error(w, "Failed to summarize revenue", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// HandleDailyFlow returns the per-day revenue series for charts.
func (h *RevenueHandler) HandleDailyFlow(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rng, err := parseRange(r, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	flows, err := h.service.DailyFlow(r.Context(), rng)
	if err != nil {
		log.Printf("Error loading daily revenue flow: %v", err)
		http.Error(w, "Failed to load daily flow", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, flows)
}

// HandleFeeBreakdown returns the per-source slice of a summary on its own,
// for the fee-type pie chart.
func (h *RevenueHandler) HandleFeeBreakdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rng, err := parseRange(r, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.Summarize(r.Context(), rng)
	if err != nil {
		log.Printf("Error computing fee breakdown: %v", err)
		http.Error(w, "Failed to compute fee breakdown", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary.BySource)
}

// HandleExecutiveSummary compares the period with the one before it.
func (h *RevenueHandler) HandleExecutiveSummary(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rng, err := parseRange(r, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	summary, err := h.service.ExecutiveSummary(r.Context(), rng)
	if err != nil {
		log.Printf("Error computing executive summary: %v", err)
		http.Error(w, "Failed to compute executive summary", http.StatusInternalServerError)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// HandleExport streams the period's raw fee events as a CSV download.
func (h *RevenueHandler) HandleExport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	rng, err := parseRange(r, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=revenue-%s.csv", time.Now().Format("2006-01-02")))

	if err := h.service.ExportCSV(r.Context(), rng, w); err != nil {
		log.Printf("Error exporting revenue CSV: %v", err)
	}
}
