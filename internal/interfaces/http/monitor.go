package http

import (
	"log"
	"net/http"

	"solidadmin/internal/interfaces/monitor"
)

// JobSubmitter enqueues background jobs. Satisfied by monitor.Scheduler.
type JobSubmitter interface {
	Submit(job monitor.Job) error
}

// MonitorHandler exposes manual triggers for background jobs.
type MonitorHandler struct {
	submitter JobSubmitter
	cohortJob monitor.Job
}

func NewMonitorHandler(submitter JobSubmitter, cohortJob monitor.Job) *MonitorHandler {
	return &MonitorHandler{
		submitter: submitter,
		cohortJob: cohortJob,
	}
}

// HandleCohortTrigger queues a cohort snapshot run outside the schedule.
// POST /admin/v1/cohort-snapshots/trigger
func (h *MonitorHandler) HandleCohortTrigger(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.submitter.Submit(h.cohortJob); err != nil {
		log.Printf("Failed to queue cohort snapshot: %v", err)
		http.Error(w, "Failed to queue job", http.StatusServiceUnavailable)
		return
	}

	respondJSON(w, http.StatusAccepted, map[string]string{"status": "cohort snapshot queued"})
}
