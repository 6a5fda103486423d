package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"solidadmin/internal/interfaces/monitor"
)

// MockJobSubmitter implements JobSubmitter for testing
type MockJobSubmitter struct {
	SubmitFunc func(job monitor.Job) error
}

func (m *MockJobSubmitter) Submit(job monitor.Job) error {
	if m.SubmitFunc != nil {
		return m.SubmitFunc(job)
	}
	return nil
}

type noopJob struct{}

func (noopJob) Execute(ctx context.Context) error { return nil }
func (noopJob) Name() string                      { return "noop" }
func (noopJob) Description() string               { return "does nothing" }

func TestHandleCohortTrigger(t *testing.T) {
	t.Run("Queued", func(t *testing.T) {
		var submitted monitor.Job
		handler := NewMonitorHandler(&MockJobSubmitter{
			SubmitFunc: func(job monitor.Job) error {
				submitted = job
				return nil
			},
		}, noopJob{})

		req, _ := http.NewRequest(http.MethodPost, "/admin/v1/cohort-snapshots/trigger", nil)
		rr := httptest.NewRecorder()
		handler.HandleCohortTrigger(rr, req)

		if rr.Code != http.StatusAccepted {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusAccepted)
		}
		if submitted == nil {
			t.Error("expected a job to be submitted")
		}
	})

	t.Run("Queue Full", func(t *testing.T) {
		handler := NewMonitorHandler(&MockJobSubmitter{
			SubmitFunc: func(job monitor.Job) error {
				return errors.New("job queue full")
			},
		}, noopJob{})

		req, _ := http.NewRequest(http.MethodPost, "/admin/v1/cohort-snapshots/trigger", nil)
		rr := httptest.NewRecorder()
		handler.HandleCohortTrigger(rr, req)

		if rr.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
		}
	})

	t.Run("Method Not Allowed", func(t *testing.T) {
		handler := NewMonitorHandler(&MockJobSubmitter{}, noopJob{})

		req, _ := http.NewRequest(http.MethodGet, "/admin/v1/cohort-snapshots/trigger", nil)
		rr := httptest.NewRecorder()
		handler.HandleCohortTrigger(rr, req)

		if rr.Code != http.StatusMethodNotAllowed {
			t.Errorf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
		}
	})
}
