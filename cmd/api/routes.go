package main

import (
	"log"
	"net/http"

	"golang.org/x/time/rate"

	httphandlers "solidadmin/internal/interfaces/http"
	"solidadmin/internal/interfaces/monitor"
	"solidadmin/internal/shared/config"
	"solidadmin/internal/shared/middleware"
)

// SetupRoutes configures all HTTP routes and returns the final handler with middleware.
func SetupRoutes(deps *Dependencies, sched *monitor.Scheduler, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("/health", httphandlers.HandleHealth)

	// Login is public but rate limited per IP
	loginLimiter := middleware.NewRateLimiter(rate.Limit(1), 5)
	mux.Handle("/admin/v1/auth/login", loginLimiter.Middleware(http.HandlerFunc(deps.AuthHandler.HandleLogin)))
	mux.HandleFunc("/admin/v1/auth/logout", deps.AuthHandler.HandleLogout)

	// Protected routes
	authMiddleware := middleware.Auth(deps.JWT)
	protected := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(h)
	}

	mux.Handle("/admin/v1/auth/me", protected(deps.AuthHandler.HandleMe))

	mux.Handle("/admin/v1/users", protected(deps.UserHandler.HandleList))
	mux.Handle("/admin/v1/users/", protected(deps.UserHandler.HandleUser))

	mux.Handle("/admin/v1/activities", protected(deps.ActivityHandler.HandleList))
	mux.Handle("/admin/v1/card-transactions", protected(deps.ActivityHandler.HandleCardTransactions))

	mux.Handle("/admin/v1/wallets/status", protected(deps.WalletHandler.HandleStatus))

	mux.Handle("/admin/v1/campaigns", protected(deps.CampaignHandler.HandleCampaigns))
	mux.Handle("/admin/v1/campaigns/", protected(deps.CampaignHandler.HandleCampaign))

	mux.Handle("/admin/v1/promotions-banner", protected(deps.ContentHandler.HandleBanners))
	mux.Handle("/admin/v1/promotions-banner/", protected(deps.ContentHandler.HandleBanner))
	mux.Handle("/admin/v1/whats-new", protected(deps.ContentHandler.HandlePopups))
	mux.Handle("/admin/v1/whats-new/", protected(deps.ContentHandler.HandlePopup))

	mux.Handle("/admin/v1/rewards-config", protected(deps.RewardsHandler.HandleConfig))
	mux.Handle("/admin/v1/rewards-config/clear-cache", protected(deps.RewardsHandler.HandleClearCache))

	mux.Handle("/admin/v1/revenue/summary", protected(deps.RevenueHandler.HandleSummary))
	mux.Handle("/admin/v1/revenue/daily-flow", protected(deps.RevenueHandler.HandleDailyFlow))
	mux.Handle("/admin/v1/revenue/fee-breakdown", protected(deps.RevenueHandler.HandleFeeBreakdown))
	mux.Handle("/admin/v1/revenue/executive-summary", protected(deps.RevenueHandler.HandleExecutiveSummary))
	mux.Handle("/admin/v1/revenue/export", protected(deps.RevenueHandler.HandleExport))

	// Manual cohort snapshot trigger (only when the monitor is running)
	if sched != nil {
		monitorHandler := httphandlers.NewMonitorHandler(sched, monitor.NewCohortSnapshotJob(deps.UserRepo))
		mux.Handle("/admin/v1/cohort-snapshots/trigger", protected(monitorHandler.HandleCohortTrigger))
	}

	// Apply global middleware
	handler := middleware.Logging(middleware.CORS(cfg.Server.AllowedHosts)(mux))

	// Tracing goes outermost so every request gets a span
	if cfg.Telemetry.Enabled {
		handler = middleware.Telemetry(middleware.Tracing(handler))
	}

	// Apply security middleware when TLS is enabled
	if cfg.TLS.Enabled {
		handler = middleware.HSTS(middleware.SecureCookies(handler))
		log.Println("TLS security middleware enabled (HSTS + SecureCookies)")
	}

	return handler
}
