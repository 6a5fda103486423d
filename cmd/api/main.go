package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solidadmin/internal/interfaces/monitor"
	"solidadmin/internal/shared/config"
	"solidadmin/internal/shared/telemetry"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx := context.Background()

	// Telemetry first so instrumented components pick up the providers
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, telemetry.Config{
			ServiceName:  cfg.Telemetry.ServiceName,
			Environment:  cfg.Telemetry.Environment,
			OTLPEndpoint: cfg.Telemetry.OTLPEndpoint,
			MetricsPort:  cfg.Telemetry.MetricsPort,
		})
		if err != nil {
			return err
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := shutdown(shutdownCtx); err != nil {
				log.Printf("Telemetry shutdown error: %v", err)
			}
		}()
	}

	deps, err := NewDependencies(ctx, cfg)
	if err != nil {
		return err
	}
	defer deps.Close()

	// Background monitor (wallet balance refresh + cohort snapshots)
	var sched *monitor.Scheduler
	if cfg.Monitor.Enabled {
		sched, err = monitor.NewScheduler(monitor.SchedulerConfig{
			ScheduleTimes: cfg.Monitor.ScheduleTimes,
			WorkerCount:   cfg.Monitor.WorkerCount,
			JobDelay:      cfg.Monitor.JobDelay,
			QueueSize:     cfg.Monitor.QueueSize,
			RunOnStartup:  cfg.Monitor.RunOnStartup,
			JobProvider:   deps.MonitorJobs,
		})
		if err != nil {
			return err
		}
		sched.Start()
	} else {
		log.Println("Monitor is disabled")
	}

	handler := SetupRoutes(deps, sched, cfg)
	srv, redirectSrv := StartServers(NewServerConfigFromConfig(handler, cfg))

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	GracefulShutdown(srv, redirectSrv, sched, 30*time.Second)
	return nil
}
