package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Activity  ActivityConfig
	Rewards   RewardsConfig
	Monitor   MonitorConfig
	TLS       TLSConfig
	Firebase  FirebaseConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	AllowedHosts []string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type JWTConfig struct {
	Secret string
}

type ActivityConfig struct {
	// StuckThreshold is how old a pending activity may be before the
	// clean feed view hides it.
	StuckThreshold time.Duration
}

type RewardsConfig struct {
	CacheTTL time.Duration
}

type MonitorConfig struct {
	Enabled       bool
	ScheduleTimes []string
	WorkerCount   int
	JobDelay      time.Duration
	QueueSize     int
	RunOnStartup  bool

	// WatchFile points at the JSON list of operational wallets to poll.
	// Empty means no wallet balance jobs are scheduled.
	WatchFile string
}

type TLSConfig struct {
	Enabled      bool
	CertPath     string
	KeyPath      string
	RedirectHTTP bool
}

type FirebaseConfig struct {
	CredentialsFile string
}

type TelemetryConfig struct {
	Enabled      bool
	ServiceName  string
	Environment  string
	OTLPEndpoint string
	MetricsPort  string
}

func Load() (*Config, error) {
	// Best-effort: missing .env just means plain env vars
	_ = godotenv.Load()

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	stuckThreshold, err := time.ParseDuration(getEnv("ACTIVITY_STUCK_THRESHOLD", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid ACTIVITY_STUCK_THRESHOLD: %w", err)
	}

	rewardsCacheTTL, err := time.ParseDuration(getEnv("REWARDS_CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid REWARDS_CACHE_TTL: %w", err)
	}

	monitorEnabled := getBoolEnv("MONITOR_ENABLED", true)
	monitorTimes := strings.Split(getEnv("MONITOR_TIMES", "06:00,12:00,18:00,00:00"), ",")
	monitorWorkers, err := strconv.Atoi(getEnv("MONITOR_WORKERS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONITOR_WORKERS: %w", err)
	}
	monitorJobDelay, err := time.ParseDuration(getEnv("MONITOR_JOB_DELAY", "1s"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONITOR_JOB_DELAY: %w", err)
	}
	monitorQueueSize, err := strconv.Atoi(getEnv("MONITOR_QUEUE_SIZE", "100"))
	if err != nil {
		return nil, fmt.Errorf("invalid MONITOR_QUEUE_SIZE: %w", err)
	}
	monitorRunOnStartup := getBoolEnv("MONITOR_RUN_ON_STARTUP", false)

	tlsEnabled := getBoolEnv("TLS_ENABLED", false)
	tlsCertPath := getEnv("TLS_CERT_PATH", "")
	tlsKeyPath := getEnv("TLS_KEY_PATH", "")
	tlsRedirectHTTP := getBoolEnv("TLS_REDIRECT_HTTP", false)

	// Parse allowed hosts (comma-separated list)
	allowedHostsStr := getEnv("ALLOWED_HOSTS", "")
	var allowedHosts []string
	if allowedHostsStr != "" {
		for _, host := range strings.Split(allowedHostsStr, ",") {
			host = strings.TrimSpace(host)
			if host != "" {
				allowedHosts = append(allowedHosts, host)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Host:         getEnv("HOST", "0.0.0.0"),
			AllowedHosts: allowedHosts,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     dbPort,
			User:     getEnv("DB_USER", "solidadmin"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "solidadmin"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		JWT: JWTConfig{
			Secret: getEnv("JWT_SECRET", ""),
		},
		Activity: ActivityConfig{
			StuckThreshold: stuckThreshold,
		},
		Rewards: RewardsConfig{
			CacheTTL: rewardsCacheTTL,
		},
		Monitor: MonitorConfig{
			Enabled:       monitorEnabled,
			ScheduleTimes: monitorTimes,
			WorkerCount:   monitorWorkers,
			JobDelay:      monitorJobDelay,
			QueueSize:     monitorQueueSize,
			RunOnStartup:  monitorRunOnStartup,
			WatchFile:     getEnv("MONITOR_WATCH_FILE", ""),
		},
		TLS: TLSConfig{
			Enabled:      tlsEnabled,
			CertPath:     tlsCertPath,
			KeyPath:      tlsKeyPath,
			RedirectHTTP: tlsRedirectHTTP,
		},
		Firebase: FirebaseConfig{
			CredentialsFile: getEnv("FIREBASE_CREDENTIALS_FILE", ""),
		},
		Telemetry: TelemetryConfig{
			Enabled:      getBoolEnv("OTEL_ENABLED", false),
			ServiceName:  getEnv("OTEL_SERVICE_NAME", "solidadmin-api"),
			Environment:  getEnv("ENVIRONMENT", "development"),
			OTLPEndpoint: getEnv("OTEL_EXPORTER_ENDPOINT", "localhost:4317"),
			MetricsPort:  getEnv("METRICS_PORT", "9090"),
		},
	}

	// Validate required fields
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// Validate TLS configuration
	if cfg.TLS.Enabled {
		if cfg.TLS.CertPath == "" {
			return nil, fmt.Errorf("TLS_CERT_PATH is required when TLS_ENABLED=true")
		}
		if cfg.TLS.KeyPath == "" {
			return nil, fmt.Errorf("TLS_KEY_PATH is required when TLS_ENABLED=true")
		}
	}

	return cfg, nil
}

func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept: true, false, 1, 0, yes, no (case-insensitive)
	switch strings.ToLower(value) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}
