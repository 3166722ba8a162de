// Package config provides configuration management for the dispatch service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Dispatch DispatchConfig
	Sessions SessionConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port              string
	RateLimit         int
	RateWindow        time.Duration
	SessionRateLimit  int
	RequestTimeout    time.Duration
	EnableIdempotency bool
	CORSOrigins       []string
	SwaggerUser       string
	SwaggerPass       string
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	AuditTTL     time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// RedisConfig holds Redis configuration. Redis mirrors drafts, locks
// vehicles during confirmation and shares idempotent replays.
type RedisConfig struct {
	Enabled        bool
	Addr           string
	Password       string
	DB             int
	DraftTTL       time.Duration
	VehicleLockTTL time.Duration
	IdempotencyTTL time.Duration
}

// DispatchConfig holds composition engine configuration.
type DispatchConfig struct {
	// StrictCapacity blocks confirmation of compositions over capacity.
	StrictCapacity   bool
	SnapshotInterval time.Duration
	// SeedFile is a JSON catalog loaded into the store at startup.
	SeedFile          string
	DraftSyncWorkers  int
	DraftSyncBuffer   int
	AuditBufferSize   int
	AuditWorkers      int
	AuditWriteTimeout time.Duration
}

// SessionConfig sizes the in-memory operator session registry.
type SessionConfig struct {
	Capacity int
	IdleTTL  time.Duration
	Shards   int
}

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:              getEnv("PORT", "8080"),
			RateLimit:         getEnvInt("RATE_LIMIT", 100),
			RateWindow:        getEnvDuration("RATE_WINDOW", time.Minute),
			SessionRateLimit:  getEnvInt("SESSION_RATE_LIMIT", 0),
			RequestTimeout:    getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
			EnableIdempotency: getEnvBool("IDEMPOTENCY_ENABLED", true),
			CORSOrigins:       parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser:       getEnv("SWAGGER_USER", ""),
			SwaggerPass:       getEnv("SWAGGER_PASS", ""),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "dispatch_service"),
			AuditTTL:                       getEnvDuration("AUDIT_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Redis: RedisConfig{
			Enabled:        getEnvBool("REDIS_ENABLED", false),
			Addr:           getEnv("REDIS_ADDR", "localhost:6379"),
			Password:       getEnv("REDIS_PASSWORD", ""),
			DB:             getEnvInt("REDIS_DB", 0),
			DraftTTL:       getEnvDuration("DRAFT_TTL", 24*time.Hour),
			VehicleLockTTL: getEnvDuration("VEHICLE_LOCK_TTL", 10*time.Second),
			IdempotencyTTL: getEnvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
		},
		Dispatch: DispatchConfig{
			StrictCapacity:    getEnvBool("STRICT_CAPACITY", false),
			SnapshotInterval:  getEnvDuration("SNAPSHOT_INTERVAL", 5*time.Second),
			SeedFile:          getEnv("CATALOG_SEED_FILE", ""),
			DraftSyncWorkers:  getEnvInt("DRAFT_SYNC_WORKERS", 4),
			DraftSyncBuffer:   getEnvInt("DRAFT_SYNC_BUFFER", 256),
			AuditBufferSize:   getEnvInt("AUDIT_BUFFER_SIZE", 1000),
			AuditWorkers:      getEnvInt("AUDIT_WORKERS", 2),
			AuditWriteTimeout: getEnvDuration("AUDIT_WRITE_TIMEOUT", 5*time.Second),
		},
		Sessions: SessionConfig{
			Capacity: getEnvInt("SESSION_CAPACITY", 10000),
			IdleTTL:  getEnvDuration("SESSION_IDLE_TTL", 2*time.Hour),
			Shards:   getEnvInt("SESSION_SHARDS", 16),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Pretty: getEnvBool("LOG_PRETTY", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
