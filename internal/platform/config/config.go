// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Store drivers.
const (
	StoreMemory    = "memory"
	StoreSQLite    = "sqlite"
	StorePostgres  = "postgres"
	StoreFirestore = "firestore"
)

// Auth drivers.
const (
	AuthJWT      = "jwt"
	AuthFirebase = "firebase"
)

// Run lock drivers.
const (
	LockNone  = "none"
	LockRedis = "redis"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	Store      StoreConfig      `koanf:"store"`
	Firebase   FirebaseConfig   `koanf:"firebase"`
	Resilience ResilienceConfig `koanf:"resilience"`
	Streak     StreakConfig     `koanf:"streak"`
	Scheduler  SchedulerConfig  `koanf:"scheduler"`
	Auth       AuthConfig       `koanf:"auth"`
	Photos     PhotosConfig     `koanf:"photos"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// StoreConfig selects and configures the group store and post ledger backend.
type StoreConfig struct {
	Driver    string          `koanf:"driver"`
	DSN       string          `koanf:"dsn"`
	Firestore FirestoreConfig `koanf:"firestore"`
}

// FirestoreConfig names the collections used by the Firestore driver.
type FirestoreConfig struct {
	GroupsCollection string `koanf:"groups_collection"`
	PostsCollection  string `koanf:"posts_collection"`
}

// FirebaseConfig identifies the Firebase project shared by the Firestore
// store and the Firebase token verifier. An empty CredentialsFile uses
// application default credentials.
type FirebaseConfig struct {
	ProjectID       string `koanf:"project_id"`
	CredentialsFile string `koanf:"credentials_file"`
}

// ResilienceConfig holds the guard policy wrapped around remote stores.
type ResilienceConfig struct {
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds token bucket settings. Zero RequestsPerSecond disables limiting.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	Burst             int     `koanf:"burst"`
}

// StreakConfig holds streak evaluation settings.
type StreakConfig struct {
	TimeZone    string `koanf:"time_zone"`
	MaxAttempts int    `koanf:"max_attempts"`
}

// SchedulerConfig holds the daily reset trigger settings.
type SchedulerConfig struct {
	Enabled bool          `koanf:"enabled"`
	Spec    string        `koanf:"spec"`
	Timeout time.Duration `koanf:"timeout"`
	Workers int           `koanf:"workers"`
	Lock    LockConfig    `koanf:"lock"`
}

// LockConfig selects the run lock that keeps replicas from overlapping resets.
type LockConfig struct {
	Driver        string        `koanf:"driver"`
	RedisAddr     string        `koanf:"redis_addr"`
	RedisPassword string        `koanf:"redis_password"`
	RedisDB       int           `koanf:"redis_db"`
	TTL           time.Duration `koanf:"ttl"`
}

// AuthConfig selects how bearer tokens are verified. AdminUsers may trigger
// operator endpoints; env overrides take a comma-separated list.
type AuthConfig struct {
	Driver     string   `koanf:"driver"`
	JWTSecret  string   `koanf:"jwt_secret"`
	JWTIssuer  string   `koanf:"jwt_issuer"`
	AdminUsers []string `koanf:"admin_users"`
}

// PhotosConfig holds filesystem photo storage settings.
type PhotosConfig struct {
	Dir            string `koanf:"dir"`
	PublicBaseURL  string `koanf:"public_base_url"`
	MaxUploadBytes int64  `koanf:"max_upload_bytes"`
	MaxDimension   int    `koanf:"max_dimension"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
