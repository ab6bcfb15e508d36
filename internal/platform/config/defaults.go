package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultStreakMaxAttempts = 3
	defaultResetWorkers      = 8

	defaultMaxUploadBytes = 10 << 20
	defaultMaxDimension   = 2048
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	return map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "25s",

		"log.level":  "info",
		"log.format": "json",

		"store.driver":                      StoreMemory,
		"store.dsn":                         "",
		"store.firestore.groups_collection": "groups",
		"store.firestore.posts_collection":  "groupPhotos",

		"firebase.project_id":       "",
		"firebase.credentials_file": "",

		"resilience.timeout":                         "5s",
		"resilience.retry.max_attempts":              defaultRetryMaxAttempts,
		"resilience.retry.initial_interval":          "100ms",
		"resilience.retry.max_interval":              "2s",
		"resilience.retry.multiplier":                defaultRetryMultiplier,
		"resilience.circuit_breaker.max_failures":    defaultCircuitBreakerMaxFailures,
		"resilience.circuit_breaker.timeout":         "30s",
		"resilience.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"resilience.rate_limit.requests_per_second":  0,
		"resilience.rate_limit.burst":                0,

		"streak.time_zone":    "Europe/Skopje",
		"streak.max_attempts": defaultStreakMaxAttempts,

		"scheduler.enabled":             true,
		"scheduler.spec":                "0 0 * * *",
		"scheduler.timeout":             "5m",
		"scheduler.workers":             defaultResetWorkers,
		"scheduler.lock.driver":         LockNone,
		"scheduler.lock.redis_addr":     "",
		"scheduler.lock.redis_password": "",
		"scheduler.lock.redis_db":       0,
		"scheduler.lock.ttl":            "10m",

		"auth.driver":      AuthJWT,
		"auth.jwt_secret":  "",
		"auth.jwt_issuer":  "",
		"auth.admin_users": []string{},

		"photos.dir":              "data/photos",
		"photos.public_base_url":  "/photos",
		"photos.max_upload_bytes": defaultMaxUploadBytes,
		"photos.max_dimension":    defaultMaxDimension,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "streak-service",
	}
}
