package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Store.validate(c.Firebase),
		c.Resilience.validate(),
		c.Streak.validate(),
		c.Scheduler.validate(),
		c.Auth.validate(c.Firebase),
		c.Photos.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text", "pretty":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text, pretty; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (s *StoreConfig) validate(fb FirebaseConfig) error {
	var errs []error

	switch s.Driver {
	case StoreMemory:
	case StoreSQLite, StorePostgres:
		if s.DSN == "" {
			errs = append(errs, fmt.Errorf("store.dsn must not be empty when driver is %s", s.Driver))
		}
	case StoreFirestore:
		if fb.ProjectID == "" {
			errs = append(errs, errors.New("firebase.project_id must not be empty when store.driver is firestore"))
		}
		if s.Firestore.GroupsCollection == "" || s.Firestore.PostsCollection == "" {
			errs = append(errs, errors.New("store.firestore collections must not be empty"))
		}
	default:
		errs = append(errs, fmt.Errorf("store.driver must be one of: memory, sqlite, postgres, firestore; got %q", s.Driver))
	}

	return errors.Join(errs...)
}

func (r *ResilienceConfig) validate() error {
	var errs []error

	if r.Timeout <= 0 {
		errs = append(errs, errors.New("resilience.timeout must be positive"))
	}
	if r.Retry.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("resilience.retry.max_attempts must be >= 1, got %d", r.Retry.MaxAttempts))
	}
	if r.Retry.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("resilience.retry.multiplier must be positive, got %f", r.Retry.Multiplier))
	}
	if r.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("resilience.circuit_breaker.max_failures must be >= 1, got %d",
			r.CircuitBreaker.MaxFailures))
	}
	if r.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("resilience.rate_limit.requests_per_second must not be negative"))
	}
	if r.RateLimit.RequestsPerSecond > 0 && r.RateLimit.Burst < 1 {
		errs = append(errs, errors.New("resilience.rate_limit.burst must be >= 1 when rate limiting is enabled"))
	}

	return errors.Join(errs...)
}

func (s *StreakConfig) validate() error {
	var errs []error

	if _, err := time.LoadLocation(s.TimeZone); err != nil || s.TimeZone == "" {
		errs = append(errs, fmt.Errorf("streak.time_zone must be an IANA zone name, got %q", s.TimeZone))
	}
	if s.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("streak.max_attempts must be >= 1, got %d", s.MaxAttempts))
	}

	return errors.Join(errs...)
}

func (s *SchedulerConfig) validate() error {
	var errs []error

	if s.Enabled {
		if _, err := cron.ParseStandard(s.Spec); err != nil {
			errs = append(errs, fmt.Errorf("scheduler.spec %q: %w", s.Spec, err))
		}
	}
	if s.Timeout <= 0 {
		errs = append(errs, errors.New("scheduler.timeout must be positive"))
	}
	if s.Workers < 1 {
		errs = append(errs, fmt.Errorf("scheduler.workers must be >= 1, got %d", s.Workers))
	}

	switch s.Lock.Driver {
	case LockNone:
	case LockRedis:
		if s.Lock.RedisAddr == "" {
			errs = append(errs, errors.New("scheduler.lock.redis_addr must not be empty when lock driver is redis"))
		}
		if s.Lock.TTL <= 0 {
			errs = append(errs, errors.New("scheduler.lock.ttl must be positive"))
		}
	default:
		errs = append(errs, fmt.Errorf("scheduler.lock.driver must be one of: none, redis; got %q", s.Lock.Driver))
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) validate(fb FirebaseConfig) error {
	switch a.Driver {
	case AuthJWT:
		if len(a.JWTSecret) < 32 {
			return errors.New("auth.jwt_secret must be at least 32 bytes when driver is jwt")
		}
	case AuthFirebase:
		if fb.ProjectID == "" {
			return errors.New("firebase.project_id must not be empty when auth.driver is firebase")
		}
	default:
		return fmt.Errorf("auth.driver must be one of: jwt, firebase; got %q", a.Driver)
	}
	return nil
}

func (p *PhotosConfig) validate() error {
	var errs []error

	if p.Dir == "" {
		errs = append(errs, errors.New("photos.dir must not be empty"))
	}
	if p.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("photos.max_upload_bytes must be positive, got %d", p.MaxUploadBytes))
	}
	if p.MaxDimension <= 0 {
		errs = append(errs, fmt.Errorf("photos.max_dimension must be positive, got %d", p.MaxDimension))
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
