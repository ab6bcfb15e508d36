// Package wiring registers the dependency graph shared by the HTTP server
// and the operator CLI in a samber/do injector: calendar, store backend,
// run lock, and the application services.
package wiring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	firebase "firebase.google.com/go/v4"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do/v2"

	"github.com/photostreak/streak-service/internal/adapters/lock"
	"github.com/photostreak/streak-service/internal/adapters/stores/firestore"
	"github.com/photostreak/streak-service/internal/adapters/stores/guarded"
	"github.com/photostreak/streak-service/internal/adapters/stores/memory"
	"github.com/photostreak/streak-service/internal/adapters/stores/sqlstore"
	"github.com/photostreak/streak-service/internal/app"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/platform/config"
	platfirebase "github.com/photostreak/streak-service/internal/platform/firebase"
	"github.com/photostreak/streak-service/internal/platform/health"
	"github.com/photostreak/streak-service/internal/platform/resilience"
	"github.com/photostreak/streak-service/internal/platform/telemetry"
	"github.com/photostreak/streak-service/internal/ports"
)

// Lifecycle collects the close funcs of resources opened by providers.
// Close runs them in reverse registration order.
type Lifecycle struct {
	mu      sync.Mutex
	closers []namedCloser
}

type namedCloser struct {
	name string
	fn   func(context.Context) error
}

// OnClose registers fn to run on Close.
func (l *Lifecycle) OnClose(name string, fn func(context.Context) error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.closers = append(l.closers, namedCloser{name: name, fn: fn})
}

// Close releases every registered resource and joins their errors.
func (l *Lifecycle) Close(ctx context.Context) error {
	l.mu.Lock()
	closers := slices.Clone(l.closers)
	l.closers = nil
	l.mu.Unlock()

	var errs []error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].fn(ctx); err != nil {
			errs = append(errs, fmt.Errorf("closing %s: %w", closers[i].name, err))
		}
	}
	return errors.Join(errs...)
}

// Backend is the selected group store and post ledger.
type Backend struct {
	Store   guarded.Backend
	Checker ports.HealthChecker
}

// Register provides the shared graph. The injector must already hold cfg,
// logger and *telemetry.Metrics (which may be nil).
func Register(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.ProvideValue(injector, &Lifecycle{})

	do.Provide(injector, func(_ do.Injector) (*calendar.Calendar, error) {
		return calendar.New(cfg.Streak.TimeZone)
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*firebase.App, error) {
		return platfirebase.NewApp(context.Background(), cfg.Firebase)
	})

	do.Provide(injector, func(i do.Injector) (*Backend, error) {
		return openBackend(i, cfg, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.GroupStore, error) {
		b, err := do.Invoke[*Backend](i)
		if err != nil {
			return nil, err
		}
		return b.Store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.PostLedger, error) {
		b, err := do.Invoke[*Backend](i)
		if err != nil {
			return nil, err
		}
		return b.Store, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RunLock, error) {
		return openRunLock(i, cfg)
	})

	do.Provide(injector, func(i do.Injector) (ports.StreakService, error) {
		opts := []app.StreakOption{app.WithMaxAttempts(cfg.Streak.MaxAttempts)}
		if rec := recorder(i); rec != nil {
			opts = append(opts, app.WithStreakRecorder(rec))
		}
		return app.NewStreakService(
			do.MustInvoke[ports.GroupStore](i),
			do.MustInvoke[ports.PostLedger](i),
			do.MustInvoke[*calendar.Calendar](i),
			logger,
			opts...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ResetService, error) {
		runLock, err := do.Invoke[ports.RunLock](i)
		if err != nil {
			return nil, err
		}
		opts := []app.ResetOption{
			app.WithResetWorkers(cfg.Scheduler.Workers),
			app.WithResetTimeout(cfg.Scheduler.Timeout),
			app.WithResetMaxAttempts(cfg.Streak.MaxAttempts),
			app.WithRunLock(runLock),
			app.WithRunLockTTL(cfg.Scheduler.Lock.TTL),
		}
		if rec := recorder(i); rec != nil {
			opts = append(opts, app.WithResetRecorder(rec))
		}
		return app.NewResetJob(
			do.MustInvoke[ports.GroupStore](i),
			do.MustInvoke[*calendar.Calendar](i),
			logger,
			opts...,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.GroupService, error) {
		return app.NewGroupService(
			do.MustInvoke[ports.GroupStore](i),
			do.MustInvoke[ports.PostLedger](i),
			do.MustInvoke[*calendar.Calendar](i),
			logger,
		), nil
	})
}

// recorder returns the metrics recorder, or nil when telemetry is disabled.
func recorder(i do.Injector) ports.StreakRecorder {
	metrics, err := do.Invoke[*telemetry.Metrics](i)
	if err != nil || metrics == nil {
		return nil
	}
	return metrics
}

func openBackend(i do.Injector, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	lc := do.MustInvoke[*Lifecycle](i)
	metrics, _ := do.Invoke[*telemetry.Metrics](i)
	ctx := context.Background()

	switch cfg.Store.Driver {
	case config.StoreMemory:
		s := memory.New()
		return &Backend{Store: s, Checker: s}, nil

	case config.StoreSQLite, config.StorePostgres:
		s, err := sqlstore.Open(ctx, cfg.Store.Driver, cfg.Store.DSN)
		if err != nil {
			return nil, fmt.Errorf("opening %s store: %w", cfg.Store.Driver, err)
		}
		lc.OnClose(s.Name(), func(context.Context) error { return s.Close() })
		return guard(s, s, cfg, metrics, logger), nil

	case config.StoreFirestore:
		fbApp, err := do.Invoke[*firebase.App](i)
		if err != nil {
			return nil, err
		}
		client, err := fbApp.Firestore(ctx)
		if err != nil {
			return nil, fmt.Errorf("creating firestore client: %w", err)
		}
		lc.OnClose("firestore", func(context.Context) error { return client.Close() })
		s := firestore.New(client, cfg.Store.Firestore.GroupsCollection, cfg.Store.Firestore.PostsCollection)
		return guard(s, s, cfg, metrics, logger), nil

	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

// guard wraps a remote backend with the resilience policy. Readiness reports
// the breaker and the backend together.
func guard(
	next guarded.Backend,
	checker ports.HealthChecker,
	cfg *config.Config,
	metrics *telemetry.Metrics,
	logger *slog.Logger,
) *Backend {
	g := resilience.New(&cfg.Resilience, checker.Name(), metrics, logger)
	return &Backend{
		Store:   guarded.New(next, g),
		Checker: combinedChecker{name: checker.Name(), checks: []ports.HealthChecker{g, checker}},
	}
}

func openRunLock(i do.Injector, cfg *config.Config) (ports.RunLock, error) {
	switch cfg.Scheduler.Lock.Driver {
	case config.LockRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Scheduler.Lock.RedisAddr,
			Password: cfg.Scheduler.Lock.RedisPassword,
			DB:       cfg.Scheduler.Lock.RedisDB,
		})
		do.MustInvoke[*Lifecycle](i).OnClose("redis", func(context.Context) error { return client.Close() })
		return lock.NewRedisLock(client), nil
	default:
		return lock.NewLocalLock(), nil
	}
}

// combinedChecker reports the first failing check under one name.
type combinedChecker struct {
	name   string
	checks []ports.HealthChecker
}

func (c combinedChecker) Name() string { return c.name }

func (c combinedChecker) HealthCheck(ctx context.Context) error {
	for _, chk := range c.checks {
		if err := chk.HealthCheck(ctx); err != nil {
			return err
		}
	}
	return nil
}
