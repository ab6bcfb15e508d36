// Package main is the entry point for the streak service. It wires all
// dependencies using samber/do v2, starts the HTTP server and the daily reset
// scheduler, and handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/photostreak/streak-service/internal/adapters/http"
	"github.com/photostreak/streak-service/internal/adapters/http/handlers"
	"github.com/photostreak/streak-service/internal/adapters/http/middleware"

	"github.com/photostreak/streak-service/internal/adapters/auth"
	"github.com/photostreak/streak-service/internal/adapters/photos"
	"github.com/photostreak/streak-service/internal/app"
	"github.com/photostreak/streak-service/internal/domain/calendar"
	"github.com/photostreak/streak-service/internal/platform/config"
	"github.com/photostreak/streak-service/internal/platform/logging"
	"github.com/photostreak/streak-service/internal/platform/scheduler"
	"github.com/photostreak/streak-service/internal/platform/telemetry"
	"github.com/photostreak/streak-service/internal/ports"
	"github.com/photostreak/streak-service/internal/wiring"

	firebase "firebase.google.com/go/v4"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second

	adminPathPrefix = "/api/v1/admin/"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return fmt.Errorf("loading .env: %w", err)
	}

	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := wiring.InitTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.Metrics)

	wiring.Register(injector, cfg, logger)
	registerDependencies(injector, cfg, logger)

	lifecycle := do.MustInvoke[*wiring.Lifecycle](injector)
	defer closeResources(lifecycle, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	registerHealthCheckers(injector)

	sched, err := startScheduler(injector, cfg, logger)
	if err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests, then let a running reset finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	if sched != nil {
		if err := sched.Stop(shutdownCtx); err != nil {
			logger.Error("scheduler shutdown error", slog.Any("error", err))
		}
	}

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

func closeResources(lc *wiring.Lifecycle, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()
	if err := lc.Close(ctx); err != nil {
		logger.Error("closing resources", slog.Any("error", err))
	}
}

// registerHealthCheckers adds the store, lock and photo checks to the
// readiness registry after the graph is wired.
func registerHealthCheckers(injector do.Injector) {
	registry := do.MustInvoke[ports.HealthRegistry](injector)

	backend := do.MustInvoke[*wiring.Backend](injector)
	registry.Register(backend.Checker)

	if hc, ok := do.MustInvoke[ports.RunLock](injector).(ports.HealthChecker); ok {
		registry.Register(hc)
	}

	registry.Register(do.MustInvoke[*photos.FSStore](injector))
}

func startScheduler(injector do.Injector, cfg *config.Config, logger *slog.Logger) (*scheduler.Scheduler, error) {
	sched, err := do.Invoke[*scheduler.Scheduler](injector)
	if err != nil {
		return nil, fmt.Errorf("creating scheduler: %w", err)
	}
	if sched == nil {
		logger.Info("daily reset scheduler disabled")
		return nil, nil
	}

	sched.Start()
	logger.Info("daily reset scheduled",
		slog.String("spec", cfg.Scheduler.Spec),
		slog.String("time_zone", do.MustInvoke[*calendar.Calendar](injector).Location().String()),
		slog.Time("next_run", sched.Next()),
	)
	return sched, nil
}

func registerDependencies(injector do.Injector, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (ports.TokenVerifier, error) {
		switch cfg.Auth.Driver {
		case config.AuthFirebase:
			fbApp, err := do.Invoke[*firebase.App](i)
			if err != nil {
				return nil, err
			}
			return auth.NewFirebaseVerifier(context.Background(), fbApp)
		default:
			return auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer), nil
		}
	})

	do.Provide(injector, func(_ do.Injector) (*photos.FSStore, error) {
		return photos.NewFSStore(cfg.Photos)
	})

	do.Provide(injector, func(i do.Injector) (ports.PostService, error) {
		return app.NewPostService(
			do.MustInvoke[ports.GroupStore](i),
			do.MustInvoke[ports.PostLedger](i),
			do.MustInvoke[*photos.FSStore](i),
			do.MustInvoke[ports.StreakService](i),
			do.MustInvoke[*calendar.Calendar](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.GroupHandler, error) {
		return handlers.NewGroupHandler(
			do.MustInvoke[ports.GroupService](i),
			do.MustInvoke[ports.StreakService](i),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.PostHandler, error) {
		return handlers.NewPostHandler(do.MustInvoke[ports.PostService](i), cfg.Photos.MaxUploadBytes), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.AdminHandler, error) {
		return handlers.NewAdminHandler(do.MustInvoke[ports.ResetService](i)), nil
	})

	// Nil when disabled; the health handler then omits next_reset.
	do.Provide(injector, func(i do.Injector) (*scheduler.Scheduler, error) {
		if !cfg.Scheduler.Enabled {
			return nil, nil
		}
		cal := do.MustInvoke[*calendar.Calendar](i)
		return scheduler.New(cfg.Scheduler.Spec, cal.Location(), do.MustInvoke[ports.ResetService](i), logger)
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		opts := []handlers.HealthOption{handlers.WithCalendar(do.MustInvoke[*calendar.Calendar](i))}
		sched, err := do.Invoke[*scheduler.Scheduler](i)
		if err != nil {
			return nil, err
		}
		if sched != nil {
			opts = append(opts, handlers.WithNextReset(sched.Next))
		}
		return handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i), opts...), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		verifier, err := do.Invoke[ports.TokenVerifier](i)
		if err != nil {
			return nil, fmt.Errorf("creating token verifier: %w", err)
		}
		store := do.MustInvoke[*photos.FSStore](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		routes := adapthttp.Routes{
			Groups:     do.MustInvoke[*handlers.GroupHandler](i),
			Posts:      do.MustInvoke[*handlers.PostHandler](i),
			Admin:      do.MustInvoke[*handlers.AdminHandler](i),
			Health:     do.MustInvoke[*handlers.HealthHandler](i),
			Photos:     store.Handler(),
			PhotosPath: photosPath(cfg.Photos.PublicBaseURL),
		}

		return adapthttp.NewRouter(routes, verifier, cfg.Auth.AdminUsers,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			// A manual reset walks every group and must not be cut short.
			middleware.Timeout(cfg.Server.RequestTimeout,
				middleware.WithRouteTimeout(nethttp.MethodPost, adminPathPrefix, 0),
			),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler, err := do.Invoke[nethttp.Handler](i)
		if err != nil {
			return nil, err
		}
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// photosPath returns the local route for the photo base URL. An absolute URL
// on another host means photos are served elsewhere, so no route is mounted.
func photosPath(baseURL string) string {
	u, err := url.Parse(baseURL)
	if err != nil || u.Host != "" {
		return ""
	}
	return u.Path
}
