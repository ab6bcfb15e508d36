package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/photostreak/streak-service/internal/platform/config"
	"github.com/photostreak/streak-service/internal/platform/logging"
	"github.com/photostreak/streak-service/internal/platform/telemetry"
	"github.com/photostreak/streak-service/internal/wiring"
)

type rootOptions struct {
	profile   string
	configDir string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "streakctl",
		Short:         "Operator commands for group streaks",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return config.LoadDotEnv(".env")
		},
	}

	cmd.PersistentFlags().StringVar(&opts.profile, "profile", "", "config profile (defaults to $APP_PROFILE)")
	cmd.PersistentFlags().StringVar(&opts.configDir, "config-dir", "", "directory holding base.yaml and profile files")

	cmd.AddCommand(
		newResetCmd(opts),
		newEvaluateCmd(opts),
		newTokenCmd(opts),
	)
	return cmd
}

func (o *rootOptions) loadConfig() (*config.Config, error) {
	profile := o.profile
	if profile == "" {
		profile = os.Getenv("APP_PROFILE")
	}
	if profile == "" {
		return nil, errors.New("--profile or APP_PROFILE is required (e.g. local, dev, prod)")
	}

	var loadOpts []config.Option
	if o.configDir != "" {
		loadOpts = append(loadOpts, config.WithConfigDir(o.configDir))
	}
	cfg, err := config.Load(profile, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// session is a wired dependency graph for one command invocation.
type session struct {
	cfg       *config.Config
	logger    *slog.Logger
	injector  do.Injector
	lifecycle *wiring.Lifecycle
}

func (o *rootOptions) open(stderr io.Writer) (*session, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format, stderr)

	injector := do.New()
	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue[*telemetry.Metrics](injector, nil)
	wiring.Register(injector, cfg, logger)

	return &session{
		cfg:       cfg,
		logger:    logger,
		injector:  injector,
		lifecycle: do.MustInvoke[*wiring.Lifecycle](injector),
	}, nil
}

func (s *session) Close(ctx context.Context) {
	if err := s.lifecycle.Close(ctx); err != nil {
		s.logger.Error("closing resources", slog.Any("error", err))
	}
}
