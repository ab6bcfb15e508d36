package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/photostreak/streak-service/internal/adapters/auth"
	"github.com/photostreak/streak-service/internal/platform/config"
)

const defaultTokenTTL = time.Hour

func newTokenCmd(opts *rootOptions) *cobra.Command {
	var (
		userID string
		name   string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for the jwt auth driver",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID == "" {
				return errors.New("--user is required")
			}

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}
			if cfg.Auth.Driver != config.AuthJWT {
				return fmt.Errorf("auth driver is %q: tokens can only be minted for %q", cfg.Auth.Driver, config.AuthJWT)
			}

			token, err := auth.NewJWTVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer).Issue(userID, name, ttl)
			if err != nil {
				return fmt.Errorf("issuing token: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "subject user ID")
	cmd.Flags().StringVar(&name, "name", "", "display name claim")
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "token lifetime")
	return cmd
}
