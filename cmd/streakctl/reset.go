package main

import (
	"encoding/json"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/ports"
)

func newResetCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Run the daily streak reset once",
		Long: "Applies today's day boundary to every group. Safe to re-run: groups " +
			"already rolled over today are skipped. Exits non-zero if any group failed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context())

			reset, err := do.Invoke[ports.ResetService](s.injector)
			if err != nil {
				return fmt.Errorf("wiring reset job: %w", err)
			}

			res, runErr := reset.RunReset(cmd.Context())
			if res != nil {
				if err := printJSON(cmd, dto.ToResetResponse(res)); err != nil {
					return err
				}
			}
			return runErr
		},
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
