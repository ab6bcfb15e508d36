package main

import (
	"errors"
	"fmt"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/photostreak/streak-service/internal/adapters/http/dto"
	"github.com/photostreak/streak-service/internal/ports"
)

func newEvaluateCmd(opts *rootOptions) *cobra.Command {
	var groupID, userID string

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a group's streak on behalf of a member",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if groupID == "" || userID == "" {
				return errors.New("--group and --user are required")
			}

			s, err := opts.open(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context())

			streaks, err := do.Invoke[ports.StreakService](s.injector)
			if err != nil {
				return fmt.Errorf("wiring streak service: %w", err)
			}

			res, err := streaks.Evaluate(cmd.Context(), groupID, userID)
			if err != nil {
				return fmt.Errorf("evaluating group %s: %w", groupID, err)
			}
			return printJSON(cmd, dto.ToEvaluateResponse(res))
		},
	}

	cmd.Flags().StringVar(&groupID, "group", "", "group ID")
	cmd.Flags().StringVar(&userID, "user", "", "member user ID the evaluation runs as")
	return cmd
}
