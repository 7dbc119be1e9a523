package main

import (
	"context"
	"fmt"

	"github.com/riskibarqy/learnquest/internal/interfaces/httpapi"
	"github.com/spf13/cobra"
)

func recomputeCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "recompute",
		Short: "Recompute and persist leaderboard ranks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.withServices(cmd.Context(), func(ctx context.Context, services httpapi.Services) error {
				entries, err := services.Leaderboard.List(ctx)
				if err != nil {
					return err
				}
				for _, entry := range entries {
					rank := 0
					if entry.CurrentRank != nil {
						rank = *entry.CurrentRank
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%4d  %-24s %8d  %s\n", rank, entry.Name, entry.Coins, entry.RankChange)
				}
				return nil
			})
		},
	}
}

func ensureBadgesCmd(state *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-badges <user-id>...",
		Short: "Materialize the badge catalog for the given users",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.withServices(cmd.Context(), func(ctx context.Context, services httpapi.Services) error {
				for _, userID := range args {
					badges, err := services.Badges.EnsureCatalog(ctx, userID)
					if err != nil {
						return fmt.Errorf("ensure badges user=%s: %w", userID, err)
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s: %d badges\n", userID, len(badges))
				}
				return nil
			})
		},
	}
}

func awardCoinsCmd(state *cliState) *cobra.Command {
	var amount int64

	cmd := &cobra.Command{
		Use:   "award-coins <user-id>",
		Short: "Award coins to a learner and update the leaderboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return state.withServices(cmd.Context(), func(ctx context.Context, services httpapi.Services) error {
				updated, err := services.Profiles.AwardCoins(ctx, args[0], amount)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s now has %d coins\n", updated.UserID, updated.Coins)
				return nil
			})
		},
	}
	cmd.Flags().Int64VarP(&amount, "amount", "a", 0, "coins to award (1..1000)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}
