package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/learnquest/internal/app"
	"github.com/riskibarqy/learnquest/internal/config"
	"github.com/riskibarqy/learnquest/internal/interfaces/httpapi"
	"github.com/riskibarqy/learnquest/internal/platform/logging"
	"github.com/spf13/cobra"
)

var Version = "dev"

type cliState struct {
	envFile string
	cfg     config.Config
	logger  *logging.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	state := &cliState{}

	rootCmd := &cobra.Command{
		Use:           "learnctl",
		Short:         "LearnQuest admin tooling",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.LoadDotEnv(state.envFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			state.cfg = cfg
			state.logger = logging.NewJSON(cfg.LogLevel, "learnctl")
			logging.SetDefault(state.logger)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&state.envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	rootCmd.AddCommand(migrateCmd(state))
	rootCmd.AddCommand(recomputeCmd(state))
	rootCmd.AddCommand(ensureBadgesCmd(state))
	rootCmd.AddCommand(awardCoinsCmd(state))

	return rootCmd
}

// withServices opens the configured stores for the duration of fn. Events are
// not published from the CLI.
func (s *cliState) withServices(ctx context.Context, fn func(context.Context, httpapi.Services) error) error {
	catalog, err := app.LoadCatalog(s.cfg)
	if err != nil {
		return err
	}
	stores, err := app.OpenStores(ctx, s.cfg, s.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := stores.Close(context.Background()); err != nil {
			s.logger.Warn("close stores failed", "error", err)
		}
	}()

	return fn(ctx, app.NewServices(stores, catalog, nil, s.logger))
}
