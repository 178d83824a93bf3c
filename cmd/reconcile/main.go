package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"orbital-booking/cmd/bootstrap"
	"orbital-booking/internal/pkg/config"
	"orbital-booking/internal/usecase/reconcile"

	"github.com/robfig/cron"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Consistency guard for seat counters, orphans and travel dates",
	}

	rootCmd.PersistentFlags().Bool("fix", false, "Apply seat counter corrections instead of only reporting drift")

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(scheduleCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one reconciliation pass and print the report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fix, _ := cmd.Flags().GetBool("fix")
			return withGuard(cmd.Context(), fix, func(ctx context.Context, guard *reconcile.Guard, _ config.Config) error {
				report, err := guard.Run(ctx)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			})
		},
	}
}

func scheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run reconciliation on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fix, _ := cmd.Flags().GetBool("fix")
			spec, _ := cmd.Flags().GetString("schedule")
			return withGuard(cmd.Context(), fix, func(ctx context.Context, guard *reconcile.Guard, cfg config.Config) error {
				if spec == "" {
					spec = cfg.Reconcile.Schedule
				}

				c := cron.New()
				if err := c.AddFunc(spec, func() {
					if _, err := guard.Run(ctx); err != nil {
						slog.Error("scheduled reconciliation failed", "error", err.Error())
					}
				}); err != nil {
					return fmt.Errorf("invalid schedule %q: %w", spec, err)
				}

				slog.Info("reconciliation scheduled", "schedule", spec, "fix", cfg.Reconcile.Fix)
				c.Start()
				<-ctx.Done()
				c.Stop()
				return nil
			})
		},
	}
	cmd.Flags().String("schedule", "", "Cron spec, defaults to RECONCILE_SCHEDULE")
	return cmd
}

func withGuard(parent context.Context, fix bool, fn func(ctx context.Context, guard *reconcile.Guard, cfg config.Config) error) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		guard *reconcile.Guard
		cfg   config.Config
	)
	app := fx.New(
		bootstrap.ReconcileModule,
		fx.Decorate(func(c config.Config) config.Config {
			if fix {
				c.Reconcile.Fix = true
			}
			return c
		}),
		fx.Populate(&guard, &cfg),
		fx.NopLogger,
	)
	if err := app.Start(ctx); err != nil {
		return err
	}
	defer func() {
		if err := app.Stop(context.Background()); err != nil {
			slog.Error("failed to stop reconcile app", "error", err)
		}
	}()

	return fn(ctx, guard, cfg)
}
