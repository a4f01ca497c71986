package cli

import (
	"encoding/json"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/metrics"
	"github.com/bagdasarian/time-worked-alert/internal/service"
)

const pushJobName = "time_worked_alert"

func newCheckCmd(e *env) *cobra.Command {
	var (
		dryRun          bool
		includeWeekends bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run one evaluation pass for today and send alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := e.cfg
			cfg.DryRun = cfg.DryRun || dryRun
			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx := cmd.Context()
			svc, err := newOverworkService(ctx, cfg, e.logger)
			if err != nil {
				return err
			}

			result, runErr := svc.Run(ctx, time.Now(), service.RunOptions{
				DryRun:          cfg.DryRun,
				IncludeWeekends: cfg.Alert.IncludeWeekends || includeWeekends,
			})

			if cfg.Metrics.PushgatewayURL != "" {
				if err := metrics.Push(cfg.Metrics.PushgatewayURL, pushJobName); err != nil {
					e.logger.Warn("metrics push failed", zap.Error(err))
				}
			}

			if runErr != nil {
				return runErr
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Evaluate and print alerts without sending them (env: DRY_RUN)")
	cmd.Flags().BoolVar(&includeWeekends, "include-weekends", false, "Run on Saturday and Sunday too (env: INCLUDE_WEEKENDS)")

	return cmd
}
