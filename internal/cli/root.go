// Package cli собирает команды time-worked-alert и связывает зависимости.
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/config"
	"github.com/bagdasarian/time-worked-alert/internal/logger"
)

// env - общее состояние команд, заполняется в PersistentPreRunE
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

func NewRootCmd(version string) *cobra.Command {
	cmd, _ := newRootCmd(version)
	return cmd
}

// Execute выполняет команду с аргументами args. Ошибка пишется в лог zap:
// логгер команды, а если он еще не создан (ошибка конфигурации) - fallback.
func Execute(ctx context.Context, version string, args []string, fallback *zap.Logger) error {
	cmd, e := newRootCmd(version)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return nil
	}

	log := fallback
	if e.logger != nil {
		log = e.logger
	}
	log.Error("command failed", zap.Error(err))
	_ = log.Sync()
	return err
}

func newRootCmd(version string) (*cobra.Command, *env) {
	e := &env{}
	var logLevel string

	cmd := &cobra.Command{
		Use:           "time-worked-alert",
		Short:         "Alerts leaders when people reach their daily worked-time capacity",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			log, err := logger.New(cfg.Log.Level)
			if err != nil {
				return err
			}
			e.cfg = cfg
			e.logger = log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (default: LOG_LEVEL or info)")

	cmd.AddCommand(newCheckCmd(e))
	cmd.AddCommand(newServeCmd(e))
	cmd.AddCommand(newRosterCmd(e))

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd, e
}
