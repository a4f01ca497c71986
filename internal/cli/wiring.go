package cli

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/config"
	"github.com/bagdasarian/time-worked-alert/internal/db"
	"github.com/bagdasarian/time-worked-alert/internal/fetcher"
	"github.com/bagdasarian/time-worked-alert/internal/notifier"
	"github.com/bagdasarian/time-worked-alert/internal/repository/postgres"
	"github.com/bagdasarian/time-worked-alert/internal/repository/runrun"
	"github.com/bagdasarian/time-worked-alert/internal/retry"
	"github.com/bagdasarian/time-worked-alert/internal/roster"
	"github.com/bagdasarian/time-worked-alert/internal/service"
)

// loadRoster возвращает встроенный справочник или читает его из Postgres
func loadRoster(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*roster.Roster, error) {
	if cfg.RosterSource != config.RosterSourcePostgres {
		return roster.Static(), nil
	}

	database, err := db.NewPostgres(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	defer database.Close()

	r, err := roster.Load(ctx, postgres.NewRosterRepository(database))
	if err != nil {
		return nil, err
	}
	logger.Info("roster loaded from postgres",
		zap.Int("leaders", len(r.Leaders())),
		zap.Int("excluded", len(r.ExcludedNames())),
	)
	return r, nil
}

// newOverworkService собирает конвейер из конфигурации.
// В dry-run отправитель в Telegram не создается.
func newOverworkService(ctx context.Context, cfg *config.Config, logger *zap.Logger) (service.OverworkService, error) {
	r, err := loadRoster(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	f := fetcher.New(logger, &http.Client{Timeout: cfg.HTTP.Timeout}, retry.Policy{
		Attempts:  cfg.HTTP.Retries,
		BaseDelay: cfg.HTTP.BackoffBase,
	})
	client := runrun.NewClient(f, cfg.Runrun.BaseURL, cfg.Runrun.AppKey, cfg.Runrun.UserToken)
	directoryRepo := runrun.NewDirectoryRepository(client)
	reportRepo := runrun.NewReportRepository(logger, client, cfg.Runrun.MaxPages)

	filter := service.NewMembershipFilter(r.ExcludedNames(), cfg.Alert.OnlyTeamIDs, cfg.Alert.ExcludeUserIDs)
	engine := service.NewDecisionEngine(cfg.Alert.Threshold, r)

	var sender service.Notifier
	if !cfg.DryRun {
		telegram, err := notifier.NewTelegramSender(logger, notifier.TelegramConfig{
			APIURL:        cfg.Telegram.APIURL,
			BotToken:      cfg.Telegram.BotToken,
			ChatID:        cfg.Telegram.ChatID,
			Timeout:       cfg.HTTP.Timeout,
			RatePerSecond: cfg.Telegram.RatePerSecond,
		})
		if err != nil {
			return nil, err
		}
		sender = telegram
	}

	return service.NewOverworkService(
		logger,
		directoryRepo,
		reportRepo,
		filter,
		engine,
		sender,
		cfg.Alert.DefaultCapacitySeconds,
		cfg.Alert.Location,
	), nil
}
