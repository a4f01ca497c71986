package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/metrics"
	"github.com/bagdasarian/time-worked-alert/internal/repository"
)

type overworkService struct {
	directoryRepo   repository.DirectoryRepository
	reportRepo      repository.ReportRepository
	filter          *MembershipFilter
	engine          *DecisionEngine
	notifier        Notifier
	defaultCapacity int64
	location        *time.Location
	logger          *zap.Logger
}

// NewOverworkService создает новый экземпляр OverworkService.
// notifier может быть nil, если сервис используется только в dry-run;
// запуск без DryRun тогда завершается ошибкой CONFIG.
func NewOverworkService(
	logger *zap.Logger,
	directoryRepo repository.DirectoryRepository,
	reportRepo repository.ReportRepository,
	filter *MembershipFilter,
	engine *DecisionEngine,
	notifier Notifier,
	defaultCapacity int64,
	location *time.Location,
) OverworkService {
	if location == nil {
		location = time.Local
	}
	return &overworkService{
		directoryRepo:   directoryRepo,
		reportRepo:      reportRepo,
		filter:          filter,
		engine:          engine,
		notifier:        notifier,
		defaultCapacity: defaultCapacity,
		location:        location,
		logger:          logger.Named("overwork"),
	}
}

// Run выполняет один проход: справочник -> фильтр -> отчет -> решения -> отправка.
// В выходные ничего не делает, если не включено IncludeWeekends.
func (s *overworkService) Run(ctx context.Context, now time.Time, opts RunOptions) (*RunResult, error) {
	local := now.In(s.location)
	result := &RunResult{
		Day:    local.Format(time.DateOnly),
		DryRun: opts.DryRun,
	}

	if !opts.IncludeWeekends && isWeekend(local) {
		s.logger.Info("weekend, skipping run", zap.String("day", result.Day))
		result.Skipped = true
		metrics.RunsTotal.WithLabelValues("skipped").Inc()
		return result, nil
	}

	if err := s.run(ctx, local, opts, result); err != nil {
		metrics.RunsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	metrics.RunsTotal.WithLabelValues("ok").Inc()
	return result, nil
}

func (s *overworkService) run(ctx context.Context, day time.Time, opts RunOptions, result *RunResult) error {
	if !opts.DryRun && s.notifier == nil {
		return domain.NewConfigError("notifier not configured: enable dry run or set TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID")
	}

	people, err := s.directoryRepo.ListPeople(ctx)
	if err != nil {
		return fmt.Errorf("list people: %w", err)
	}
	teams, err := s.directoryRepo.ListTeams(ctx)
	if err != nil {
		return fmt.Errorf("list teams: %w", err)
	}

	report, err := s.reportRepo.FetchTimeWorked(ctx, day)
	if err != nil {
		return fmt.Errorf("fetch time worked: %w", err)
	}

	// фильтрация только после полной загрузки справочника и отчета
	eligible := s.filter.Apply(AttachTeams(people, teams), teams)
	result.Eligible = len(eligible)

	aggregated := Aggregate(report, s.defaultCapacity)
	for id := range aggregated {
		if _, ok := eligible[id]; ok {
			result.Evaluated++
		}
	}
	metrics.PeopleEvaluated.Set(float64(result.Evaluated))

	result.Decisions = s.engine.Evaluate(aggregated, eligible)
	metrics.AlertsTriggered.Add(float64(len(result.Decisions)))

	s.logger.Info("time worked evaluated",
		zap.String("day", result.Day),
		zap.Int("people", len(people)),
		zap.Int("eligible", result.Eligible),
		zap.Int("evaluated", result.Evaluated),
		zap.Int("alerts", len(result.Decisions)),
	)

	for _, decision := range result.Decisions {
		if opts.DryRun {
			s.logger.Info("alert (dry run)",
				zap.String("person_id", decision.Person.ID),
				zap.String("message", decision.Message),
			)
			continue
		}
		if err := s.notifier.Send(ctx, decision.Message); err != nil {
			return fmt.Errorf("send alert for %s: %w", decision.Person.ID, err)
		}
		result.Sent++
		s.logger.Info("alert sent",
			zap.String("person_id", decision.Person.ID),
			zap.Int64("worked_seconds", decision.WorkedSeconds),
			zap.Int64("capacity_seconds", decision.CapacitySeconds),
		)
	}

	return nil
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
