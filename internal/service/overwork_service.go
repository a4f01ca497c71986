package service

import (
	"context"
	"time"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
)

// Notifier доставляет текст оповещения
type Notifier interface {
	Send(ctx context.Context, text string) error
}

type RunOptions struct {
	DryRun          bool
	IncludeWeekends bool
}

type RunResult struct {
	Day       string                 `json:"day"`
	Skipped   bool                   `json:"skipped"`
	Eligible  int                    `json:"eligible"`
	Evaluated int                    `json:"evaluated"`
	Decisions []domain.AlertDecision `json:"decisions"`
	Sent      int                    `json:"sent"`
	DryRun    bool                   `json:"dry_run"`
}

type OverworkService interface {
	Run(ctx context.Context, now time.Time, opts RunOptions) (*RunResult, error)
}
