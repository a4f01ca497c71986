package repository

import (
	"context"
	"net/url"
	"time"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
)

type ReportRepository interface {
	FetchReport(ctx context.Context, path string, params url.Values) (*domain.Report, error)
	FetchTimeWorked(ctx context.Context, day time.Time) (*domain.Report, error)
}
