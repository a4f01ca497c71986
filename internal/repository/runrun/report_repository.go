package runrun

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/metrics"
)

const (
	TimeWorkedPath = "/reports/time_worked"
	PageSize       = 100
	DefaultMaxPage = 1000
)

type reportPage struct {
	Result   []domain.TimeRecord `json:"result"`
	Capacity []domain.TimeRecord `json:"capacity"`
}

type reportRepository struct {
	client   *Client
	maxPages int
	logger   *zap.Logger
}

func NewReportRepository(logger *zap.Logger, client *Client, maxPages int) *reportRepository {
	if maxPages <= 0 {
		maxPages = DefaultMaxPage
	}
	return &reportRepository{
		client:   client,
		maxPages: maxPages,
		logger:   logger.Named("report-reader"),
	}
}

// FetchTimeWorked читает отчет time_worked за один день с емкостью
func (r *reportRepository) FetchTimeWorked(ctx context.Context, day time.Time) (*domain.Report, error) {
	date := day.Format(time.DateOnly)
	params := url.Values{
		"group_by":         {"user_id,date"},
		"period_type":      {"custom_range"},
		"period_start":     {date},
		"period_end":       {date},
		"period_unit":      {"day"},
		"include_capacity": {"true"},
	}
	return r.FetchReport(ctx, TimeWorkedPath, params)
}

// FetchReport проходит все страницы отчета, пока в ответе есть rel="next".
// Если сервер сигнализирует продолжение дольше maxPages страниц - PROTOCOL.
func (r *reportRepository) FetchReport(ctx context.Context, path string, params url.Values) (*domain.Report, error) {
	report := &domain.Report{}

	for page := 1; ; page++ {
		query := url.Values{}
		for key, values := range params {
			query[key] = append([]string(nil), values...)
		}
		query.Set("page", strconv.Itoa(page))
		query.Set("limit", strconv.Itoa(PageSize))

		resp, err := r.client.get(ctx, path, query)
		if err != nil {
			return nil, err
		}
		metrics.ReportPages.Inc()

		body, err := decodeReportPage(resp.Body)
		if err != nil {
			return nil, domain.NewProtocolError("report %s page %d: %v", path, page, err)
		}
		report.Records = append(report.Records, body.Result...)
		if len(body.Capacity) > 0 {
			report.Capacity = append(report.Capacity, body.Capacity...)
		}

		r.logger.Debug("report page read",
			zap.String("path", path),
			zap.Int("page", page),
			zap.Int("records", len(body.Result)),
			zap.Int("capacity", len(body.Capacity)),
		)

		if !resp.HasNextPage() {
			break
		}
		if page >= r.maxPages {
			return nil, domain.NewProtocolError("report %s: pagination did not finish within %d pages", path, r.maxPages)
		}
	}

	return report, nil
}

func decodeReportPage(data []byte) (*reportPage, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '{' {
		return nil, errUnexpectedShape
	}
	var page reportPage
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
