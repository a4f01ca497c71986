// Package fetcher выполняет GET-запросы к upstream API с повторами.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/metrics"
	"github.com/bagdasarian/time-worked-alert/internal/retry"
)

const maxErrorBody = 2048

type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// HasNextPage сообщает, есть ли в заголовке Link отношение rel="next"
func (r *Response) HasNextPage() bool {
	if r == nil {
		return false
	}
	for _, value := range r.Header.Values("Link") {
		if linkHasNext(value) {
			return true
		}
	}
	return false
}

func linkHasNext(header string) bool {
	for _, link := range strings.Split(header, ",") {
		params := strings.Split(link, ";")
		for _, param := range params[1:] {
			key, val, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || !strings.EqualFold(strings.TrimSpace(key), "rel") {
				continue
			}
			for _, rel := range strings.Fields(strings.Trim(strings.TrimSpace(val), `"`)) {
				if strings.EqualFold(rel, "next") {
					return true
				}
			}
		}
	}
	return false
}

type Fetcher struct {
	client *http.Client
	policy retry.Policy
	logger *zap.Logger
}

// New создает Fetcher. client == nil означает http.DefaultClient,
// пустая policy - retry.DefaultPolicy().
func New(logger *zap.Logger, client *http.Client, policy retry.Policy) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if policy.Attempts == 0 {
		policy = retry.DefaultPolicy()
	}
	return &Fetcher{
		client: client,
		policy: policy,
		logger: logger.Named("fetcher"),
	}
}

// Get выполняет GET с повторами на любой ошибке запроса и статусе >= 400.
// После исчерпания попыток возвращает TRANSIENT_IO с последним статусом и телом.
func (f *Fetcher) Get(ctx context.Context, rawURL string, headers map[string]string, query url.Values) (*Response, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	if len(query) > 0 {
		q := u.Query()
		for key, values := range query {
			for _, v := range values {
				q.Add(key, v)
			}
		}
		u.RawQuery = q.Encode()
	}
	target := u.String()

	var last *Response
	err = retry.Do(ctx, f.policy, func(attempt int) error {
		resp, err := f.do(ctx, target, headers)
		if err != nil {
			last = nil
			f.logger.Debug("upstream request failed",
				zap.String("url", RedactURL(target)),
				zap.Int("attempt", attempt),
				zap.Error(err),
			)
			return err
		}
		last = resp
		if resp.StatusCode >= 400 {
			f.logger.Debug("upstream returned error status",
				zap.String("url", RedactURL(target)),
				zap.Int("attempt", attempt),
				zap.Int("status", resp.StatusCode),
			)
			return fmt.Errorf("HTTP %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		if last != nil {
			return nil, domain.NewTransientIOError(last.StatusCode, truncate(string(last.Body)), err)
		}
		return nil, domain.NewTransientIOError(0, "", err)
	}

	return last, nil
}

func (f *Fetcher) do(ctx context.Context, target string, headers map[string]string) (*Response, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		metrics.FetchAttempts.WithLabelValues("error").Inc()
		metrics.FetchDuration.WithLabelValues("error").Observe(time.Since(start).Seconds())
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.FetchAttempts.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("read body: %w", err)
	}

	outcome := "success"
	if resp.StatusCode >= 400 {
		outcome = "http_error"
	}
	metrics.FetchAttempts.WithLabelValues(outcome).Inc()
	metrics.FetchDuration.WithLabelValues(outcome).Observe(time.Since(start).Seconds())

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}

func truncate(s string) string {
	if len(s) <= maxErrorBody {
		return s
	}
	return s[:maxErrorBody] + "..."
}

// RedactURL скрывает значения query-параметров для логов
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			q.Set(key, "REDACTED")
		}
		u.RawQuery = q.Encode()
	}
	return u.Redacted()
}
