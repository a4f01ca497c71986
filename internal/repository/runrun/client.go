// Package runrun читает отчеты и справочники из API Runrun.it.
package runrun

import (
	"context"
	"net/url"

	"github.com/bagdasarian/time-worked-alert/internal/fetcher"
)

// Getter - транспорт для GET-запросов (реализуется fetcher.Fetcher)
type Getter interface {
	Get(ctx context.Context, rawURL string, headers map[string]string, query url.Values) (*fetcher.Response, error)
}

type Client struct {
	getter  Getter
	baseURL string
	headers map[string]string
}

// NewClient создает клиента с заголовками авторизации App-Key/User-Token
func NewClient(getter Getter, baseURL, appKey, userToken string) *Client {
	return &Client{
		getter:  getter,
		baseURL: baseURL,
		headers: map[string]string{
			"App-Key":      appKey,
			"User-Token":   userToken,
			"Content-Type": "application/json",
		},
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (*fetcher.Response, error) {
	return c.getter.Get(ctx, c.baseURL+path, c.headers, query)
}
