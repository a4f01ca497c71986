// Package notifier доставляет текстовые оповещения в Telegram.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/bagdasarian/time-worked-alert/internal/domain"
	"github.com/bagdasarian/time-worked-alert/internal/metrics"
)

const (
	defaultTimeout = 25 * time.Second
	maxErrorBody   = 2048
)

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type TelegramConfig struct {
	APIURL        string
	BotToken      string
	ChatID        string
	Timeout       time.Duration
	RatePerSecond float64
	// Limit - длина части сообщения; 0 означает TelegramLimit
	Limit int
}

type TelegramSender struct {
	client   *http.Client
	endpoint string
	chatID   string
	limit    int
	limiter  *rate.Limiter
	logger   *zap.Logger
}

func NewTelegramSender(logger *zap.Logger, cfg TelegramConfig) (*TelegramSender, error) {
	if cfg.BotToken == "" || cfg.ChatID == "" {
		return nil, fmt.Errorf("telegram bot token and chat id are required")
	}
	base, err := url.Parse(cfg.APIURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid telegram api url %q", cfg.APIURL)
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	limit := rate.Inf
	if cfg.RatePerSecond > 0 {
		limit = rate.Limit(cfg.RatePerSecond)
	}

	return &TelegramSender{
		client:   &http.Client{Timeout: timeout},
		endpoint: base.JoinPath("bot"+cfg.BotToken, "sendMessage").String(),
		chatID:   cfg.ChatID,
		limit:    cfg.Limit,
		limiter:  rate.NewLimiter(limit, 1),
		logger:   logger.Named("telegram"),
	}, nil
}

// Send отправляет текст частями. Первая неудачная часть прерывает отправку,
// уже доставленные части не отзываются.
func (s *TelegramSender) Send(ctx context.Context, text string) error {
	chunks := SplitMessage(text, s.limit)
	for i, chunk := range chunks {
		if err := s.limiter.Wait(ctx); err != nil {
			return domain.NewDeliveryError(0, "", err)
		}
		if err := s.post(ctx, chunk); err != nil {
			s.logger.Error("telegram chunk rejected",
				zap.String("chat_id", s.chatID),
				zap.Int("chunk", i+1),
				zap.Int("chunks", len(chunks)),
				zap.Error(err),
			)
			return err
		}
	}
	s.logger.Debug("telegram message sent",
		zap.String("chat_id", s.chatID),
		zap.Int("chunks", len(chunks)),
	)
	return nil
}

func (s *TelegramSender) post(ctx context.Context, text string) error {
	body, err := json.Marshal(sendMessageRequest{
		ChatID:                s.chatID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
	if err != nil {
		return fmt.Errorf("marshal telegram payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.NotifierChunks.WithLabelValues("error").Inc()
		return domain.NewDeliveryError(0, "", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		metrics.NotifierChunks.WithLabelValues("rejected").Inc()
		return domain.NewDeliveryError(resp.StatusCode, string(respBody), nil)
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	metrics.NotifierChunks.WithLabelValues("sent").Inc()
	return nil
}
