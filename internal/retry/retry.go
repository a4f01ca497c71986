// Package retry повторяет операцию с экспоненциальной задержкой без джиттера.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

type Policy struct {
	Attempts  int
	BaseDelay time.Duration
}

func DefaultPolicy() Policy {
	return Policy{Attempts: 3, BaseDelay: time.Second}
}

// Do вызывает op до Attempts раз. Задержки: BaseDelay, 2*BaseDelay, 4*BaseDelay...
// Возвращает последнюю ошибку op. Отмена контекста прерывает ожидание.
func Do(ctx context.Context, p Policy, op func(attempt int) error) error {
	attempts := p.Attempts
	if attempts < 1 {
		attempts = 1
	}

	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = p.BaseDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxInterval = p.BaseDelay << uint(attempts)
	exp.MaxElapsedTime = 0
	exp.Reset()

	b := backoff.WithContext(backoff.WithMaxRetries(exp, uint64(attempts-1)), ctx)

	attempt := 0
	return backoff.Retry(func() error {
		attempt++
		return op(attempt)
	}, b)
}
