package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/push"
)

const namespace = "time_worked_alert"

var (
	FetchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_attempts_total",
			Help:      "Upstream GET attempts by outcome.",
		},
		[]string{"outcome"},
	)
	FetchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Duration of upstream GET requests.",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"outcome"},
	)
	ReportPages = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "report_pages_total",
			Help:      "Report pages read.",
		},
	)
	PeopleEvaluated = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "people_evaluated",
			Help:      "People evaluated in the last run.",
		},
	)
	AlertsTriggered = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "alerts_triggered_total",
			Help:      "Alert decisions that crossed the threshold.",
		},
	)
	NotifierChunks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifier_chunks_total",
			Help:      "Notification chunks posted by status.",
		},
		[]string{"status"},
	)
	RunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Pipeline runs by result.",
		},
		[]string{"result"},
	)
)

// Push отправляет метрики процесса в Pushgateway (для одноразового запуска)
func Push(url, job string) error {
	if err := push.New(url, job).Gatherer(prometheus.DefaultGatherer).Push(); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
