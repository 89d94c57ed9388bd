package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the custom Prometheus metrics for the application.
// HTTP-level metrics come from the fiberprometheus middleware; these
// cover the domain events it cannot see.
type Metrics struct {
	DailyUpdates  prometheus.Counter
	TaskCascades  *prometheus.CounterVec
	BlockersOpen  prometheus.Counter
	BlockersClose prometheus.Counter
}

var globalMetrics *Metrics

// InitMetrics initializes the Prometheus metrics
func InitMetrics() *Metrics {
	metrics := &Metrics{
		DailyUpdates: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scrumcmd_daily_updates_total",
			Help: "Total number of daily updates recorded",
		}),

		// Task status transitions triggered by daily updates, by resulting status
		TaskCascades: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "scrumcmd_task_cascades_total",
			Help: "Total number of task status changes driven by daily updates",
		}, []string{"status"}),

		BlockersOpen: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scrumcmd_blockers_opened_total",
			Help: "Total number of blockers opened from daily updates",
		}),

		BlockersClose: promauto.NewCounter(prometheus.CounterOpts{
			Name: "scrumcmd_blockers_resolved_total",
			Help: "Total number of blockers resolved",
		}),
	}

	globalMetrics = metrics
	return metrics
}

// GetMetrics returns the global metrics instance, or nil if not initialized
func GetMetrics() *Metrics {
	return globalMetrics
}

func (m *Metrics) recordDailyUpdate() {
	if m == nil {
		return
	}
	m.DailyUpdates.Inc()
}

func (m *Metrics) recordCascade(status string) {
	if m == nil {
		return
	}
	m.TaskCascades.WithLabelValues(status).Inc()
}

func (m *Metrics) recordBlockerOpened() {
	if m == nil {
		return
	}
	m.BlockersOpen.Inc()
}

func (m *Metrics) recordBlockerResolved() {
	if m == nil {
		return
	}
	m.BlockersClose.Inc()
}
