package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for the change feed, sessions and notifications
var (
	ChangeEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "change_events_total",
			Help: "Total number of change events read from the feed",
		},
		[]string{"table", "op"},
	)

	ChangeEventsFailedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "change_events_failed_total",
			Help: "Total number of change events the sink rejected",
		},
	)

	ActiveSessions = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_sessions",
			Help: "Number of profiles with a live session",
		},
	)

	MatchRefreshDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "match_refresh_duration_seconds",
			Help:    "Duration of match list refreshes",
			Buckets: prometheus.DefBuckets,
		},
	)

	NotificationsCreatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_created_total",
			Help: "Total number of notification entries created",
		},
		[]string{"type"},
	)

	ToastsRaisedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "toasts_raised_total",
			Help: "Total number of toasts raised",
		},
		[]string{"variant"},
	)

	ForwardFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forward_failures_total",
			Help: "Total number of notifications that could not be forwarded",
		},
		[]string{"channel"},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(ChangeEventsTotal)
	prometheus.MustRegister(ChangeEventsFailedTotal)
	prometheus.MustRegister(ActiveSessions)
	prometheus.MustRegister(MatchRefreshDuration)
	prometheus.MustRegister(NotificationsCreatedTotal)
	prometheus.MustRegister(ToastsRaisedTotal)
	prometheus.MustRegister(ForwardFailuresTotal)
}
