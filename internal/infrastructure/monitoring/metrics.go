package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Auth metrics
	LoginAttempts  *prometheus.CounterVec
	SessionsActive prometheus.Gauge

	// Workspace metrics
	AppInstalls      prometheus.Counter
	AppUninstalls    prometheus.Counter
	UninstallDenials prometheus.Counter
	WorkspacesActive prometheus.Gauge

	// Notification metrics
	NotificationsEmitted prometheus.Counter

	// Chat metrics
	ChatConnections prometheus.Gauge
	ChatMessages    *prometheus.CounterVec

	// System metrics
	Uptime    prometheus.Gauge
	startTime time.Time
}

// NewMetrics creates a new metrics collector
func NewMetrics() *Metrics {
	return &Metrics{
		startTime: time.Now(),

		RequestsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchpad_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "launchpad_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),

		LoginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchpad_login_attempts_total",
				Help: "Login attempts by outcome and verifier",
			},
			[]string{"outcome", "provider"},
		),
		SessionsActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "launchpad_sessions_active",
				Help: "Number of live sessions",
			},
		),

		AppInstalls: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "launchpad_app_installs_total",
				Help: "Apps installed into workspaces",
			},
		),
		AppUninstalls: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "launchpad_app_uninstalls_total",
				Help: "Apps removed from workspaces",
			},
		),
		UninstallDenials: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "launchpad_app_uninstall_denials_total",
				Help: "Uninstall attempts rejected by the permission gate",
			},
		),
		WorkspacesActive: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "launchpad_workspaces_active",
				Help: "Workspaces currently held in memory",
			},
		),

		NotificationsEmitted: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "launchpad_notifications_emitted_total",
				Help: "Notifications pushed into workspaces",
			},
		),

		ChatConnections: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "launchpad_chat_connections",
				Help: "Open chat WebSocket connections",
			},
		),
		ChatMessages: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "launchpad_chat_messages_total",
				Help: "Chat messages by direction",
			},
			[]string{"direction"},
		),

		Uptime: promauto.NewGauge(
			prometheus.GaugeOpts{
				Name: "launchpad_uptime_seconds",
				Help: "Service uptime in seconds",
			},
		),
	}
}

// RecordHTTPRequest records a completed HTTP request
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
	m.Uptime.Set(time.Since(m.startTime).Seconds())
}

// RecordLogin records a login attempt outcome
func (m *Metrics) RecordLogin(outcome, provider string) {
	m.LoginAttempts.WithLabelValues(outcome, provider).Inc()
}
