// Package metrics содержит Prometheus-коллекторы сервиса.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор коллекторов для HTTP, БД и кеша
type Metrics struct {
	serviceName string

	// HTTP метрики
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Метрики запросов к БД
	DBQueriesTotal  *prometheus.CounterVec
	DBQueryDuration *prometheus.HistogramVec

	// Метрики connection pool
	DBPoolConnections *prometheus.GaugeVec

	// Метрики кеша
	CacheOperationsTotal *prometheus.CounterVec
}

// New создает и регистрирует все коллекторы в default registry
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		HTTPRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		DBQueriesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries",
		}, []string{"service", "operation", "status"}),

		DBQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"service", "operation"}),

		DBPoolConnections: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_connections",
			Help: "Current state of the database connection pool",
		}, []string{"service", "state"}),

		CacheOperationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations by result",
		}, []string{"service", "operation", "result"}),
	}
}

// ObserveHTTPRequest записывает метрики одного HTTP запроса
func (m *Metrics) ObserveHTTPRequest(method, path, status string, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(seconds)
}

// ObserveDBQuery записывает метрики одного запроса к БД
func (m *Metrics) ObserveDBQuery(operation, status string, seconds float64) {
	m.DBQueriesTotal.WithLabelValues(m.serviceName, operation, status).Inc()
	m.DBQueryDuration.WithLabelValues(m.serviceName, operation).Observe(seconds)
}

// ObserveCacheOperation записывает результат операции с кешем (hit/miss/error)
func (m *Metrics) ObserveCacheOperation(operation, result string) {
	m.CacheOperationsTotal.WithLabelValues(m.serviceName, operation, result).Inc()
}

// SetPoolStats обновляет gauge-метрики connection pool
func (m *Metrics) SetPoolStats(open, idle, inUse int) {
	m.DBPoolConnections.WithLabelValues(m.serviceName, "open").Set(float64(open))
	m.DBPoolConnections.WithLabelValues(m.serviceName, "idle").Set(float64(idle))
	m.DBPoolConnections.WithLabelValues(m.serviceName, "in_use").Set(float64(inUse))
}
