package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы запроса доступности
const (
	OutcomeOpen     = "open"
	OutcomeClosed   = "closed"
	OutcomeDegraded = "degraded"
)

// Metrics все коллекторы сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBOpenConnections  prometheus.Gauge
	DBInUseConnections prometheus.Gauge
	DBIdleConnections  prometheus.Gauge
	DBWaitCount        prometheus.Gauge
	DBQueryDuration    *prometheus.HistogramVec

	AvailabilityQueries *prometheus.CounterVec
	SlotsPerQuery       prometheus.Histogram
	BookableSlots       prometheus.Histogram
	DisabledDates       *prometheus.GaugeVec
	CapacityChecks      *prometheus.CounterVec
	SkippedRules        prometheus.Counter
}

// New регистрирует коллекторы в реестре prometheus по умолчанию
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer регистрирует коллекторы в reg (в тестах свежий реестр)
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	labels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: labels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBOpenConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: labels,
		}),
		DBInUseConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: labels,
		}),
		DBIdleConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: labels,
		}),
		DBWaitCount: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "db_wait_count",
			Help:        "Total number of connections waited for",
			ConstLabels: labels,
		}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: labels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		AvailabilityQueries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_queries_total",
			Help:        "Availability queries by outcome (open, closed, degraded)",
			ConstLabels: labels,
		}, []string{"outcome"}),
		SlotsPerQuery: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_slots_per_query",
			Help:        "Number of candidate slots returned per query",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(0, 4, 10),
		}),
		BookableSlots: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "availability_bookable_slots_per_query",
			Help:        "Number of bookable slots returned per query",
			ConstLabels: labels,
			Buckets:     prometheus.LinearBuckets(0, 4, 10),
		}),
		DisabledDates: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "availability_disabled_dates",
			Help:        "Disabled dates in the booking horizon of the last calendar query",
			ConstLabels: labels,
		}, []string{"venue"}),
		CapacityChecks: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_capacity_checks_total",
			Help:        "Capacity checks by result (fits, full, rejected, error)",
			ConstLabels: labels,
		}, []string{"result"}),
		SkippedRules: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "availability_skipped_rules_total",
			Help:        "Malformed capacity rules skipped during resolution",
			ConstLabels: labels,
		}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBOpenConnections,
		m.DBInUseConnections,
		m.DBIdleConnections,
		m.DBWaitCount,
		m.DBQueryDuration,
		m.AvailabilityQueries,
		m.SlotsPerQuery,
		m.BookableSlots,
		m.DisabledDates,
		m.CapacityChecks,
		m.SkippedRules,
	)

	return m
}

// ObserveHTTP учитывает завершенный запрос
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// ObserveAvailability учитывает запрос слотов
func (m *Metrics) ObserveAvailability(outcome string, slots, bookable int) {
	if m == nil {
		return
	}
	m.AvailabilityQueries.WithLabelValues(outcome).Inc()
	if outcome == OutcomeOpen {
		m.SlotsPerQuery.Observe(float64(slots))
		m.BookableSlots.Observe(float64(bookable))
	}
}

// ObserveSkippedRules считает пропущенные некорректные правила
func (m *Metrics) ObserveSkippedRules(n int) {
	if m == nil || n == 0 {
		return
	}
	m.SkippedRules.Add(float64(n))
}

// ObserveDisabledDates сохраняет число недоступных дат последнего запроса по заведению
func (m *Metrics) ObserveDisabledDates(venueID int64, n int) {
	if m == nil {
		return
	}
	m.DisabledDates.WithLabelValues(strconv.FormatInt(venueID, 10)).Set(float64(n))
}

// ObserveCapacityCheck учитывает результат проверки вместимости перед бронью
func (m *Metrics) ObserveCapacityCheck(result string) {
	if m == nil {
		return
	}
	m.CapacityChecks.WithLabelValues(result).Inc()
}
