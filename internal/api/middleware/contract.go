package middleware

import "time"

// MetricsCollector записывает метрики HTTP запросов
type MetricsCollector interface {
	ObserveHTTP(method, route string, status int, duration time.Duration)
}

type Logger interface {
	Error(format string, v ...interface{})
}
