package selection

import (
	"context"
	"time"
)

// Fetch загружает результат для выбранной даты. Должна учитывать отмену ctx.
type Fetch[T any] func(ctx context.Context, date time.Time) (T, error)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
