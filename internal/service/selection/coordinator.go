package selection

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/domain"
)

// ErrClosed возвращается Select после Close
var ErrClosed = errors.New("selection: coordinator closed")

// Update результат загрузки для одной выбранной даты
type Update[T any] struct {
	Date       time.Time
	Generation uint64
	Value      T
	Err        error
}

// Stats счетчики координатора
type Stats struct {
	Started uint64 // запущено загрузок
	Applied uint64 // применено результатов
	Dropped uint64 // отброшено устаревших результатов
}

// Coordinator применяет только результат последнего выбора даты.
// Каждый Select увеличивает номер поколения и отменяет предыдущую загрузку;
// ответ, пришедший с устаревшим поколением, отбрасывается.
type Coordinator[T any] struct {
	fetch  Fetch[T]
	logger Logger

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	current    *Update[T]
	stats      Stats
	closed     bool

	updates chan Update[T]
	wg      sync.WaitGroup
}

// NewCoordinator создает координатор. buffer - размер канала Updates;
// если читатель не успевает, обновления пропускаются, Current остается актуальным.
func NewCoordinator[T any](fetch Fetch[T], buffer int, logger Logger) *Coordinator[T] {
	if buffer < 1 {
		buffer = 1
	}
	return &Coordinator[T]{
		fetch:   fetch,
		logger:  logger,
		updates: make(chan Update[T], buffer),
	}
}

// Select выбирает дату и запускает загрузку. Возвращает номер поколения выбора.
func (c *Coordinator[T]) Select(ctx context.Context, date time.Time) (uint64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return 0, ErrClosed
	}

	if c.cancel != nil {
		c.cancel()
	}

	c.generation++
	gen := c.generation
	fetchCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.stats.Started++

	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer cancel()

		value, err := c.fetch(fetchCtx, date)
		c.apply(Update[T]{Date: date, Generation: gen, Value: value, Err: err})
	}()

	return gen, nil
}

func (c *Coordinator[T]) apply(u Update[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if u.Generation != c.generation {
		c.stats.Dropped++
		c.logger.Info("Selection: dropped stale result for %s (generation %d, current %d)",
			u.Date.Format(domain.DateFormat), u.Generation, c.generation)
		return
	}

	c.current = &u
	c.stats.Applied++

	select {
	case c.updates <- u:
	default:
		c.logger.Warn("Selection: updates channel full, skipped notification for %s", u.Date.Format(domain.DateFormat))
	}
}

// Current возвращает последний примененный результат
func (c *Coordinator[T]) Current() (Update[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Update[T]{}, false
	}
	return *c.current, true
}

// Updates канал примененных результатов. Закрывается в Close.
func (c *Coordinator[T]) Updates() <-chan Update[T] {
	return c.updates
}

// Stats возвращает счетчики
func (c *Coordinator[T]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Wait ждет завершения всех запущенных загрузок
func (c *Coordinator[T]) Wait() {
	c.wg.Wait()
}

// Close отменяет текущую загрузку, дожидается горутин и закрывает Updates
func (c *Coordinator[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
	}
	c.mu.Unlock()

	c.wg.Wait()
	close(c.updates)
}
