package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-TableAvailability/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

// Pinger проверяет доступность БД
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Logger interface {
	Warn(format string, v ...interface{})
}

type Response struct {
	Status   string `json:"status"`
	Database string `json:"database,omitempty"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

// NewHandler создает handler. db может быть nil, тогда проверяется только процесс.
func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{db: db, logger: logger}
}

// Live GET /health
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
}

// Ready GET /ready
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /ready - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: "unavailable", Database: "down"})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: "ok", Database: "up"})
}
