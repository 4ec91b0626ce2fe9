package errors

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"
)

// WarnerConfig controls how often a single warning code is logged.
type WarnerConfig struct {
	// Rate is the number of records per second allowed for each code.
	// Zero means unlimited.
	Rate float64

	// Burst is the number of records allowed at once for each code.
	Burst int

	// OnWarn, if set, is called for every warning including suppressed ones.
	OnWarn func(code string)
}

// Warner is the non-fatal reporting channel for programmer errors.
// A nil *Warner logs through slog.Default without throttling.
type Warner struct {
	logger *slog.Logger
	config WarnerConfig

	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	suppressed map[string]int
}

// NewWarner creates a Warner that logs to logger.
func NewWarner(logger *slog.Logger, config WarnerConfig) *Warner {
	if config.Burst <= 0 {
		config.Burst = 1
	}
	return &Warner{
		logger:     logger,
		config:     config,
		limiters:   make(map[string]*rate.Limiter),
		suppressed: make(map[string]int),
	}
}

// Warn reports the warning registered under code. Extra args are slog
// key/value pairs.
func (w *Warner) Warn(code string, args ...any) {
	if w == nil {
		logWarning(slog.Default(), code, 0, args)
		return
	}
	if w.config.OnWarn != nil {
		w.config.OnWarn(code)
	}

	w.mu.Lock()
	allowed := w.limiter(code).Allow()
	suppressed := 0
	if allowed {
		suppressed = w.suppressed[code]
		w.suppressed[code] = 0
	} else {
		w.suppressed[code]++
	}
	w.mu.Unlock()

	if allowed {
		logWarning(w.log(), code, suppressed, args)
	}
}

// Suppressed returns how many records for code were dropped since the
// last one that was logged.
func (w *Warner) Suppressed(code string) int {
	if w == nil {
		return 0
	}
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.suppressed[code]
}

func (w *Warner) limiter(code string) *rate.Limiter {
	l, ok := w.limiters[code]
	if !ok {
		limit := rate.Inf
		if w.config.Rate > 0 {
			limit = rate.Limit(w.config.Rate)
		}
		l = rate.NewLimiter(limit, w.config.Burst)
		w.limiters[code] = l
	}
	return l
}

func (w *Warner) log() *slog.Logger {
	if w.logger != nil {
		return w.logger
	}
	return slog.Default()
}

func logWarning(logger *slog.Logger, code string, suppressed int, args []any) {
	t, _ := GetTemplate(code)
	attrs := make([]any, 0, len(args)+4)
	attrs = append(attrs, "code", code)
	if suppressed > 0 {
		attrs = append(attrs, "suppressed", suppressed)
	}
	attrs = append(attrs, args...)
	msg := t.Message
	if msg == "" {
		msg = "warning"
	}
	logger.Log(context.Background(), slog.LevelWarn, msg, attrs...)
}

var defaultWarner atomic.Pointer[Warner]

// DefaultWarner returns the process-wide fallback Warner used by values
// that were created without an explicit one. It may be nil.
func DefaultWarner() *Warner {
	return defaultWarner.Load()
}

// SetDefaultWarner replaces the fallback Warner.
func SetDefaultWarner(w *Warner) {
	defaultWarner.Store(w)
}
