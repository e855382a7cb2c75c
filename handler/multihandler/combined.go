package multihandler

import (
	"go.uber.org/multierr"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// CombinedLogger dispatches every record to all child handlers in order.
// Each child applies its own filter; the combined filter is only the
// aggregate reported by Level.
type CombinedLogger struct {
	handlers []handler.Handler
	level    core.LevelFilter
}

// NewCombinedLogger creates a logger over handlers. The slice is copied.
func NewCombinedLogger(handlers ...handler.Handler) *CombinedLogger {
	hs := make([]handler.Handler, len(handlers))
	copy(hs, handlers)

	level := core.Off
	for _, h := range hs {
		level = core.MaxFilter(level, h.Level())
	}
	return &CombinedLogger{handlers: hs, level: level}
}

// Level returns the least restrictive child filter, or Off without children.
func (m *CombinedLogger) Level() core.LevelFilter {
	return m.level
}

// Log forwards rec to every child, unmodified.
func (m *CombinedLogger) Log(rec *core.Record) {
	for _, h := range m.handlers {
		h.Log(rec)
	}
}

// Flush flushes all children in order.
func (m *CombinedLogger) Flush() {
	for _, h := range m.handlers {
		h.Flush()
	}
}

// Close closes all children, combining their errors.
func (m *CombinedLogger) Close() error {
	var err error
	for _, h := range m.handlers {
		err = multierr.Append(err, h.Close())
	}
	return err
}

// Handlers returns a copy of the child handlers.
func (m *CombinedLogger) Handlers() []handler.Handler {
	hs := make([]handler.Handler, len(m.handlers))
	copy(hs, m.handlers)
	return hs
}

// Stats sums the statistics of every child that provides them.
func (m *CombinedLogger) Stats() handler.Snapshot {
	var total handler.Snapshot
	for _, h := range m.handlers {
		if sp, ok := h.(handler.StatsProvider); ok {
			total = total.Add(sp.Stats())
		}
	}
	return total
}

var _ handler.Handler = (*CombinedLogger)(nil)
