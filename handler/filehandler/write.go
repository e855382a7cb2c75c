package filehandler

import (
	"io"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

// WriteLogger writes plain text records to an arbitrary io.Writer, which
// it owns from construction on. Close closes the writer when it is an
// io.Closer. Flush calls Flush or Sync when the writer has one.
type WriteLogger struct {
	level core.LevelFilter
	cfg   formatter.Config
	sink  *handler.Sink
	stats *handler.Stats
}

// NewWriteLogger creates a WriteLogger emitting records up to level into w.
func NewWriteLogger(level core.LevelFilter, cfg formatter.Config, w io.Writer) *WriteLogger {
	h := &WriteLogger{}
	initWriteLogger(h, level, cfg, w)
	return h
}

// initWriteLogger initializes h in place.
func initWriteLogger(h *WriteLogger, level core.LevelFilter, cfg formatter.Config, w io.Writer) {
	h.level = level
	h.cfg = cfg
	h.stats = handler.NewStats()
	h.sink = handler.NewSink(w, formatter.New(cfg), false, true, h.stats)
}

// Level returns the handler's filter
func (h *WriteLogger) Level() core.LevelFilter {
	return h.level
}

// Config returns the formatting configuration
func (h *WriteLogger) Config() *formatter.Config {
	return &h.cfg
}

// Log writes rec when it passes the filter and the config's filters.
func (h *WriteLogger) Log(rec *core.Record) {
	if !h.level.Enabled(rec.Level) {
		return
	}
	if h.cfg.Skip(rec) {
		h.stats.IncrementSkipped()
		return
	}
	h.sink.Emit(rec)
}

// Flush flushes the writer
func (h *WriteLogger) Flush() {
	h.sink.Flush()
}

// Close flushes and closes the writer. Later records are counted as failed.
func (h *WriteLogger) Close() error {
	return h.sink.Close()
}

// Stats returns a snapshot of the current statistics
func (h *WriteLogger) Stats() handler.Snapshot {
	return h.stats.GetSnapshot()
}

var _ handler.Handler = (*WriteLogger)(nil)
