package handler

import (
	"github.com/philipp01105/simplelog/core"
)

// Handler is a log backend. Each handler owns its sink, filters records
// by its own LevelFilter and never fails outwardly: write errors are
// swallowed so that logging cannot crash the host program.
type Handler interface {
	// Level returns the least severe level this handler emits.
	Level() core.LevelFilter

	// Log filters, formats and writes rec. The record is not retained.
	Log(rec *core.Record)

	// Flush flushes buffered output, ignoring errors.
	Flush()

	// Close flushes and releases the handler's sink.
	Close() error
}

// StatsProvider is implemented by handlers that count their writes.
type StatsProvider interface {
	Stats() Snapshot
}

// Discard is a Handler that emits nothing.
var Discard Handler = discard{}

type discard struct{}

func (discard) Level() core.LevelFilter { return core.Off }
func (discard) Log(*core.Record)        {}
func (discard) Flush()                  {}
func (discard) Close() error            { return nil }
