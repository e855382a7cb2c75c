package consolehandler

import (
	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

// SimpleLogger writes plain text to the standard streams: Error and Warn
// records to stderr, everything else to stdout. It never colors output.
type SimpleLogger struct {
	consoleBase
}

// NewSimpleLogger creates a SimpleLogger emitting records up to level.
func NewSimpleLogger(level core.LevelFilter, cfg formatter.Config, opts ...Option) *SimpleLogger {
	o := applyOptions(opts)
	f := formatter.New(cfg)
	stats := handler.NewStats()

	h := &SimpleLogger{}
	h.level = level
	h.cfg = cfg
	h.stats = stats
	h.outSink = handler.NewSink(o.stdout, f, false, false, stats)
	h.errSink = handler.NewSink(o.stderr, f, false, false, stats)
	return h
}

var _ handler.Handler = (*SimpleLogger)(nil)
