package benchmark

import (
	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/handler"
)

// noopHandler accepts every level and drops the record, isolating the
// cost of record construction.
type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return noopHandler{}
}

func (noopHandler) Level() core.LevelFilter { return core.FilterTrace }

func (noopHandler) Log(rec *core.Record) {
	_ = len(rec.Message)
}

func (noopHandler) Flush()       {}
func (noopHandler) Close() error { return nil }
