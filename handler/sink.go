package handler

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

// Sink renders records onto one io.Writer. Every record is formatted in
// full and handed to the writer in a single Write call under the sink's
// mutex, so concurrent records never interleave within a line.
//
// Write errors are swallowed at this point and counted in Stats.
type Sink struct {
	w         io.Writer
	formatter formatter.Formatter
	color     bool
	owned     bool
	stats     *Stats
	mu        sync.Mutex // protects syncBuf and w
	syncBuf   bytes.Buffer
}

// NewSink creates a sink writing to w. color enables ANSI styling (still
// subject to the formatter config). When owned is true, Close closes w if
// it is an io.Closer.
func NewSink(w io.Writer, f formatter.Formatter, color, owned bool, stats *Stats) *Sink {
	if stats == nil {
		stats = NewStats()
	}
	s := &Sink{
		w:         w,
		formatter: f,
		color:     color,
		owned:     owned,
		stats:     stats,
	}
	s.syncBuf.Grow(256)
	return s
}

// Color reports whether the sink renders ANSI styling.
func (s *Sink) Color() bool {
	return s.color
}

// Emit formats rec and writes it.
// Uses TryLock to format into the sink-owned buffer when uncontended.
// When contended, formats into a pooled buffer outside the lock and only
// holds the lock for the Write.
func (s *Sink) Emit(rec *core.Record) {
	if s.mu.TryLock() {
		s.syncBuf.Reset()
		s.formatter.FormatRecord(rec, &s.syncBuf, s.color)
		s.writeLocked(s.syncBuf.Bytes())
		s.mu.Unlock()
		return
	}

	buf := formatter.GetBuffer()
	s.formatter.FormatRecord(rec, buf, s.color)
	s.mu.Lock()
	s.writeLocked(buf.Bytes())
	s.mu.Unlock()
	formatter.PutBuffer(buf)
}

// writeLocked writes p, counting the outcome. The error is intentionally
// dropped: a failed log write must never reach the caller.
func (s *Sink) writeLocked(p []byte) {
	if s.w == nil {
		s.stats.IncrementFailed()
		return
	}
	n, err := s.w.Write(p)
	if err != nil || n < len(p) {
		s.stats.IncrementFailed()
		return
	}
	s.stats.IncrementProcessed()
}

// Flush flushes the writer when it supports Flush or Sync.
func (s *Sink) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()
	flushWriter(s.w)
}

// Close flushes the writer and closes it when owned.
func (s *Sink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.w == nil {
		return nil
	}
	flushWriter(s.w)
	var err error
	if c, ok := s.w.(io.Closer); ok && s.owned {
		err = c.Close()
	}
	s.w = nil
	return err
}

// Stats returns a snapshot of the current statistics
func (s *Sink) Stats() Snapshot {
	return s.stats.GetSnapshot()
}

func flushWriter(w io.Writer) {
	switch f := w.(type) {
	case interface{ Flush() error }:
		_ = f.Flush()
	case interface{ Sync() error }:
		_ = f.Sync()
	}
}
