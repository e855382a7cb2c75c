package handler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

// countingWriter records each Write call separately.
type countingWriter struct {
	mu     sync.Mutex
	writes []string
	closed bool
	synced int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.writes = append(w.writes, string(p))
	return len(p), nil
}

func (w *countingWriter) Sync() error {
	w.synced++
	return nil
}

func (w *countingWriter) Close() error {
	w.closed = true
	return nil
}

func plainFormatter() formatter.Formatter {
	return formatter.New(formatter.NewBuilder().SetParts(formatter.PartLevel).Build())
}

func record(level core.Level, msg string) *core.Record {
	return &core.Record{Level: level, Message: msg}
}

func TestSink_SingleWritePerRecord(t *testing.T) {
	w := &countingWriter{}
	s := NewSink(w, plainFormatter(), false, false, nil)

	s.Emit(record(core.InfoLevel, "one"))
	s.Emit(record(core.WarnLevel, "two"))

	require.Len(t, w.writes, 2)
	assert.Equal(t, "[INFO] one\n", w.writes[0])
	assert.Equal(t, "[WARN] two\n", w.writes[1])
	assert.Equal(t, uint64(2), s.Stats().Processed)
}

func TestSink_SwallowsWriteErrors(t *testing.T) {
	s := NewSink(failingWriter{}, plainFormatter(), false, true, nil)

	assert.NotPanics(t, func() {
		s.Emit(record(core.ErrorLevel, "lost"))
		s.Flush()
	})
	assert.Equal(t, uint64(1), s.Stats().Failed)
	assert.Equal(t, uint64(0), s.Stats().Processed)
	assert.NoError(t, s.Close())
}

func TestSink_CloseOwnership(t *testing.T) {
	owned := &countingWriter{}
	require.NoError(t, NewSink(owned, plainFormatter(), false, true, nil).Close())
	assert.True(t, owned.closed)
	assert.Equal(t, 1, owned.synced)

	borrowed := &countingWriter{}
	require.NoError(t, NewSink(borrowed, plainFormatter(), false, false, nil).Close())
	assert.False(t, borrowed.closed)
}

func TestSink_EmitAfterClose(t *testing.T) {
	w := &countingWriter{}
	s := NewSink(w, plainFormatter(), false, true, nil)
	require.NoError(t, s.Close())

	s.Emit(record(core.InfoLevel, "late"))
	assert.Empty(t, w.writes)
	assert.Equal(t, uint64(1), s.Stats().Failed)
}

func TestSink_ConcurrentLinesIntact(t *testing.T) {
	w := &countingWriter{}
	s := NewSink(w, plainFormatter(), false, false, nil)

	const goroutines, perGoroutine = 8, 200
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				s.Emit(record(core.InfoLevel, "concurrent line"))
			}
		}()
	}
	wg.Wait()

	require.Len(t, w.writes, goroutines*perGoroutine)
	for _, line := range w.writes {
		assert.Equal(t, "[INFO] concurrent line\n", line)
	}
}

func TestDiscard(t *testing.T) {
	assert.Equal(t, core.Off, Discard.Level())
	Discard.Log(record(core.ErrorLevel, "x"))
	Discard.Flush()
	assert.NoError(t, Discard.Close())
}

func TestSnapshot_Add(t *testing.T) {
	a := Snapshot{Processed: 1, Failed: 2, Skipped: 3}
	b := Snapshot{Processed: 10, Failed: 20, Skipped: 30}
	assert.Equal(t, Snapshot{Processed: 11, Failed: 22, Skipped: 33}, a.Add(b))
}

func BenchmarkSinkEmit(b *testing.B) {
	var buf bytes.Buffer
	s := NewSink(&buf, plainFormatter(), false, false, nil)
	rec := record(core.InfoLevel, strings.Repeat("x", 64))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if buf.Len() > 1<<20 {
			buf.Reset()
		}
		s.Emit(rec)
	}
}
