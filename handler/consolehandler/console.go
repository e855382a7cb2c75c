package consolehandler

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/philipp01105/simplelog/core"
	"github.com/philipp01105/simplelog/formatter"
	"github.com/philipp01105/simplelog/handler"
)

// Option overrides a console stream, mainly for tests and embedding.
type Option func(*options)

type options struct {
	stdout io.Writer
	stderr io.Writer
}

// WithStdout replaces os.Stdout as the output stream.
func WithStdout(w io.Writer) Option {
	return func(o *options) { o.stdout = w }
}

// WithStderr replaces os.Stderr as the error stream.
func WithStderr(w io.Writer) Option {
	return func(o *options) { o.stderr = w }
}

func applyOptions(opts []Option) options {
	o := options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// consoleBase contains shared fields and methods for console handlers.
// Records at Warn or above go to errSink, the rest to outSink. Both may
// be the same Sink.
type consoleBase struct {
	level   core.LevelFilter
	cfg     formatter.Config
	outSink *handler.Sink
	errSink *handler.Sink
	stats   *handler.Stats
}

// Level returns the handler's filter
func (b *consoleBase) Level() core.LevelFilter {
	return b.level
}

// Config returns the formatting configuration
func (b *consoleBase) Config() *formatter.Config {
	return &b.cfg
}

// Log writes rec to the stream matching its level
func (b *consoleBase) Log(rec *core.Record) {
	if !b.level.Enabled(rec.Level) {
		return
	}
	if b.cfg.Skip(rec) {
		b.stats.IncrementSkipped()
		return
	}
	if rec.Level <= core.WarnLevel {
		b.errSink.Emit(rec)
	} else {
		b.outSink.Emit(rec)
	}
}

// Flush flushes both streams
func (b *consoleBase) Flush() {
	b.outSink.Flush()
	if b.errSink != b.outSink {
		b.errSink.Flush()
	}
}

// Close flushes both streams. Standard streams are never closed.
func (b *consoleBase) Close() error {
	err := b.outSink.Close()
	if b.errSink != b.outSink {
		if errErr := b.errSink.Close(); err == nil {
			err = errErr
		}
	}
	return err
}

// Stats returns a snapshot of the current statistics
func (b *consoleBase) Stats() handler.Snapshot {
	return b.stats.GetSnapshot()
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
