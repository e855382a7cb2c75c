package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/philipp01105/simplelog/core"
)

// Formatter renders a record into a caller-provided buffer.
type Formatter interface {
	// FormatRecord appends the rendered record, terminator included, to buf.
	// color enables ANSI styling; it is ignored when the Config disables colors.
	FormatRecord(rec *core.Record, buf *bytes.Buffer, color bool)
}

// New returns the formatter selected by cfg: a TemplateFormatter when a
// template is set, otherwise a TextFormatter.
func New(cfg Config) Formatter {
	if cfg.template != "" {
		return NewTemplateFormatter(cfg)
	}
	return NewTextFormatter(cfg)
}

// Format renders rec into a new byte slice.
func Format(f Formatter, rec *core.Record, color bool) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	f.FormatRecord(rec, buf, color)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// FormatTo renders rec and writes it to w in a single Write call.
func FormatTo(f Formatter, rec *core.Record, w io.Writer, color bool) error {
	buf := getBuffer()

	f.FormatRecord(rec, buf, color)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// GetBuffer returns an empty pooled buffer.
func GetBuffer() *bytes.Buffer {
	return getBuffer()
}

// PutBuffer returns a buffer obtained from GetBuffer.
func PutBuffer(buf *bytes.Buffer) {
	putBuffer(buf)
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
