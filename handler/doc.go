// Package handler provides the Handler interface implemented by every
// simplelog backend, and the Sink that backends write through.
//
// A Handler filters records by its own LevelFilter and renders the ones
// it accepts with a formatter.Formatter. Handlers are synchronous: Log
// runs to completion on the caller's goroutine and there is no background
// flushing. Each Sink serializes its own writes with a mutex and issues
// exactly one Write per record, so concurrent records never interleave
// within a line; the order of lines across goroutines is first come,
// first written.
//
// Write failures are swallowed inside the Sink and counted in Stats.
// Logging never returns an I/O error to the caller and never panics.
//
// Built-in handlers live in sub-packages:
//
//   - consolehandler: SimpleLogger (plain stdout/stderr) and TermLogger
//     (terminal streams with optional ANSI colors).
//   - filehandler: WriteLogger (any io.Writer) and FileLogger (a file
//     path with single-backup size rotation).
//   - multihandler: CombinedLogger, which fans a record out to several
//     handlers in order.
//   - sloghandler: an adapter that lets log/slog write through a Handler.
package handler
