// Package formatter defines how records are rendered into bytes.
//
// A Config is an immutable snapshot built with NewBuilder. It selects
// which parts of a record are rendered (time, level, goroutine, target,
// location, module), how they are padded, how timestamps are written
// (strftime patterns, RFC 3339 or RFC 2822, at local time or a fixed
// offset), which records are skipped (level window, target allow and
// ignore prefixes) and whether ANSI styling may be used.
//
// New returns the Formatter for a Config: TextFormatter renders the fixed
// layout
//
//	12:00:00 [INFO] (1) app::db: connected [db.go:42]
//
// and TemplateFormatter renders a placeholder template such as
// "[time] [level:bold] [target]: [message]".
//
// Formatters write into a caller-provided bytes.Buffer so that sinks can
// keep one buffer per handler and issue a single Write per record.
// Buffers larger than 64 KiB are not returned to the pool to prevent a
// single large line from permanently inflating memory usage.
package formatter
