// Package consolehandler provides handlers that write to the process's
// standard streams.
//
//   - SimpleLogger writes plain text: Error and Warn to stderr, Info,
//     Debug and Trace to stdout.
//   - TermLogger adds a TerminalMode (Stdout, Stderr or Mixed) and a
//     ColorChoice (Always, Auto or Never). In Mixed mode each stream
//     negotiates color independently; Auto colors only interactive
//     terminals.
//
// Both handlers write through handler.Sink, so each record is a single
// Write under a mutex and write errors never reach the caller. The
// standard streams are flushed but never closed by Close.
package consolehandler
