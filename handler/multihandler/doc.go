// Package multihandler provides CombinedLogger, a fan-out handler that
// dispatches each record to several child handlers.
//
// The combined logger forwards every record regardless of its own
// aggregate level; each child decides for itself. Records reach children
// in construction order, and no extra locking is added: every child
// serializes its own sink.
package multihandler
