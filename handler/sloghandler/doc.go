// Package sloghandler provides an adapter from handler.Handler to
// log/slog.Handler, so code written against the standard library's
// slog API can log through any handler of this module.
//
// Attributes and groups are flattened into the message as key=value
// text; the record target defaults to the calling package.
package sloghandler
