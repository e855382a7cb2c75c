// Package core defines the shared types used across simplelog.
//
// It provides Level and LevelFilter for severity filtering and the
// Record type that represents a single log event. Levels are ordered
// from most to least severe (Error < Warn < Info < Debug < Trace); a
// LevelFilter admits a record when the record's level is at most the
// filter, and the Off filter admits nothing.
//
// Record objects are pooled via sync.Pool. Callers get a Record with
// GetRecord and return it with PutRecord once every handler has
// consumed it. Handlers never retain a Record past Log.
//
// CoarseNow serves a cached wall clock refreshed every 500µs for
// callers that prefer cheaper timestamps over exact ones.
package core
