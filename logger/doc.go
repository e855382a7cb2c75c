// Package logger is the public API of simplelog. Most users only need to
// import this package plus the handler they want.
//
// A Logger is immutable after construction; the handler, target and
// caller settings are set once via the Builder. This makes Logger safe
// for concurrent use without any locking on the read path.
//
// A process-wide logger is installed at most once, usually during
// startup:
//
//	h := consolehandler.NewTermLogger(logger.FilterInfo, formatter.Default(),
//	    consolehandler.Mixed, consolehandler.ColorAuto)
//	if err := logger.Init(h); err != nil {
//	    // already initialized
//	}
//	logger.Info("ready on port ", 8080)
//
// Later calls to Init or InitLogger return ErrAlreadyInitialized and
// leave the installed logger in place. Until a logger is installed the
// package-level functions drop every record.
//
// Each record's target defaults to the import path of the calling
// package; use Named or Builder.WithTarget for a fixed one. The handler's
// level is checked before the message is formatted, so filtered-out
// calls cost one interface call and a comparison.
package logger
