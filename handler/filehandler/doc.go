// Package filehandler provides handlers that write to an io.Writer or a
// file.
//
// WriteLogger takes ownership of any io.Writer. FileLogger opens a file in
// append mode and, when MaxSize is set, moves it to "<path>.bak" once it
// grows beyond that size, replacing the previous backup. A backup left by
// a previous run is removed when the logger is created.
//
// Basic usage:
//
//	h, err := filehandler.NewFileLogger(core.FilterDebug, formatter.Default(), filehandler.FileConfig{
//		Path:    "logs/app.log",
//		MaxSize: 10 << 20,
//	})
//	if err != nil {
//		return err
//	}
//	defer h.Close()
//
// Neither handler colors its output. Write and rotation failures are
// swallowed and counted in Stats.
package filehandler
