package logger

// resetGlobal removes the installed logger so tests can call Init again.
func resetGlobal() {
	global.Store(nil)
}
