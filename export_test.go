package verbosity

// setForTest forcibly overwrites the process-wide level, bypassing the
// set-once latch. The latch cannot be reset, and all tests share one
// process; living in a _test.go file keeps this out of shipped builds.
func setForTest(v Verbosity) {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.level = v
}
