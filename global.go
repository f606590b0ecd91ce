package verbosity

import (
	"sync"
	"sync/atomic"
)

// registry holds one verbosity level behind a set-once latch.
//
// The latch decides "am I first" with a compare-and-swap, so losing
// setters never block behind the winner; the mutex only bounds the
// write and read of the level itself.
type registry struct {
	set atomic.Bool

	mu    sync.RWMutex
	level Verbosity
}

func (r *registry) setOnce(v Verbosity) {
	if !r.set.CompareAndSwap(false, true) {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.level = v
}

func (r *registry) current() Verbosity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.level
}

// global is the process-wide registry. There is no way to reset it.
var global registry

// SetAsGlobal installs the level as the process-wide verbosity.
//
// Only the first call across the process has any effect; all later
// calls, concurrent or not, are silent no-ops. It is safe to call from
// any number of goroutines.
func (v Verbosity) SetAsGlobal() {
	global.setOnce(v)
}

// Level returns the process-wide verbosity. It is Quite until
// SetAsGlobal has been called.
func Level() Verbosity {
	return global.current()
}

// IsQuite reports whether the process-wide verbosity is Quite.
func IsQuite() bool {
	return Level() == Quite
}

// IsTerse reports whether the process-wide verbosity is at least Terse.
func IsTerse() bool {
	return Level() != Quite
}

// IsVerbose reports whether the process-wide verbosity is Verbose.
func IsVerbose() bool {
	return Level() == Verbose
}
