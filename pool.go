package tmlsite

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one document renders at a time.
	MinWorkers = 1

	// MaxWorkers caps concurrent renders. Chrome share cards open one tab
	// per worker.
	MaxWorkers = 64

	// autoMaxWorkers caps the GOMAXPROCS-derived default.
	autoMaxWorkers = 16
)

// ResolvePoolSize determines how many documents render concurrently.
// Priority: explicit workers > GOMAXPROCS-based calculation.
func ResolvePoolSize(workers int) int {
	if workers > 0 {
		if workers > MaxWorkers {
			return MaxWorkers
		}
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers.
	n := runtime.GOMAXPROCS(0)
	if n < MinWorkers {
		return MinWorkers
	}
	if n > autoMaxWorkers {
		return autoMaxWorkers
	}
	return n
}
