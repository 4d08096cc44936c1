package md2adoc

import "runtime"

// Worker sizing constants.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps concurrent file conversions; the work is I/O bound.
	MaxWorkers = 8
)

// ResolveWorkers determines the number of concurrent conversions.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	n := runtime.GOMAXPROCS(0)

	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}
