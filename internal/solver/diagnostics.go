package solver

import "time"

// Diagnostics receives periodic progress counters on the side diagnostic
// stream. It must never be wired to the primary result-envelope output.
type Diagnostics interface {
	Log(calls, cacheSize, depth int, elapsed time.Duration, enumeratorHitRatio float64)
}

// NoDiagnostics discards all progress counters.
type NoDiagnostics struct{}

func (NoDiagnostics) Log(int, int, int, time.Duration, float64) {}
