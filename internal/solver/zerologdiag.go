package solver

import (
	"time"

	"github.com/rs/zerolog"
)

// ZerologDiagnostics logs periodic search progress to a zerolog.Logger,
// always at debug level: this is progress telemetry, never part of the
// result envelope.
type ZerologDiagnostics struct {
	Logger zerolog.Logger
}

func (d ZerologDiagnostics) Log(calls, cacheSize, depth int, elapsed time.Duration, enumeratorHitRatio float64) {
	d.Logger.Debug().
		Int("calls", calls).
		Int("cache_size", cacheSize).
		Int("depth", depth).
		Dur("elapsed", elapsed).
		Float64("enumerator_hit_ratio", enumeratorHitRatio).
		Msg("search progress")
}
