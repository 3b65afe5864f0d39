package simulator

import (
	"go.uber.org/zap"

	"github.com/wyfcoding/mcaad/pkg/telemetry"
)

// DefaultBatchSize is the number of paths handed to a single pool task.
// A task must be large enough to amortize dispatch overhead but small
// enough that one slow batch doesn't stall the final reduction.
const DefaultBatchSize = 64

// Options configures one simulation call. The zero value is usable:
// NPath must still be set, everything else defaults sensibly.
type Options struct {
	// NPath is the total number of paths to simulate.
	NPath int

	// Antithetic toggles antithetic variance reduction: draws are
	// produced in (G, -G) pairs instead of independently. With an odd
	// NPath the final path is drawn unpaired.
	Antithetic bool

	// BatchSize overrides DefaultBatchSize for the parallel entry
	// points. Ignored by the sequential ones.
	BatchSize int

	// Logger receives boundary-level structured log entries. A nil
	// Logger disables logging.
	Logger *zap.Logger

	// Metrics receives simulation-level counters and gauges. A nil
	// Metrics disables metrics.
	Metrics *telemetry.Metrics
}

func (o Options) batchSize() int {
	if o.BatchSize <= 0 {
		return DefaultBatchSize
	}
	return o.BatchSize
}

func (o Options) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

// skipPosition converts a 0-based overall path index into the draw
// index an RNG must SkipTo before generating that path, accounting for
// antithetic pairing: under antithetic sampling every primary draw
// serves two consecutive paths, so only every other path consumes a
// fresh draw.
func skipPosition(firstPath int, antithetic bool) int64 {
	if antithetic {
		return int64(firstPath / 2)
	}
	return int64(firstPath)
}

// nextGaussian fills g with the next Gaussian vector r should hand the
// simulator, honoring the antithetic toggle. state tracks whether the
// next call should draw fresh (false) or hand back the mirror of the
// last draw (true); the caller owns state across the whole path loop.
func nextGaussian(r gaussSource, g []float64, antithetic bool, state *bool) {
	if !antithetic {
		r.NextG(g)
		return
	}
	if !*state {
		r.NextG(g)
		*state = true
		return
	}
	for i := range g {
		g[i] = -g[i]
	}
	*state = false
}

// gaussSource is the minimal RNG surface nextGaussian needs, satisfied
// by rng.RNG.
type gaussSource interface {
	NextG(out []float64)
}
