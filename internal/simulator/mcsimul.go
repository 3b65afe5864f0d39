// Package simulator implements the four Monte Carlo dispatch entry
// points: plain and AAD variants, each sequential and pool-parallel.
// All four share the same setup protocol — clone model and RNG, size
// per-path scratch buffers once, then loop — so a path never allocates.
package simulator

import (
	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/rng"
)

// MCSimul runs opt.NPath paths on a single goroutine and returns each
// path's payoff value. mdl and r are cloned internally and never
// mutated, and prd is only read; the caller's originals remain reusable
// after the call.
func MCSimul(prd mcmodel.Product[mcmodel.Real], mdl mcmodel.Model[mcmodel.Real], r rng.RNG, opt Options) []float64 {
	log := opt.logger()
	cMdl, cRng, gauss, path := setupPlainWorker(prd, mdl, r)
	log.Debug("mcsimul starting", logFields(opt.NPath, false)...)

	res := make([]float64, opt.NPath)
	anti := false
	for i := 0; i < opt.NPath; i++ {
		nextGaussian(cRng, gauss, opt.Antithetic, &anti)
		cMdl.GeneratePath(gauss, path)
		res[i] = prd.Payoff(path).Value()
	}

	opt.Metrics.AddPaths(opt.NPath)
	log.Debug("mcsimul done")
	return res
}

// setupPlainWorker clones mdl and r, initializes them against prd's
// timeline, and sizes the scratch buffers GeneratePath writes into. It
// is the non-AAD half of the setup protocol every entry point follows:
// clone, init, size buffers once, then loop without allocating.
func setupPlainWorker(prd mcmodel.Product[mcmodel.Real], mdl mcmodel.Model[mcmodel.Real], r rng.RNG) (mcmodel.Model[mcmodel.Real], rng.RNG, []float64, mcmodel.Path[mcmodel.Real]) {
	cMdl := mdl.Clone()
	cRng := r.Clone()
	cMdl.Init(prd.Timeline())
	cRng.Init(cMdl.SimDim())
	gauss := make([]float64, cMdl.SimDim())
	path := make(mcmodel.Path[mcmodel.Real], len(prd.Timeline()))
	return cMdl, cRng, gauss, path
}
