package simulator

import (
	"fmt"

	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/number"
	"github.com/wyfcoding/mcaad/internal/rng"
	"github.com/wyfcoding/mcaad/internal/tape"
)

// MCSimulAAD runs opt.NPath paths on a single goroutine, accumulating
// path-wise adjoints on t, and returns each path's payoff value
// alongside the cloned model whose Parameters() now carry the
// sensitivity of the sum of the path payoffs to each parameter (divide
// by opt.NPath for the sensitivity of the average payoff).
//
// t is caller-owned: the simulator only rewinds and marks it, never
// replaces it. A caller that reuses the same *tape.Tape across repeated
// calls gets the tape-hygiene property that the arena's block count
// stabilizes after the first call and never grows on later ones,
// because RewindToMark and Rewind both retain arena blocks for reuse.
// Passing a nil t is a contract violation.
func MCSimulAAD(prd mcmodel.Product[number.Number], mdl mcmodel.Model[number.Number], r rng.RNG, opt Options, t *tape.Tape) ([]float64, mcmodel.Model[number.Number]) {
	if t == nil {
		panic(fmt.Errorf("mcsimulaad: AAD entry called with no tape bound"))
	}
	log := opt.logger()
	log.Debug("mcsimulaad starting", logFields(opt.NPath, false)...)

	cMdl, cRng, gauss, path := setupAADWorker(prd, mdl, r, t)

	res := make([]float64, opt.NPath)
	anti := false
	for i := 0; i < opt.NPath; i++ {
		t.RewindToMark()
		nextGaussian(cRng, gauss, opt.Antithetic, &anti)
		cMdl.GeneratePath(gauss, path)
		payoff := prd.Payoff(path)
		res[i] = payoff.Value()
		payoff.PropagateToMark(false)
	}
	number.PropagateMarkToStart(t)

	opt.Metrics.AddPaths(opt.NPath)
	opt.Metrics.SetArenaBlocks(t.ArenaBlocks())
	log.Debug("mcsimulaad done")
	return res, cMdl
}

// setupAADWorker is the AAD half of the setup protocol: rewind t fully,
// put the cloned model's parameters on tape, run Init (itself recorded,
// so any arithmetic Init does on the parameters contributes correctly
// to their sensitivities), mark the boundary between pre-calculation
// and per-path state, then size the per-path scratch buffers.
func setupAADWorker(prd mcmodel.Product[number.Number], mdl mcmodel.Model[number.Number], r rng.RNG, t *tape.Tape) (mcmodel.Model[number.Number], rng.RNG, []float64, mcmodel.Path[number.Number]) {
	cMdl := mdl.Clone()
	cRng := r.Clone()

	t.Rewind()
	cMdl.PutOnTape(t)
	cMdl.Init(prd.Timeline())
	t.Mark()

	cRng.Init(cMdl.SimDim())
	gauss := make([]float64, cMdl.SimDim())
	path := make(mcmodel.Path[number.Number], len(prd.Timeline()))
	return cMdl, cRng, gauss, path
}
