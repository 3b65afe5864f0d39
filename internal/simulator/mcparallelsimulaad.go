package simulator

import (
	"fmt"

	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/number"
	"github.com/wyfcoding/mcaad/internal/pool"
	"github.com/wyfcoding/mcaad/internal/rng"
	"github.com/wyfcoding/mcaad/internal/tape"
)

// MCParallelSimulAAD runs opt.NPath paths across p's worker pool with
// path-wise AAD, and returns each path's payoff value alongside the
// model clone (slot 0, mainTape's) whose Parameters() carry the
// sensitivity of the sum of the path payoffs to each parameter (divide
// by opt.NPath for the sensitivity of the average payoff).
//
// mainTape is the calling goroutine's own tape (slot 0): it is
// caller-owned and persists across repeated calls exactly like
// MCSimulAAD's t, so its memory-bound property holds across calls for
// the batches this goroutine personally runs while helping drain the
// queue. Every other pool worker gets its own tape, freshly allocated
// on that worker's first use within this call and discarded at the end
// of it — a worker's tape does not persist across separate top-level
// calls, matching the plain-simulator contract that only the caller's
// own state is guaranteed to survive between calls.
func MCParallelSimulAAD(prd mcmodel.Product[number.Number], mdl mcmodel.Model[number.Number], r rng.RNG, opt Options, p *pool.Pool, mainTape *tape.Tape) ([]float64, mcmodel.Model[number.Number]) {
	if mainTape == nil {
		panic(fmt.Errorf("mcparallelsimulaad: AAD entry called with no tape bound"))
	}
	log := opt.logger()
	log.Debug("mcparallelsimulaad starting", logFields(opt.NPath, true)...)

	slots := p.NumThreads() + 1
	cMdl := make([]mcmodel.Model[number.Number], slots)
	cRng := make([]rng.RNG, slots)
	gaussVecs := make([][]float64, slots)
	paths := make([]mcmodel.Path[number.Number], slots)
	tapes := make([]*tape.Tape, slots)
	initialized := make([]bool, slots)

	setup := func(slot int, t *tape.Tape) {
		m, rc, g, p := setupAADWorker(prd, mdl, r, t)
		cMdl[slot], cRng[slot], gaussVecs[slot], paths[slot] = m, rc, g, p
		tapes[slot] = t
		initialized[slot] = true
	}
	setup(0, mainTape)

	res := make([]float64, opt.NPath)
	batchSize := opt.batchSize()
	owner := new(struct{})
	var handles []pool.Handle

	for firstPath, pathsLeft := 0, opt.NPath; pathsLeft > 0; {
		n := min(pathsLeft, batchSize)
		fp := firstPath
		opt.Metrics.AddBatch()
		handles = append(handles, p.Spawn(owner, func(workerNum int) bool {
			// Each non-zero slot is only ever entered by the single
			// persistent pool goroutine pinned to that workerNum, so
			// this lazy first-use setup has exactly one writer and
			// needs no lock; slot 0 is always pre-initialized above.
			// ActiveWait only ever runs a slot-0 job inline for its own
			// owner, so slot 0 likewise has exactly one writer: this
			// call's own calling goroutine.
			if workerNum > 0 && !initialized[workerNum] {
				setup(workerNum, tape.New(0))
			}
			runAADBatch(cMdl[workerNum], prd, cRng[workerNum], gaussVecs[workerNum], paths[workerNum], tapes[workerNum], opt.Antithetic, fp, n, res)
			return true
		}))
		pathsLeft -= n
		firstPath += n
	}

	for _, h := range handles {
		if err := p.ActiveWait(h, owner); err != nil {
			panic(err)
		}
	}

	// Final reduction: each worker's tape carries its own batches'
	// accumulated mark-adjoint; propagate every one back to its leaves,
	// then sum per-parameter adjoints into slot 0's model, ascending by
	// thread index so the reduction order is deterministic and
	// reproducible across runs.
	number.PropagateMarkToStart(tapes[0])
	for i := 1; i < slots; i++ {
		if !initialized[i] {
			continue
		}
		number.PropagateMarkToStart(tapes[i])
	}

	params0 := cMdl[0].Parameters()
	for i := 1; i < slots; i++ {
		if !initialized[i] {
			continue
		}
		paramsI := cMdl[i].Parameters()
		for j := range params0 {
			params0[j].SetAdjoint(params0[j].Adjoint() + paramsI[j].Adjoint())
		}
	}

	opt.Metrics.AddPaths(opt.NPath)
	opt.Metrics.SetArenaBlocks(tapes[0].ArenaBlocks())
	log.Debug("mcparallelsimulaad done")
	return res, cMdl[0]
}

func runAADBatch(cMdl mcmodel.Model[number.Number], prd mcmodel.Product[number.Number], baseRng rng.RNG, gauss []float64, path mcmodel.Path[number.Number], t *tape.Tape, antithetic bool, firstPath, n int, res []float64) {
	taskRng := baseRng.Clone()
	taskRng.SkipTo(skipPosition(firstPath, antithetic))
	anti := false
	for i := 0; i < n; i++ {
		t.RewindToMark()
		nextGaussian(taskRng, gauss, antithetic, &anti)
		cMdl.GeneratePath(gauss, path)
		payoff := prd.Payoff(path)
		res[firstPath+i] = payoff.Value()
		payoff.PropagateToMark(false)
	}
}
