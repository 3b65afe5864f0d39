package simulator

import (
	"github.com/wyfcoding/mcaad/internal/mcmodel"
	"github.com/wyfcoding/mcaad/internal/pool"
	"github.com/wyfcoding/mcaad/internal/rng"
)

// MCParallelSimul runs opt.NPath paths split into batches of at most
// opt.BatchSize (default DefaultBatchSize) across p's worker pool and
// returns each path's payoff value in original path order.
//
// The cloned model and RNG are shared across every spawned task: that
// is safe only because Model.GeneratePath must write exclusively into
// the path buffer it is given and never mutate the model's own
// precomputed state, the same non-mutation contract the sequential
// entry points rely on.
func MCParallelSimul(prd mcmodel.Product[mcmodel.Real], mdl mcmodel.Model[mcmodel.Real], r rng.RNG, opt Options, p *pool.Pool) []float64 {
	log := opt.logger()
	log.Debug("mcparallelsimul starting", logFields(opt.NPath, true)...)

	cMdl := mdl.Clone()
	cRng := r.Clone()
	cMdl.Init(prd.Timeline())
	cRng.Init(cMdl.SimDim())

	slots := p.NumThreads() + 1
	gaussVecs := make([][]float64, slots)
	paths := make([]mcmodel.Path[mcmodel.Real], slots)
	for i := 0; i < slots; i++ {
		gaussVecs[i] = make([]float64, cMdl.SimDim())
		paths[i] = make(mcmodel.Path[mcmodel.Real], len(prd.Timeline()))
	}

	res := make([]float64, opt.NPath)
	batchSize := opt.batchSize()
	owner := new(struct{})
	var handles []pool.Handle

	for firstPath, pathsLeft := 0, opt.NPath; pathsLeft > 0; {
		n := min(pathsLeft, batchSize)
		fp := firstPath
		opt.Metrics.AddBatch()
		handles = append(handles, p.Spawn(owner, func(workerNum int) bool {
			runPlainBatch(cMdl, prd, cRng, gaussVecs[workerNum], paths[workerNum], opt.Antithetic, fp, n, res)
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

	opt.Metrics.AddPaths(opt.NPath)
	log.Debug("mcparallelsimul done")
	return res
}

func runPlainBatch(cMdl mcmodel.Model[mcmodel.Real], prd mcmodel.Product[mcmodel.Real], baseRng rng.RNG, gauss []float64, path mcmodel.Path[mcmodel.Real], antithetic bool, firstPath, n int, res []float64) {
	taskRng := baseRng.Clone()
	taskRng.SkipTo(skipPosition(firstPath, antithetic))
	anti := false
	for i := 0; i < n; i++ {
		nextGaussian(taskRng, gauss, antithetic, &anti)
		cMdl.GeneratePath(gauss, path)
		res[firstPath+i] = prd.Payoff(path).Value()
	}
}
