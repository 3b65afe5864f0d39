// Package pool implements the worker-pool contract the simulator needs:
// spawn(task) -> handle and activeWait(handle), where an idle waiter
// helps drain the queue instead of sleeping. Concrete pool
// implementations are explicitly a non-goal of the core spec; this one
// exists so the simulator has a usable default, and so its behavior can
// be exercised by tests without a caller-supplied pool.
//
// Go has no OS-thread-local storage, so unlike the reference design's
// pool.threadNum() query, a Task here receives its worker slot as an
// explicit argument (0 for the calling/helping goroutine, 1..N for a
// persistent worker) — the idiomatic Go equivalent that still lets the
// simulator index its per-thread buffers.
//
// Slot 0 is meaningful only relative to a single top-level call: it is
// that call's own calling goroutine, reusing that call's own pre-made
// buffers. The pool is shared across concurrently running top-level
// calls, so an owner token (opaque to the pool, typically a fresh
// *struct{} minted once per call) accompanies every Spawn/ActiveWait:
// ActiveWait only ever runs a dequeued job inline as slot 0 when that
// job's owner matches its own, putting any other owner's job straight
// back on the queue for a persistent worker (or that owner's own
// ActiveWait) to pick up instead. Without this, two different owners'
// calls sharing one pool could both end up with a foreign goroutine
// executing their slot-0 job concurrently with their own goroutine,
// racing on that call's own buffers.
package pool

import (
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Task is a unit of work submitted to the pool. workerNum is 0 when run
// by the owning call's own goroutine helping inside ActiveWait,
// 1..NumThreads() when run by a persistent worker. Tasks must not
// block: the pool is for CPU-bound work only.
type Task func(workerNum int) bool

// ErrTaskFailed is returned by ActiveWait when a task reported failure
// by returning false.
var ErrTaskFailed = errors.New("pool: task reported failure")

type job struct {
	owner any
	task  Task
	done  chan struct{}
	err   error
}

// Handle identifies one spawned task.
type Handle struct {
	j *job
}

// Pool is a fixed-size goroutine pool. The zero value is not usable;
// construct with New.
type Pool struct {
	numWorkers int
	jobs       chan *job
	eg         *errgroup.Group
	closeOnce  sync.Once
}

// New starts a pool of numWorkers persistent goroutines. numWorkers must
// be >= 1.
func New(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	p := &Pool{
		numWorkers: numWorkers,
		jobs:       make(chan *job, 4096),
	}
	eg := &errgroup.Group{}
	for w := 1; w <= numWorkers; w++ {
		workerNum := w
		eg.Go(func() error {
			for j := range p.jobs {
				run(j, workerNum)
			}
			return nil
		})
	}
	p.eg = eg
	return p
}

func run(j *job, workerNum int) {
	defer close(j.done)
	if !j.task(workerNum) {
		j.err = ErrTaskFailed
	}
}

// NumThreads returns the number of persistent worker goroutines.
func (p *Pool) NumThreads() int { return p.numWorkers }

// Spawn posts task to the pool under owner and returns a handle to wait
// on. owner identifies the top-level call this task belongs to — pass
// the same owner value to every Spawn and ActiveWait call made for one
// top-level call (e.g. a single `owner := new(struct{})` minted once
// per call).
func (p *Pool) Spawn(owner any, task Task) Handle {
	j := &job{owner: owner, task: task, done: make(chan struct{})}
	p.jobs <- j
	return Handle{j: j}
}

// ActiveWait blocks until h's task completes. While waiting, the calling
// goroutine helps drain the queue by running other queued tasks inline
// as worker slot 0, which both keeps cores busy and prevents deadlock
// when the pool is fully occupied by tasks that themselves call
// ActiveWait. A dequeued task belonging to a different owner is not run
// inline — slot 0 is reserved for owner's own goroutine — it is put
// straight back on the queue for a persistent worker, or that other
// owner's own ActiveWait, to run instead.
func (p *Pool) ActiveWait(h Handle, owner any) error {
	for {
		select {
		case <-h.j.done:
			return h.j.err
		default:
		}
		select {
		case <-h.j.done:
			return h.j.err
		case j2 := <-p.jobs:
			if j2.owner != owner {
				p.jobs <- j2
				continue
			}
			run(j2, 0)
		}
	}
}

// Close stops accepting new work, lets persistent workers drain the
// queue and exit, and waits for them. Safe to call more than once.
func (p *Pool) Close() error {
	p.closeOnce.Do(func() { close(p.jobs) })
	return p.eg.Wait()
}
