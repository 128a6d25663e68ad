package primality

import (
	"context"
	"math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Status captures the progress state of a single number.
type Status string

const (
	// StatusQueued indicates the number is waiting to be checked.
	StatusQueued Status = "queued"
	// StatusWorking indicates the number is being checked.
	StatusWorking Status = "working"
	// StatusDone indicates the check finished.
	StatusDone Status = "done"
)

// Event reports progress for one entry of a batch.
type Event struct {
	Index  int
	N      uint64
	Status Status
	Prime  bool
}

// Sink consumes progress events. Implementations must be goroutine-safe.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// Options configures CheckAll.
type Options struct {
	Jobs          int    // 0 means GOMAXPROCS
	Rounds        int    // randomized mode only; <= 0 means DefaultRounds
	Deterministic bool   // use IsPrime instead of IsProbablePrime
	Seed          uint64 // randomized mode seed; 0 picks a random seed
	Sink          Sink
}

// Result is the verdict for one number.
type Result struct {
	N     uint64
	Prime bool
}

// CheckAll tests every number concurrently. Results keep the input order.
// It stops early and returns ctx.Err() when ctx is cancelled.
func CheckAll(ctx context.Context, numbers []uint64, opts Options) ([]Result, error) {
	results := make([]Result, len(numbers))
	if len(numbers) == 0 {
		return results, nil
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	for i, n := range numbers {
		emit(opts.Sink, Event{Index: i, N: n, Status: StatusQueued})
	}

	seed := opts.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(numbers)))
	for i, n := range numbers {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			emit(opts.Sink, Event{Index: i, N: n, Status: StatusWorking})

			var prime bool
			if opts.Deterministic {
				prime = IsPrime(n)
			} else {
				// Each entry gets its own stream so results do not depend on scheduling.
				rng := rand.New(rand.NewPCG(seed, uint64(i)))
				prime = IsProbablePrime(n, opts.Rounds, rng)
			}
			// Index i is unique per goroutine, no lock needed.
			results[i] = Result{N: n, Prime: prime}
			emit(opts.Sink, Event{Index: i, N: n, Status: StatusDone, Prime: prime})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func emit(sink Sink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
