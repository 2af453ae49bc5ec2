package verify

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/jbeskow/signflash/core"
)

// DefaultWorkers bounds concurrent probes. One worker makes
// verification fully sequential.
const DefaultWorkers = 4

// Outcome pairs a candidate with its probe result.
type Outcome struct {
	Candidate core.Candidate
	OK        bool
}

// All probes every candidate's video with at most workers concurrent
// probes. Outcomes come back in candidate order regardless of probe
// completion order. onResult, when non-nil, fires once per candidate
// as its probe completes and may be called from pool goroutines.
func All(ctx context.Context, prober Prober, candidates []core.Candidate, workers int, onResult func(c core.Candidate, ok bool)) ([]Outcome, error) {
	if workers < 1 {
		workers = 1
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create probe pool: %w", err)
	}
	defer pool.Release()

	outcomes := make([]Outcome, len(candidates))

	var wg sync.WaitGroup
	for i, c := range candidates {
		outcomes[i].Candidate = c

		wg.Add(1)
		task := func() {
			defer wg.Done()
			ok := prober.Exists(ctx, core.VideoFilename(c.Sign.Video))
			outcomes[i].OK = ok
			if onResult != nil {
				onResult(c, ok)
			}
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			wg.Wait()
			return nil, fmt.Errorf("submit probe: %w", err)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return outcomes, nil
}
