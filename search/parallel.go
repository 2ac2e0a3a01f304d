package search

import "golang.org/x/sync/errgroup"

// runParallel races Workers goroutines over disjoint attempt ranges: worker
// k owns indices k, k+W, k+2W, ... Each worker keeps its own square builder
// and coloring state; only the found flag, the budget counters and the
// winning schedule are shared. The first stored schedule wins and the found
// flag drains the other workers at their next poll.
func (e *engine) runParallel(total int) {
	var (
		g errgroup.Group
		w = e.opts.Workers
	)
	if w > total {
		w = total
	}
	for k := 0; k < w; k++ {
		start := k
		g.Go(func() error {
			e.runRange(start, total, w)
			return nil
		})
	}
	_ = g.Wait() // workers never return errors; verdicts travel via flags
}
