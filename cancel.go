package biosched

import "sync/atomic"

// Cancel is the cooperative stop flag of spec.md §5/§7: the
// orchestrator polls it once per generation in every run, and on a
// stop request returns whatever partial archive it has so far, with
// Model.Stopped set (spec.md §7 "Cancelled ... partial result
// returned, flagged"). The zero value is ready to use.
type Cancel struct {
	flag atomic.Bool
}

// Stop requests cancellation. Safe to call from any goroutine,
// including concurrently with a running Fit call.
func (c *Cancel) Stop() {
	c.flag.Store(true)
}

// Stopped reports whether Stop has been called.
func (c *Cancel) Stopped() bool {
	return c.flag.Load()
}
