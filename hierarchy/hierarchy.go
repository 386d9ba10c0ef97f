// Package hierarchy builds and tears down the fixed priority-tree skeleton
// on the shaped device.
//
// The tree is a strict-priority ladder inside one capacity-limited root HTB.
// Helper class 0 carries the full capacity; each priority p hangs its branch
// class off helper p and passes the remainder to helper p+1, so priority 0
// may borrow up to full capacity while every branch keeps a guaranteed
// minimum share. Each branch carries a DSCP marking stage stamping a class
// selector that decreases with priority number, and an HTB qdisc anchoring
// that priority's client rate-limit chains:
//
//	1: -> 1:helper(0) -> 1:branch(0) -> mark(0): -> mark(0):1 -> base(0):
//	              \---> 1:helper(1) -> 1:branch(1) -> ...
//	                            \---> ... -> 1:helper(N-1) -> 1:default
package hierarchy

import (
	"context"
	"log/slog"

	"github.com/netqos/netenforcer/config"
	"github.com/netqos/netenforcer/handle"
	"github.com/netqos/netenforcer/tc"
)

// Hierarchy owns the skeleton's lifecycle. Setup and Teardown form a pair:
// the host process runs Teardown on every exit path, best effort.
type Hierarchy struct {
	cfg    config.Config
	driver *tc.Driver
	logger *slog.Logger
}

// New creates a Hierarchy for the given device configuration.
func New(cfg config.Config, driver *tc.Driver, logger *slog.Logger) *Hierarchy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hierarchy{
		cfg:    cfg,
		driver: driver,
		logger: logger.With("component", "hierarchy"),
	}
}

// Setup wipes any pre-existing root configuration and builds the skeleton
// from scratch. State from a previous process is never re-adopted.
func (h *Hierarchy) Setup(ctx context.Context) {
	h.driver.DeleteRoot(ctx)

	n := h.cfg.NumPriorities
	minShare := h.cfg.MinShare()
	rate := minShare * uint64(n+1)
	ceil := h.cfg.Capacity

	h.driver.AddRootQdisc(ctx, handle.RootMinorDefault(n))
	h.driver.AddTreeClass(ctx, 0, handle.RootMinorHelper(n, 0), h.cfg.Capacity, 0, 0)
	for p := uint32(0); p < n; p++ {
		h.driver.AddTreeClass(ctx, handle.RootMinorHelper(n, p), handle.RootMinor(p), minShare, ceil, p)
		h.driver.AddMarkQdisc(ctx, handle.RootMinor(p), handle.MarkQdisc(n, p))
		h.driver.SetMark(ctx, handle.MarkQdisc(n, p), markValue(p))
		h.driver.AddLimitQdisc(ctx, handle.MarkQdisc(n, p), 1, handle.LimitBase(n, p))
		rate -= minShare
		ceil -= minShare
		h.driver.AddTreeClass(ctx, handle.RootMinorHelper(n, p), handle.RootMinorHelper(n, p+1), rate, ceil, p+1)
	}

	h.logger.Info("shaping hierarchy built",
		"device", h.driver.Device(),
		"priorities", n,
		"capacity", h.cfg.Capacity,
	)
}

// Teardown removes the root qdisc and the entire hierarchy with it.
// Best effort; failures are logged by the driver and not retried.
func (h *Hierarchy) Teardown(ctx context.Context) {
	h.driver.DeleteRoot(ctx)
	h.logger.Info("shaping hierarchy removed", "device", h.driver.Device())
}

// markValue returns the DSCP byte stamped on a priority's packets. Priority
// 0 gets cs7, the maximum class selector; each lower tier steps down one
// selector. Tiers past cs0 stay at zero.
func markValue(priority uint32) uint8 {
	if priority >= 7 {
		return 0
	}
	return uint8(7-priority) << 5
}
