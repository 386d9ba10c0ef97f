package enforcer

import (
	"context"

	"github.com/netqos/netenforcer"
	"github.com/netqos/netenforcer/handle"
)

// flush folds the device counters into a client's accounting, attributing
// usage to the configuration active since the previous flush. Callers must
// flush before mutating the client's priority or chain.
func (r *Registry) flush(ctx context.Context, c *Client) {
	if len(c.Chain) == 0 {
		// No dedicated chain, nothing to meter.
		return
	}
	cur, err := r.driver.SentBytes(ctx, handle.LimitBase(r.cfg.NumPriorities, c.Priority), handle.LimitMinor(c.ID, 0))
	if err == nil {
		c.sentBytes += cur - c.lastCounter
		c.lastCounter = cur
	}
	now := r.clock()
	c.budget += c.rate * now.Sub(c.lastFlush).Seconds()
	c.lastFlush = now
}

// Occupancy reports the fraction of the client's allotted rate actually
// consumed since the previous query, in [0, 1]. Each query starts a new
// observation window. Keys that are not admitted report zero.
func (r *Registry) Occupancy(ctx context.Context, key netenforcer.ClientKey) float64 {
	c, ok := r.clients[key]
	if !ok {
		return 0
	}
	r.flush(ctx, c)
	if c.budget <= 0 {
		// No time has passed since the window opened; there is no budget to
		// divide by yet. The window stays open until budget accrues.
		return 0
	}
	occupancy := float64(c.sentBytes) / c.budget
	if occupancy > 1 {
		// Measurement skew or a transient overrun, not an error.
		r.logger.Warn("capped occupancy",
			"key", key.String(),
			"occupancy", occupancy,
		)
		occupancy = 1
	}
	c.sentBytes = 0
	c.budget = 0
	return occupancy
}
