// Package enforcer is the stateful core of the daemon: it tracks every
// admitted client and incrementally reconciles the live shaping hierarchy
// when a client's policy changes.
//
// Processing is single threaded by contract. Each request is fully applied,
// including every tc command it triggers, before the next begins, so the
// registry needs no internal locking; the request handler serializes access.
package enforcer

import (
	"context"
	"log/slog"
	"time"

	"github.com/netqos/netenforcer"
	"github.com/netqos/netenforcer/config"
	"github.com/netqos/netenforcer/handle"
	"github.com/netqos/netenforcer/tc"
)

// Option configures a Registry.
type Option func(*Registry)

// WithClock replaces the time source used for budget accrual. Tests use a
// fixed clock to control elapsed time.
func WithClock(clock func() time.Time) Option {
	return func(r *Registry) { r.clock = clock }
}

// Registry maps client keys to their records and reconciles the hierarchy
// on every policy change.
type Registry struct {
	cfg    config.Config
	driver *tc.Driver
	clock  func() time.Time
	logger *slog.Logger

	clients map[netenforcer.ClientKey]*Client
	// nextID is dense and never reused. Unbounded client churn therefore
	// grows the values fed into handle arithmetic without bound; handle
	// space sizing policy is unspecified upstream, so this stays as is.
	nextID uint32
}

// NewRegistry creates an empty Registry.
func NewRegistry(cfg config.Config, driver *tc.Driver, logger *slog.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Registry{
		cfg:     cfg,
		driver:  driver,
		clock:   time.Now,
		logger:  logger.With("component", "enforcer"),
		clients: make(map[netenforcer.ClientKey]*Client),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Has reports whether key is currently admitted.
func (r *Registry) Has(key netenforcer.ClientKey) bool {
	_, ok := r.clients[key]
	return ok
}

// Apply reconciles the hierarchy with a client's new policy. It covers all
// four change categories: admission, in-place chain change, priority
// migration, and removal (priority equal to the sentinel).
//
// The caller has already validated priority and chain length; Apply trusts
// its arguments.
func (r *Registry) Apply(ctx context.Context, key netenforcer.ClientKey, priority uint32, chain netenforcer.RateChain) {
	n := r.cfg.NumPriorities
	c, existed := r.clients[key]
	if !existed {
		if priority == n {
			// Removal of a key that was never admitted: nothing to do.
			return
		}
		c = &Client{ID: r.nextID, lastFlush: r.clock()}
		r.nextID++
		r.clients[key] = c
	}
	oldPriority, oldLen := n, 0
	if existed {
		// Attribute usage to the old configuration before any field changes.
		r.flush(ctx, c)
		oldPriority = c.Priority
		oldLen = len(c.Chain)
	}
	c.Priority = priority
	c.Chain = chain
	c.rate = float64(r.cfg.Capacity)
	if len(chain) > 0 {
		c.rate = chain[0].Rate
	}

	id := c.ID
	l := r.cfg.NumLevels

	// Walk the chain top down. Structural nodes that already exist under an
	// unchanged priority are reused; only their class parameters are
	// replaced, so traffic flowing through deeper levels is not disturbed.
	// Replace is issued unconditionally for every level: it is cheap and
	// idempotent.
	level := uint32(0)
	parent := handle.LimitBase(n, priority)
	minor := handle.LimitMinor(id, 0)
	child := handle.LimitQdisc(n, l, id, priority, 0)
	for int(level)*2 < len(chain) {
		if level > 0 {
			if int(level)*2 >= oldLen || oldPriority != priority {
				r.driver.AddLimitQdisc(ctx, parent, minor, child)
			}
			parent = child
			minor = handle.LimitMinor(id, level)
			child = handle.LimitQdisc(n, l, id, priority, level)
		}
		floor, ceil := chain.Level(int(level))
		r.driver.ReplaceLimitClass(ctx, parent, minor,
			uint64(floor.Rate), uint64(ceil.Rate), uint64(floor.Burst), uint64(ceil.Burst))
		level++
	}

	if len(chain) > 0 && (oldLen == 0 || oldPriority != priority) {
		// First chain under this priority: dispatch the client into level 0.
		r.driver.AddFilter(ctx, handle.LimitBase(n, priority), id, key.DstIP(), key.SrcIP(), handle.LimitMinor(id, 0))
	}

	if oldPriority != priority {
		// The new branch's counter starts from zero, independent of the old
		// branch's value.
		c.lastCounter = 0
		if oldPriority < n {
			r.driver.DeleteFilter(ctx, handle.RootQdisc, id)
		}
		if priority < n {
			r.driver.AddFilter(ctx, handle.RootQdisc, id, key.DstIP(), key.SrcIP(), handle.RootMinor(priority))
		}
	}

	if oldLen > 2 {
		if oldPriority != priority {
			// Drop the whole old chain at its root; the kernel cascades the
			// delete through every deeper level.
			r.driver.DeleteQdisc(ctx, handle.LimitBase(n, oldPriority), handle.LimitMinor(id, 0),
				handle.LimitQdisc(n, l, id, oldPriority, 0))
		} else if int(level)*2 < oldLen {
			// Chain got shallower: drop the first stale subtree root only.
			// Deleting level by level would issue deletes against objects
			// the cascade already removed.
			r.driver.DeleteQdisc(ctx, parent, minor, child)
		}
	}

	if oldLen > 0 && (len(chain) == 0 || oldPriority != priority) {
		// The old priority's base node no longer serves this client. The
		// metered class goes with it, so a chain added later starts a fresh
		// counter; without the reset the unsigned counter delta would wrap.
		c.lastCounter = 0
		r.driver.DeleteFilter(ctx, handle.LimitBase(n, oldPriority), id)
		r.driver.DeleteClass(ctx, handle.LimitBase(n, oldPriority), handle.LimitMinor(id, 0))
	}

	if priority == n {
		delete(r.clients, key)
		r.logger.Debug("client removed", "key", key.String(), "id", id)
		return
	}
	r.logger.Debug("client applied",
		"key", key.String(),
		"id", id,
		"priority", priority,
		"chain_depth", chain.Depth(),
	)
}
