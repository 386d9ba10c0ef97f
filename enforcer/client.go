package enforcer

import (
	"time"

	"github.com/netqos/netenforcer"
)

// Client is the registry record for one admitted (destination, source) pair.
type Client struct {
	// ID is the client's dense sequential identifier, assigned on admission
	// and never reused.
	ID uint32
	// Priority is the client's current priority level, 0 highest.
	Priority uint32
	// Chain is the client's current rate-limit chain.
	Chain netenforcer.RateChain

	// Usage accounting, owned by the occupancy estimator. The budget accrues
	// at the level-0 floor rate; occupancy assumes a single effective rate.
	rate        float64   // bytes per second of accrued budget
	lastFlush   time.Time // when the accounting was last folded in
	budget      float64   // bytes the client was allowed to send this window
	lastCounter uint64    // raw Sent counter at the last flush
	sentBytes   uint64    // bytes actually sent this window
}
