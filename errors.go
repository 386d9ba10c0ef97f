package netenforcer

import "fmt"

// ErrBadPriority is reported for a client update naming a priority outside
// the configured range.
type ErrBadPriority struct {
	Priority uint32
	Limit    uint32 // number of configured priority levels
}

func (e ErrBadPriority) Error() string {
	return fmt.Sprintf("invalid priority %d, must be < %d", e.Priority, e.Limit)
}

// ErrChainTooLong is reported for a rate-limit chain with more entries than
// the configured chain depth can hold.
type ErrChainTooLong struct {
	Len   int
	Limit int
}

func (e ErrChainTooLong) Error() string {
	return fmt.Sprintf("too many rate limits: %d, must be <= %d", e.Len, e.Limit)
}

// ErrChainMismatch is reported when a client update carries rate and burst
// sequences of different lengths.
type ErrChainMismatch struct {
	Rates  int
	Bursts int
}

func (e ErrChainMismatch) Error() string {
	return fmt.Sprintf("rate-limit rates (%d) and bursts (%d) differ in length", e.Rates, e.Bursts)
}
