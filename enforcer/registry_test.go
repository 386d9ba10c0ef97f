package enforcer_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netqos/netenforcer"
)

func TestApply_Admission(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)

	r.Apply(context.Background(), testKey(), 0,
		netenforcer.RateChain{{Rate: 1_000_000, Burst: 1000}, {Rate: 2_000_000, Burst: 2000}})

	require.True(t, r.Has(testKey()))
	// One level-0 class under priority 0's base qdisc, the dispatch filter
	// into it, and the root filter steering the pair into the branch.
	assert.Equal(t, []string{
		"tc class replace dev eth0 parent 23: classid 23:2 htb rate 1000000bps ceil 2000000bps burst 1000b cburst 2000b",
		"tc filter add dev eth0 parent 23: protocol ip prio 1 u32 match ip dst 10.0.0.1 match ip src 10.0.0.2 flowid 23:2",
		"tc filter add dev eth0 parent 1: protocol ip prio 1 u32 match ip dst 10.0.0.1 match ip src 10.0.0.2 flowid 1:1",
	}, fe.strings())
}

func TestApply_FloorOnlyChainPinsCeiling(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)

	// A chain with no ceiling entry reuses the floor as the ceiling, so the
	// class cannot borrow.
	r.Apply(context.Background(), testKey(), 0, netenforcer.RateChain{{Rate: 1_000_000, Burst: 1000}})

	replaces := fe.matching("class", "replace")
	require.Len(t, replaces, 1)
	assert.Contains(t, replaces[0].String(), "rate 1000000bps ceil 1000000bps burst 1000b cburst 1000b")
}

func TestApply_DeepChainBuildsLevels(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)

	chain := netenforcer.RateChain{
		{Rate: 1_000_000}, {Rate: 8_000_000},
		{Rate: 2_000_000}, {Rate: 8_000_000},
		{Rate: 4_000_000}, {Rate: 8_000_000},
	}
	r.Apply(context.Background(), testKey(), 0, chain)

	// Levels below the base each get their own qdisc, chained one under the
	// previous level's class.
	qdiscs := fe.matching("qdisc", "add")
	require.Len(t, qdiscs, 2)
	assert.Equal(t, "tc qdisc add dev eth0 parent 23:2 handle 30: htb default 1", qdiscs[0].String())
	assert.Equal(t, "tc qdisc add dev eth0 parent 30:1 handle 31: htb default 1", qdiscs[1].String())

	replaces := fe.matching("class", "replace")
	require.Len(t, replaces, 3)
	assert.Contains(t, replaces[1].String(), "classid 30:1")
	assert.Contains(t, replaces[2].String(), "classid 31:1")
}

func TestApply_SamePolicyIsStructurallyIdempotent(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)
	chain := netenforcer.RateChain{{Rate: 1_000_000, Burst: 1000}, {Rate: 2_000_000, Burst: 2000}}

	r.Apply(context.Background(), testKey(), 0, chain)
	fe.reset()
	r.Apply(context.Background(), testKey(), 0, chain)

	// Re-applying an unchanged policy only flushes the counters and replaces
	// class parameters in place. No structure is added or removed, so traffic
	// through the chain is not disturbed.
	require.Len(t, fe.cmds, 2)
	assert.Equal(t, "-s", fe.cmds[0].Args[0])
	assert.Equal(t, "tc class replace dev eth0 parent 23: classid 23:2 htb rate 1000000bps ceil 2000000bps burst 1000b cburst 2000b",
		fe.cmds[1].String())
}

func TestApply_PriorityMigration(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)
	chain := netenforcer.RateChain{
		{Rate: 1_000_000}, {Rate: 8_000_000},
		{Rate: 2_000_000}, {Rate: 8_000_000},
	}

	r.Apply(context.Background(), testKey(), 2, chain)
	fe.reset()
	r.Apply(context.Background(), testKey(), 5, chain)

	// The chain is rebuilt under priority 5's base before the old one under
	// priority 2 goes away.
	assert.Equal(t, []string{
		"tc -s class show dev eth0 parent 25:",
		"tc class replace dev eth0 parent 28: classid 28:2 htb rate 1000000bps ceil 8000000bps",
		"tc qdisc add dev eth0 parent 28:2 handle 55: htb default 1",
		"tc class replace dev eth0 parent 55: classid 55:1 htb rate 2000000bps ceil 8000000bps",
		"tc filter add dev eth0 parent 28: protocol ip prio 1 u32 match ip dst 10.0.0.1 match ip src 10.0.0.2 flowid 28:2",
		"tc filter del dev eth0 parent 1: prio 1 u32",
		"tc filter add dev eth0 parent 1: protocol ip prio 1 u32 match ip dst 10.0.0.1 match ip src 10.0.0.2 flowid 1:6",
		"tc qdisc del dev eth0 parent 25:2 handle 40:",
		"tc filter del dev eth0 parent 25: prio 1 u32",
		"tc class del dev eth0 classid 25:2",
	}, fe.strings())

	// Exactly one qdisc delete: the old chain root. The kernel cascades it,
	// so per-level deletes would hit already-removed objects.
	assert.Len(t, fe.matching("qdisc", "del"), 1)
}

func TestApply_ChainShrink(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)

	r.Apply(context.Background(), testKey(), 0, netenforcer.RateChain{
		{Rate: 1_000_000}, {Rate: 8_000_000},
		{Rate: 2_000_000}, {Rate: 8_000_000},
		{Rate: 4_000_000}, {Rate: 8_000_000},
	})
	fe.reset()
	r.Apply(context.Background(), testKey(), 0, netenforcer.RateChain{{Rate: 1_000_000}, {Rate: 8_000_000}})

	// Shrinking under an unchanged priority deletes only the first stale
	// subtree root; the cascade removes the deeper levels.
	dels := fe.matching("qdisc", "del")
	require.Len(t, dels, 1)
	assert.Equal(t, "tc qdisc del dev eth0 parent 23:2 handle 30:", dels[0].String())
	assert.Empty(t, fe.matching("filter"))
	assert.Empty(t, fe.matching("class", "del"))
}

func TestApply_Removal(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)
	sentinel := uint32(7)

	r.Apply(context.Background(), testKey(), 0, netenforcer.RateChain{{Rate: 1_000_000}, {Rate: 2_000_000}})
	fe.reset()
	r.Apply(context.Background(), testKey(), sentinel, nil)

	assert.False(t, r.Has(testKey()))
	assert.Equal(t, []string{
		"tc -s class show dev eth0 parent 23:",
		"tc filter del dev eth0 parent 1: prio 1 u32",
		"tc filter del dev eth0 parent 23: prio 1 u32",
		"tc class del dev eth0 classid 23:2",
	}, fe.strings())
}

func TestApply_RemovalOfUnknownKeyIsNoOp(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)

	r.Apply(context.Background(), testKey(), 7, nil)

	assert.False(t, r.Has(testKey()))
	assert.Empty(t, fe.cmds)
}

func TestApply_IdsAreSequentialAndNotReused(t *testing.T) {
	fe := newFakeExecutor()
	now := time.Now()
	r := newTestRegistry(fe, &now)
	ctx := context.Background()
	other := netenforcer.ClientKey{DstAddr: 0x0a000003, SrcAddr: 0x0a000004}
	chain := netenforcer.RateChain{{Rate: 1_000_000}, {Rate: 2_000_000}}

	r.Apply(ctx, testKey(), 0, chain)
	fe.reset()
	r.Apply(ctx, other, 0, chain)

	// The second client gets id 1: filter prio 2, level-0 minor 3.
	adds := fe.matching("filter", "add")
	require.Len(t, adds, 2)
	assert.Contains(t, adds[0].String(), "prio 2")
	assert.Contains(t, adds[0].String(), "flowid 23:3")

	// Remove the first client and admit it again: its old id stays retired.
	r.Apply(ctx, testKey(), 7, nil)
	fe.reset()
	r.Apply(ctx, testKey(), 0, chain)
	adds = fe.matching("filter", "add")
	require.Len(t, adds, 2)
	assert.Contains(t, adds[0].String(), "prio 3")
	assert.Contains(t, adds[0].String(), "flowid 23:4")
}
