package netenforcer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/netqos/netenforcer"
)

func TestClientKey(t *testing.T) {
	key := netenforcer.ClientKey{DstAddr: 0x0a000001, SrcAddr: 0xc0a80a63}
	assert.Equal(t, "10.0.0.1", key.DstIP().String())
	assert.Equal(t, "192.168.10.99", key.SrcIP().String())
	assert.Equal(t, "dst=10.0.0.1,src=192.168.10.99", key.String())

	// Pair order is significant: the reversed pair is a different client.
	reversed := netenforcer.ClientKey{DstAddr: key.SrcAddr, SrcAddr: key.DstAddr}
	assert.NotEqual(t, key, reversed)
}

func TestRateChainDepth(t *testing.T) {
	assert.Equal(t, 0, netenforcer.RateChain(nil).Depth())
	assert.Equal(t, 1, netenforcer.RateChain{{Rate: 1}}.Depth())
	assert.Equal(t, 1, netenforcer.RateChain{{Rate: 1}, {Rate: 2}}.Depth())
	assert.Equal(t, 2, netenforcer.RateChain{{Rate: 1}, {Rate: 2}, {Rate: 3}}.Depth())
	assert.Equal(t, 3, netenforcer.RateChain{{Rate: 1}, {Rate: 2}, {Rate: 3}, {Rate: 4}, {Rate: 5}}.Depth())
}

func TestRateChainLevel(t *testing.T) {
	chain := netenforcer.RateChain{
		{Rate: 1, Burst: 10}, {Rate: 2, Burst: 20},
		{Rate: 3, Burst: 30},
	}

	floor, ceil := chain.Level(0)
	assert.Equal(t, netenforcer.RateLimit{Rate: 1, Burst: 10}, floor)
	assert.Equal(t, netenforcer.RateLimit{Rate: 2, Burst: 20}, ceil)

	// The last level has no ceiling entry; the floor doubles as the ceiling.
	floor, ceil = chain.Level(1)
	assert.Equal(t, netenforcer.RateLimit{Rate: 3, Burst: 30}, floor)
	assert.Equal(t, floor, ceil)
}
