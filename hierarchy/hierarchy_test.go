package hierarchy_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/netqos/netenforcer/config"
	"github.com/netqos/netenforcer/hierarchy"
	"github.com/netqos/netenforcer/tc"
)

type fakeExecutor struct {
	cmds []tc.Command
}

func (f *fakeExecutor) Run(_ context.Context, cmd tc.Command) (string, error) {
	f.cmds = append(f.cmds, cmd)
	return "", nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSetup(t *testing.T) {
	fe := &fakeExecutor{}
	cfg := config.Default()
	h := hierarchy.New(cfg, tc.NewDriver(cfg.Device, fe, discardLogger()), discardLogger())

	h.Setup(context.Background())

	// One wipe, one root qdisc, one top helper class, then five commands per
	// priority branch.
	require.Len(t, fe.cmds, 3+5*int(cfg.NumPriorities))

	assert.Equal(t, "tc qdisc del dev eth0 root", fe.cmds[0].String())
	assert.Equal(t, "tc qdisc add dev eth0 root handle 1: htb default 15", fe.cmds[1].String())
	assert.Equal(t, "tc class add dev eth0 parent 1: classid 1:8 htb rate 125000000bps prio 0", fe.cmds[2].String())

	// Priority 0: guaranteed minimum share, borrowing up to full capacity,
	// stamped with the highest class selector (cs7).
	assert.Equal(t, "tc class add dev eth0 parent 1:8 classid 1:1 htb rate 1250000bps ceil 125000000bps prio 0", fe.cmds[3].String())
	assert.Equal(t, "tc qdisc add dev eth0 parent 1:1 handle 16: dsmark indices 2 default_index 1", fe.cmds[4].String())
	assert.Equal(t, "tc class change dev eth0 classid 16:1 dsmark mask 0x3 value 0xe0", fe.cmds[5].String())
	assert.Equal(t, "tc qdisc add dev eth0 parent 16:1 handle 23: htb default 1", fe.cmds[6].String())
	assert.Equal(t, "tc class add dev eth0 parent 1:8 classid 1:9 htb rate 8750000bps ceil 123750000bps prio 1", fe.cmds[7].String())

	// Priority 1 hangs off helper 1:9 and steps the selector down to cs6.
	assert.Equal(t, "tc class add dev eth0 parent 1:9 classid 1:2 htb rate 1250000bps ceil 123750000bps prio 1", fe.cmds[8].String())
	assert.Equal(t, "tc class change dev eth0 classid 17:1 dsmark mask 0x3 value 0xc0", fe.cmds[10].String())
}

func TestTeardown(t *testing.T) {
	fe := &fakeExecutor{}
	cfg := config.Default()
	h := hierarchy.New(cfg, tc.NewDriver(cfg.Device, fe, discardLogger()), discardLogger())

	h.Teardown(context.Background())

	require.Len(t, fe.cmds, 1)
	assert.Equal(t, "tc qdisc del dev eth0 root", fe.cmds[0].String())
}
