package enforcer_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/netqos/netenforcer"
	"github.com/netqos/netenforcer/config"
	"github.com/netqos/netenforcer/enforcer"
	"github.com/netqos/netenforcer/tc"
)

// fakeExecutor records every issued command and serves synthetic statistics
// listings for queries. Sent counters are keyed by class id, e.g. "23:2".
type fakeExecutor struct {
	cmds []tc.Command
	sent map[string]uint64
}

func newFakeExecutor() *fakeExecutor {
	return &fakeExecutor{sent: make(map[string]uint64)}
}

func (f *fakeExecutor) Run(_ context.Context, cmd tc.Command) (string, error) {
	f.cmds = append(f.cmds, cmd)
	if len(cmd.Args) > 0 && cmd.Args[0] == "-s" {
		return f.listing(cmd.Args[len(cmd.Args)-1]), nil
	}
	return "", nil
}

// listing renders a stats listing for every known class under parent ("P:").
func (f *fakeExecutor) listing(parent string) string {
	var b strings.Builder
	for id, n := range f.sent {
		if !strings.HasPrefix(id, parent) {
			continue
		}
		fmt.Fprintf(&b, "class htb %s root prio 0 rate 8000Kbit ceil 8000Kbit burst 1600b cburst 1600b\n", id)
		fmt.Fprintf(&b, " Sent %d bytes 1 pkt (dropped 0, overlimits 0 requeues 0)\n", n)
		fmt.Fprintf(&b, " rate 0bit 0pps backlog 0b 0p requeues 0\n")
	}
	return b.String()
}

func (f *fakeExecutor) reset() {
	f.cmds = nil
}

// strings renders the recorded commands for order-sensitive assertions.
func (f *fakeExecutor) strings() []string {
	out := make([]string, len(f.cmds))
	for i, cmd := range f.cmds {
		out[i] = cmd.String()
	}
	return out
}

// matching returns the recorded commands whose leading arguments equal verb.
func (f *fakeExecutor) matching(verb ...string) []tc.Command {
	var out []tc.Command
	for _, cmd := range f.cmds {
		if len(cmd.Args) < len(verb) {
			continue
		}
		ok := true
		for i, v := range verb {
			if cmd.Args[i] != v {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, cmd)
		}
	}
	return out
}

// newTestRegistry builds a registry on the default configuration with a
// recording executor and a caller-controlled clock.
func newTestRegistry(fe *fakeExecutor, now *time.Time) *enforcer.Registry {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := config.Default()
	driver := tc.NewDriver(cfg.Device, fe, logger)
	return enforcer.NewRegistry(cfg, driver, logger,
		enforcer.WithClock(func() time.Time { return *now }))
}

func testKey() netenforcer.ClientKey {
	return netenforcer.ClientKey{DstAddr: 0x0a000001, SrcAddr: 0x0a000002} // 10.0.0.1 <- 10.0.0.2
}
