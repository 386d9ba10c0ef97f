package tc

import (
	"context"
	"fmt"
	"log/slog"
	"net/netip"
)

// Driver issues shaping commands for a single device.
//
// Mutations are fire and forget: the tool offers no success signal beyond
// its exit status, so failures are logged with the rendered command and
// never retried. Callers must not assume a mutation took effect.
type Driver struct {
	dev    string
	exec   Executor
	logger *slog.Logger
}

// NewDriver creates a Driver for the given device. Commands run through
// exec, which tests replace with a recording fake.
func NewDriver(dev string, exec Executor, logger *slog.Logger) *Driver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Driver{
		dev:    dev,
		exec:   exec,
		logger: logger.With("component", "tc"),
	}
}

// Device returns the device this driver configures.
func (d *Driver) Device() string {
	return d.dev
}

func (d *Driver) run(ctx context.Context, cmd Command) {
	if out, err := d.exec.Run(ctx, cmd); err != nil {
		d.logger.Warn("tc command failed", "cmd", cmd.String(), "output", out, "error", err)
	}
}

// DeleteRoot removes the device's root qdisc and with it the entire
// hierarchy. Absence of a root is not an error.
func (d *Driver) DeleteRoot(ctx context.Context) {
	d.run(ctx, Command{Args: []string{"qdisc", "del", "dev", d.dev, "root"}})
}

// AddRootQdisc installs the root HTB qdisc with handle 1: and the given
// default minor for unclassified traffic.
func (d *Driver) AddRootQdisc(ctx context.Context, defaultMinor uint32) {
	d.run(ctx, Command{Args: []string{
		"qdisc", "add", "dev", d.dev, "root", "handle", "1:",
		"htb", "default", fmt.Sprintf("%d", defaultMinor),
	}})
}

// AddTreeClass adds a class to the root HTB. parentMinor 0 attaches directly
// under the root qdisc. ceil 0 omits the ceiling, letting the class borrow
// without bound within its parent.
func (d *Driver) AddTreeClass(ctx context.Context, parentMinor, minor uint32, rate, ceil uint64, prio uint32) {
	parent := qdiscID(1)
	if parentMinor != 0 {
		parent = classID(1, parentMinor)
	}
	args := []string{
		"class", "add", "dev", d.dev, "parent", parent,
		"classid", classID(1, minor), "htb", "rate", fmt.Sprintf("%dbps", rate),
	}
	if ceil > 0 {
		args = append(args, "ceil", fmt.Sprintf("%dbps", ceil))
	}
	args = append(args, "prio", fmt.Sprintf("%d", prio))
	d.run(ctx, Command{Args: args})
}

// AddMarkQdisc attaches a DSCP marking qdisc under root class 1:parentMinor.
func (d *Driver) AddMarkQdisc(ctx context.Context, parentMinor, handle uint32) {
	d.run(ctx, Command{Args: []string{
		"qdisc", "add", "dev", d.dev, "parent", classID(1, parentMinor),
		"handle", qdiscID(handle), "dsmark", "indices", "2", "default_index", "1",
	}})
}

// SetMark sets the DSCP value stamped by a marking qdisc's class. The class
// is created implicitly by the qdisc, so this must be a change, not an add.
func (d *Driver) SetMark(ctx context.Context, handle uint32, value uint8) {
	d.run(ctx, Command{Args: []string{
		"class", "change", "dev", d.dev, "classid", classID(handle, 1),
		"dsmark", "mask", "0x3", "value", fmt.Sprintf("0x%x", value),
	}})
}

// AddLimitQdisc attaches an HTB qdisc for rate limiting under class
// parent:parentMinor. Traffic not matched into a chain class falls through
// to the reserved minor 1.
func (d *Driver) AddLimitQdisc(ctx context.Context, parent, parentMinor, handle uint32) {
	d.run(ctx, Command{Args: []string{
		"qdisc", "add", "dev", d.dev, "parent", classID(parent, parentMinor),
		"handle", qdiscID(handle), "htb", "default", "1",
	}})
}

// ReplaceLimitClass creates or updates a rate-limit class in place. Replace
// is cheap and idempotent, so callers issue it unconditionally; an existing
// class keeps its structural position and only its parameters change.
// Zero bursts are omitted, leaving the kernel's computed burst in place.
func (d *Driver) ReplaceLimitClass(ctx context.Context, parent, minor uint32, rate, ceil, burst, cburst uint64) {
	args := []string{
		"class", "replace", "dev", d.dev, "parent", qdiscID(parent),
		"classid", classID(parent, minor), "htb",
		"rate", fmt.Sprintf("%dbps", rate), "ceil", fmt.Sprintf("%dbps", ceil),
	}
	if burst > 0 {
		args = append(args, "burst", fmt.Sprintf("%db", burst))
	}
	if cburst > 0 {
		args = append(args, "cburst", fmt.Sprintf("%db", cburst))
	}
	d.run(ctx, Command{Args: args})
}

// AddFilter installs a u32 filter on qdisc parent: sending packets matching
// dst and src into class parent:minor. The filter's prio is set to id+1 so
// the single filter per client can later be deleted by client id alone; with
// one filter per client the prio value has no matching effect.
func (d *Driver) AddFilter(ctx context.Context, parent, id uint32, dst, src netip.Addr, minor uint32) {
	d.run(ctx, Command{Args: []string{
		"filter", "add", "dev", d.dev, "parent", qdiscID(parent),
		"protocol", "ip", "prio", fmt.Sprintf("%d", id+1), "u32",
		"match", "ip", "dst", dst.String(),
		"match", "ip", "src", src.String(),
		"flowid", classID(parent, minor),
	}})
}

// DeleteFilter removes the filter installed for a client on qdisc parent:,
// located by the prio tag id+1.
func (d *Driver) DeleteFilter(ctx context.Context, parent, id uint32) {
	d.run(ctx, Command{Args: []string{
		"filter", "del", "dev", d.dev, "parent", qdiscID(parent),
		"prio", fmt.Sprintf("%d", id+1), "u32",
	}})
}

// DeleteQdisc removes the qdisc with the given handle from under class
// parent:parentMinor. The kernel cascades the delete to the qdisc's whole
// subtree, so one delete tears down every deeper level.
func (d *Driver) DeleteQdisc(ctx context.Context, parent, parentMinor, handle uint32) {
	d.run(ctx, Command{Args: []string{
		"qdisc", "del", "dev", d.dev, "parent", classID(parent, parentMinor),
		"handle", qdiscID(handle),
	}})
}

// DeleteClass removes class parent:minor.
func (d *Driver) DeleteClass(ctx context.Context, parent, minor uint32) {
	d.run(ctx, Command{Args: []string{
		"class", "del", "dev", d.dev, "classid", classID(parent, minor),
	}})
}

// SentBytes reports the Sent counter of class parent:minor from the tool's
// statistics listing. A class that has never been created reports zero; a
// client with a configured limit but no observed traffic is a normal case,
// not an error.
func (d *Driver) SentBytes(ctx context.Context, parent, minor uint32) (uint64, error) {
	cmd := Command{Args: []string{"-s", "class", "show", "dev", d.dev, "parent", qdiscID(parent)}}
	out, err := d.exec.Run(ctx, cmd)
	if err != nil {
		d.logger.Warn("tc stats query failed", "cmd", cmd.String(), "error", err)
		return 0, err
	}
	return parseSentBytes(out, parent, minor), nil
}
