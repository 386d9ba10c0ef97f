// netenforcerd enforces per-client network priorities and rate limits on a
// single device, configured by an upstream controller over gRPC.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/vishvananda/netlink"
	"golang.org/x/sys/unix"

	"github.com/netqos/netenforcer/config"
	"github.com/netqos/netenforcer/enforcer"
	"github.com/netqos/netenforcer/hierarchy"
	"github.com/netqos/netenforcer/logging"
	"github.com/netqos/netenforcer/server"
	"github.com/netqos/netenforcer/tc"
)

var (
	device     = flag.String("d", config.DefaultDevice, "network device to shape")
	capacity   = flag.Uint64("b", config.DefaultCapacity, "total device capacity in bytes per second")
	priorities = flag.Uint("n", config.DefaultNumPriorities, "number of priority levels")
	levels     = flag.Uint("l", config.DefaultNumLevels, "maximum rate-limit chain depth")
	listenAddr = flag.String("listen", server.DefaultListenAddress, "gRPC listen address")
	logSpec    = flag.String("log", "", "log spec, e.g. info,enforcer=debug (also "+logging.EnvVar+")")
	logFormat  = flag.String("log-format", "text", "log format: text or json")
)

func main() {
	flag.Parse()
	if err := run(); err != nil {
		slog.Error("netenforcerd failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	format, err := logging.ParseFormat(*logFormat)
	if err != nil {
		return err
	}
	logger, err := logging.New(logging.Options{
		FlagSpec: *logSpec,
		EnvSpec:  os.Getenv(logging.EnvVar),
		Format:   format,
	})
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	cfg, err := config.New(*device, *capacity, uint32(*priorities), uint32(*levels))
	if err != nil {
		return err
	}

	// Fail on a bad device name up front instead of discovering it through
	// tc failures later.
	link, err := netlink.LinkByName(cfg.Device)
	if err != nil {
		return fmt.Errorf("device %s: %w", cfg.Device, err)
	}
	logger.Info("starting",
		"device", cfg.Device,
		"mtu", link.Attrs().MTU,
		"capacity", cfg.Capacity,
		"priorities", cfg.NumPriorities,
		"levels", cfg.NumLevels,
	)

	ctx, stop := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer stop()

	driver := tc.NewDriver(cfg.Device, tc.ExecExecutor{}, logger)
	tree := hierarchy.New(cfg, driver, logger)
	tree.Setup(ctx)
	// Teardown must run on every exit path. ctx is cancelled by the time we
	// get here, so give the teardown its own context.
	defer tree.Teardown(context.Background())

	registry := enforcer.NewRegistry(cfg, driver, logger)
	return server.New(cfg, registry, logger).Serve(ctx, *listenAddr)
}
