// Package config holds the process-wide enforcement configuration.
package config

import "fmt"

// Defaults for a 1 Gbit/s device.
const (
	DefaultDevice        = "eth0"
	DefaultCapacity      = 125_000_000 // bytes per second
	DefaultNumPriorities = 7
	DefaultNumLevels     = 5
)

// Config is the enforcement configuration, read-only after startup.
// Use New to construct a validated instance.
type Config struct {
	// Device is the network interface whose egress is shaped.
	Device string
	// Capacity is the device's total capacity in bytes per second.
	Capacity uint64
	// NumPriorities is the number of priority levels. The value
	// NumPriorities itself is the sentinel meaning "not admitted".
	NumPriorities uint32
	// NumLevels is the maximum depth of a client's rate-limit chain.
	NumLevels uint32
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		Device:        DefaultDevice,
		Capacity:      DefaultCapacity,
		NumPriorities: DefaultNumPriorities,
		NumLevels:     DefaultNumLevels,
	}
}

// New creates a validated Config.
func New(device string, capacity uint64, numPriorities, numLevels uint32) (Config, error) {
	if device == "" {
		return Config{}, fmt.Errorf("device cannot be empty")
	}
	if capacity == 0 {
		return Config{}, fmt.Errorf("capacity must be positive")
	}
	if numPriorities == 0 {
		return Config{}, fmt.Errorf("need at least one priority level")
	}
	if numLevels == 0 {
		return Config{}, fmt.Errorf("need at least one chain level")
	}
	return Config{
		Device:        device,
		Capacity:      capacity,
		NumPriorities: numPriorities,
		NumLevels:     numLevels,
	}, nil
}

// Sentinel returns the out-of-range priority value meaning "not admitted /
// remove".
func (c Config) Sentinel() uint32 {
	return c.NumPriorities
}

// MaxChainLen returns the longest rate-limit chain the configuration
// accepts: a floor and a ceiling entry for every level plus the base.
func (c Config) MaxChainLen() int {
	return int(2 * (c.NumLevels + 1))
}

// MinShare returns the bandwidth reserved for each priority branch so that
// no tier can be starved outright.
func (c Config) MinShare() uint64 {
	return c.Capacity / 100
}
