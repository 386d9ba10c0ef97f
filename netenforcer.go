// Package netenforcer holds the domain types shared across the enforcement
// daemon: client identity and rate-limit chains, plus the validation errors
// the request handler reports.
package netenforcer

import (
	"fmt"
	"net/netip"
)

// ClientKey identifies a traffic flow by its (destination, source) IPv4
// address pair. Pair order is significant and never normalized: (A, B) and
// (B, A) are distinct clients. Addresses are packed most-significant octet
// first, so 10.0.0.1 is 0x0a000001.
type ClientKey struct {
	DstAddr uint32
	SrcAddr uint32
}

// DstIP returns the destination address in dotted-quad form.
func (k ClientKey) DstIP() netip.Addr { return addrFrom(k.DstAddr) }

// SrcIP returns the source address in dotted-quad form.
func (k ClientKey) SrcIP() netip.Addr { return addrFrom(k.SrcAddr) }

func (k ClientKey) String() string {
	return fmt.Sprintf("dst=%s,src=%s", k.DstIP(), k.SrcIP())
}

func addrFrom(a uint32) netip.Addr {
	return netip.AddrFrom4([4]byte{byte(a >> 24), byte(a >> 16), byte(a >> 8), byte(a)})
}

// RateLimit is one entry of a client's rate-limit chain.
type RateLimit struct {
	Rate  float64 // bytes per second
	Burst float64 // bytes
}

// RateChain is a flattened rate-limit chain. Entry 2L is the floor for chain
// level L; entry 2L+1, when present, is that level's ceiling. A missing
// ceiling entry means ceiling = floor, i.e. no borrowing headroom.
type RateChain []RateLimit

// Depth returns the number of chain levels the chain configures. A depth of
// zero means the client uses its priority's shared default with no dedicated
// chain.
func (c RateChain) Depth() int {
	return (len(c) + 1) / 2
}

// Level returns the floor and ceiling for one chain level. The level must be
// below Depth.
func (c RateChain) Level(level int) (floor, ceil RateLimit) {
	floor = c[2*level]
	ceil = floor
	if 2*level+1 < len(c) {
		ceil = c[2*level+1]
	}
	return floor, ceil
}
