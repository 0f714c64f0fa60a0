// Package stack carries the node-side seam for the IP stack. The real
// stack (ARP, DHCP, packet buffers) is an external collaborator; this
// package provides the null implementation used until one is wired in,
// which is also what the runnable targets and the fallback demo use.
package stack

import "ethernode/core"

// Null implements core.NetStack with no protocol machinery at all: it
// accepts and immediately releases every frame, never acquires a dynamic
// address, and remembers the static triple applied by the fallback
// policy.
type Null struct {
	up      bool
	addr    core.IPv4
	netmask core.IPv4
	gateway core.IPv4
}

// NewNull returns an administratively-up null stack.
func NewNull() *Null {
	return &Null{up: true}
}

// Ingest accepts the frame and releases its buffer straight back.
func (s *Null) Ingest(f *core.Frame) error {
	f.Release()
	return nil
}

// FineTick is a no-op; there is no lease to maintain.
func (s *Null) FineTick() {}

// CoarseTick is a no-op.
func (s *Null) CoarseTick() {}

// IsUp reports the administrative state.
func (s *Null) IsUp() bool {
	return s.up
}

// HasAssignedAddress reports whether an address has been applied.
func (s *Null) HasAssignedAddress() bool {
	return !s.addr.IsAny()
}

// ApplyFixedAddress records the static triple.
func (s *Null) ApplyFixedAddress(addr, netmask, gateway core.IPv4) {
	s.addr = addr
	s.netmask = netmask
	s.gateway = gateway
}

// Addr returns the currently configured address (zero until fallback).
func (s *Null) Addr() core.IPv4 {
	return s.addr
}

var _ core.NetStack = (*Null)(nil)
