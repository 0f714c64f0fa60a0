package core

// FallbackState is the address-fallback lifecycle. There are exactly two
// states and one irreversible transition.
type FallbackState uint8

const (
	// FallbackPending means the node is still waiting for a dynamic address.
	FallbackPending FallbackState = iota

	// FallbackCommitted means the static triple has been applied. Terminal.
	FallbackCommitted
)

// AddressFallbackPolicy commits a static address triple when the dynamic
// address protocol has produced nothing within the grace period. The
// commit happens at most once per process lifetime; the policy never
// revisits the decision, even if a dynamic address arrives or disappears
// later.
type AddressFallbackPolicy struct {
	state   FallbackState
	graceMS uint64

	addr    IPv4
	netmask IPv4
	gateway IPv4
}

// NewAddressFallbackPolicy builds a pending policy from the config's
// grace period and fallback triple.
func NewAddressFallbackPolicy(cfg Config) *AddressFallbackPolicy {
	return &AddressFallbackPolicy{
		state:   FallbackPending,
		graceMS: cfg.FallbackGraceMS,
		addr:    cfg.FallbackAddr,
		netmask: cfg.FallbackNetmask,
		gateway: cfg.FallbackGateway,
	}
}

// Evaluate runs the single transition guard. While pending, if the grace
// period has passed, the interface is up and no address is assigned, the
// policy applies the fallback triple to the stack and moves to
// FallbackCommitted. Returns true only on the iteration that commits.
func (p *AddressFallbackPolicy) Evaluate(nowMS uint64, stack NetStack) bool {
	if p.state != FallbackPending {
		return false
	}
	if nowMS <= p.graceMS || !stack.IsUp() || stack.HasAssignedAddress() {
		return false
	}
	stack.ApplyFixedAddress(p.addr, p.netmask, p.gateway)
	p.state = FallbackCommitted
	return true
}

// State returns the current lifecycle state.
func (p *AddressFallbackPolicy) State() FallbackState {
	return p.state
}

// Addr returns the configured fallback address.
func (p *AddressFallbackPolicy) Addr() IPv4 {
	return p.addr
}
