package core

import (
	"tinygo.org/x/drivers/netlink"
)

// Node is the superloop: one clock, one scheduler, one bridge, one
// fallback policy, composed once at startup and driven forever on a
// single core. Nothing in here blocks or suspends; every iteration
// polls, computes and returns.
type Node struct {
	clock    *MonotonicClock
	sched    *PeriodicTaskScheduler
	bridge   *FrameBridge
	fallback *AddressFallbackPolicy

	drv   NICDriver
	stack NetStack

	fineTask   TaskID
	coarseTask TaskID

	// Notify, when set, receives link lifecycle events (address acquired
	// or fallback committed). Optional.
	Notify func(netlink.Event)

	// Logf, when set, receives informational one-liners. Optional; the
	// core never requires a console.
	Logf func(format string, args ...any)

	announced bool
	started   bool
}

// NewNode wires the four core components around the given collaborators.
func NewNode(cfg Config, counter Counter, drv NICDriver, stack NetStack) *Node {
	return &Node{
		clock:    NewMonotonicClock(counter),
		sched:    NewPeriodicTaskScheduler(),
		bridge:   NewFrameBridge(drv, stack, NewFramePool(cfg.PoolSize)),
		fallback: NewAddressFallbackPolicy(cfg),
		drv:      drv,
		stack:    stack,
	}
}

// Start brings up the hardware and registers the maintenance tasks.
// Must be called exactly once before Step or Run.
func (n *Node) Start(cfg Config) {
	n.drv.Reset()
	n.drv.SetPromiscuous(true)
	n.clock.Start()

	now := n.clock.NowMS()
	// Fine before coarse: registration order is firing priority.
	n.fineTask = n.sched.Register(cfg.FineIntervalMS, now)
	n.coarseTask = n.sched.Register(cfg.CoarseIntervalMS, now)

	n.notify(netlink.EventNetDown)
	n.started = true
}

// Step runs one superloop iteration: drain inbound frames, advance the
// clock, fire due maintenance tasks, evaluate address fallback.
func (n *Node) Step() {
	n.bridge.PumpInbound()

	now := n.clock.NowMS()

	due := n.sched.PollDue(now)
	if due.Contains(n.fineTask) {
		n.stack.FineTick()
		n.checkAddress()
	}
	if due.Contains(n.coarseTask) {
		n.stack.CoarseTick()
	}

	if n.fallback.Evaluate(now, n.stack) {
		n.logf("no lease after %dms, using static IP %s", now, n.fallback.Addr().String())
		n.notify(netlink.EventNetUp)
		n.announced = true
	}
}

// Run starts the node and never returns.
func (n *Node) Run(cfg Config) {
	if !n.started {
		n.Start(cfg)
	}
	for {
		n.Step()
	}
}

// SendOutbound is the stack's transmit path down to the driver.
func (n *Node) SendOutbound(frame []byte) error {
	return n.bridge.SendOutbound(frame)
}

// NowMS exposes the node's monotonic clock.
func (n *Node) NowMS() uint64 {
	return n.clock.NowMS()
}

// FallbackState reports the fallback policy's lifecycle state.
func (n *Node) FallbackState() FallbackState {
	return n.fallback.State()
}

// checkAddress announces the first dynamically assigned address. Checked
// on the fine tick, like the lease state it reflects.
func (n *Node) checkAddress() {
	if n.announced || !n.stack.HasAssignedAddress() {
		return
	}
	n.logf("lease acquired")
	n.notify(netlink.EventNetUp)
	n.announced = true
}

func (n *Node) notify(ev netlink.Event) {
	if n.Notify != nil {
		n.Notify(ev)
	}
}

func (n *Node) logf(format string, args ...any) {
	if n.Logf != nil {
		n.Logf(format, args...)
	}
}
