package core

// MonotonicClock derives a non-decreasing millisecond clock from the raw
// down-counting hardware counter. The counter wraps from 0 back to
// CounterMax roughly every 71.6 minutes at 1MHz; the clock detects a
// single wrap between consecutive reads and accumulates elapsed ticks
// into a 64-bit total, so the returned time never wraps in practice.
//
// Precondition: NowMS must be called at least once per wrap period. If
// the counter wraps more than once between calls the missing cycles are
// silently under-counted; there is no way to tell a double wrap apart
// from a short delta with a 32-bit counter.
type MonotonicClock struct {
	counter Counter
	lastRaw uint32
	ticks   uint64
}

// NewMonotonicClock wraps the given counter. Start programs the hardware;
// until then NowMS reports 0.
func NewMonotonicClock(counter Counter) *MonotonicClock {
	return &MonotonicClock{
		counter: counter,
		lastRaw: CounterMax,
	}
}

// Start programs the counter into free-running periodic 32-bit mode and
// resets the accumulated time to zero.
func (c *MonotonicClock) Start() {
	c.counter.Start()
	c.lastRaw = CounterMax
	c.ticks = 0
}

// NowMS reads the counter once and returns the total elapsed milliseconds
// since Start. Calling it again with no elapsed hardware time returns the
// same value; nothing is double-counted.
func (c *MonotonicClock) NowMS() uint64 {
	raw := c.counter.Read()

	var delta uint64
	if raw <= c.lastRaw {
		// Still inside the same countdown cycle (or exactly stalled).
		delta = uint64(c.lastRaw - raw)
	} else {
		// The counter reloaded: whatever remained of the old cycle ran
		// out, then the new cycle counted down from CounterMax to raw.
		delta = uint64(c.lastRaw) + uint64(CounterMax-raw)
	}

	c.lastRaw = raw
	// Accumulate in ticks, not milliseconds, so sub-millisecond
	// remainders carry over to the next read instead of being dropped.
	c.ticks += delta
	return c.ticks / TicksPerMS
}

// ElapsedTicks returns the total raw ticks accumulated since Start.
func (c *MonotonicClock) ElapsedTicks() uint64 {
	return c.ticks
}
