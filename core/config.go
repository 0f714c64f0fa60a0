package core

// Timing constants for the versatilepb board
const (
	// TickHz is the hardware counter tick rate (SP804 fed at 1MHz)
	TickHz = 1000000

	// CounterMax is the reload value of the 32-bit down counter
	CounterMax = uint32(0xFFFFFFFF)

	// TicksPerMS converts raw counter ticks to milliseconds
	TicksPerMS = TickHz / 1000
)

// Maintenance intervals and fallback policy
const (
	// FineIntervalMS drives the lease handshake timer
	FineIntervalMS = 500

	// CoarseIntervalMS drives the lease bookkeeping timer
	CoarseIntervalMS = 60000

	// FallbackGraceMS is how long the node waits for a dynamic address
	// before committing the static fallback
	FallbackGraceMS = 10000
)

// Frame sizing
const (
	// MTU is the interface MTU
	MTU = 1500

	// MaxFrameLen bounds a full link-layer frame (MTU + 14-byte header)
	MaxFrameLen = MTU + 14

	// DefaultPoolSize is how many inbound frame buffers the bridge holds
	DefaultPoolSize = 4
)

// Config holds the node's compile-time policy knobs. There is no runtime
// configuration surface; this struct only exists so the pieces are
// constructed explicitly instead of read from ambient globals.
type Config struct {
	FineIntervalMS   uint32
	CoarseIntervalMS uint32
	FallbackGraceMS  uint64

	// Static fallback triple applied when no dynamic address arrives
	// within the grace period
	FallbackAddr    IPv4
	FallbackNetmask IPv4
	FallbackGateway IPv4

	// Inbound frame buffer count
	PoolSize int
}

// DefaultConfig returns the node configuration used on versatilepb.
func DefaultConfig() Config {
	return Config{
		FineIntervalMS:   FineIntervalMS,
		CoarseIntervalMS: CoarseIntervalMS,
		FallbackGraceMS:  FallbackGraceMS,
		FallbackAddr:     Addr4(10, 0, 2, 99),
		FallbackNetmask:  Addr4(255, 255, 0, 0),
		FallbackGateway:  Addr4(10, 0, 0, 1),
		PoolSize:         DefaultPoolSize,
	}
}
