package core

// Counter is the abstract free-running hardware counter that core code uses.
// Platform-specific implementations handle the actual timer peripheral.
type Counter interface {
	// Start programs the counter into free-running, maximum-value,
	// periodic, 32-bit mode. Called once at startup.
	Start()

	// Read returns the current raw counter value. The counter decrements
	// once per tick and reloads to CounterMax on reaching zero.
	Read() uint32
}

// NICDriver is the abstract network-interface driver that core code uses.
// Platform-specific implementations handle register-level frame I/O.
type NICDriver interface {
	// Reset resets the controller. Called once at startup.
	Reset()

	// SetPromiscuous enables or disables promiscuous reception.
	// Called once at startup.
	SetPromiscuous(on bool)

	// PollInbound delivers every currently buffered inbound frame to
	// deliver, one call per frame. The frame slice is only valid for the
	// duration of the callback; the receiver must copy what it keeps.
	PollInbound(deliver func(frame []byte))

	// Transmit hands a complete outbound frame to the controller.
	// Synchronous and non-blocking at this layer.
	Transmit(frame []byte)
}

// NetStack is the narrow lifecycle/timer-tick surface of the IP stack.
// The stack itself (ARP, DHCP, packet buffers, checksums) lives outside
// this module.
type NetStack interface {
	// Ingest takes ownership of the frame buffer. A nil return means the
	// stack accepted the frame and will release the buffer itself; a
	// non-nil return means the frame was rejected and the caller must
	// release the buffer.
	Ingest(f *Frame) error

	// FineTick runs the stack's fine-grained (lease handshake) timer.
	FineTick()

	// CoarseTick runs the stack's coarse-grained (lease bookkeeping) timer.
	CoarseTick()

	// IsUp reports whether the interface is administratively up.
	IsUp() bool

	// HasAssignedAddress reports whether the interface currently holds a
	// usable dynamically assigned address.
	HasAssignedAddress() bool

	// ApplyFixedAddress configures the interface with a static
	// address/netmask/gateway triple.
	ApplyFixedAddress(addr, netmask, gateway IPv4)
}

// IPv4 is a dotted-quad address in network byte order.
type IPv4 [4]byte

// Addr4 builds an IPv4 from its four octets.
func Addr4(a, b, c, d byte) IPv4 {
	return IPv4{a, b, c, d}
}

// IsAny reports whether the address is 0.0.0.0.
func (ip IPv4) IsAny() bool {
	return ip == IPv4{}
}

// String formats the address as dotted decimal without allocating through fmt.
func (ip IPv4) String() string {
	var buf [15]byte
	n := 0
	for i, b := range ip {
		if i > 0 {
			buf[n] = '.'
			n++
		}
		n += putUint8(buf[n:], b)
	}
	return string(buf[:n])
}

func putUint8(dst []byte, v byte) int {
	if v >= 100 {
		dst[0] = '0' + v/100
		dst[1] = '0' + (v/10)%10
		dst[2] = '0' + v%10
		return 3
	}
	if v >= 10 {
		dst[0] = '0' + v/10
		dst[1] = '0' + v%10
		return 2
	}
	dst[0] = '0' + v
	return 1
}
