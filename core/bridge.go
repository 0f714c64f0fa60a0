package core

import "errors"

// ErrFrameTooLarge is returned by SendOutbound when the stack hands down
// a frame larger than the staging buffer.
var ErrFrameTooLarge = errors.New("bridge: frame exceeds MaxFrameLen")

// FrameBridge moves frames between the NIC driver and the IP stack.
// Inbound, it copies each polled driver frame into a pool buffer and
// hands ownership to the stack; outbound, it stages the stack's bytes
// into a bounded buffer and gives them to the driver.
type FrameBridge struct {
	drv   NICDriver
	stack NetStack
	pool  *FramePool

	// Flat staging buffer for outbound frames, reused across calls.
	txBuf [MaxFrameLen]byte

	dropped uint32
}

// NewFrameBridge wires the bridge between driver and stack with a pool
// of inbound buffers.
func NewFrameBridge(drv NICDriver, stack NetStack, pool *FramePool) *FrameBridge {
	return &FrameBridge{drv: drv, stack: stack, pool: pool}
}

// PumpInbound drains every frame the driver currently has buffered into
// the stack. A frame that cannot get a pool buffer is dropped; a frame
// the stack rejects is released back to the pool. Neither case is an
// error to the caller — single-frame loss is absorbed here.
func (b *FrameBridge) PumpInbound() {
	b.drv.PollInbound(func(raw []byte) {
		f := b.pool.Take(raw)
		if f == nil {
			b.dropped++
			return
		}
		if err := b.stack.Ingest(f); err != nil {
			f.Release()
		}
		// Accepted: the stack owns the buffer now.
	})
}

// SendOutbound copies the stack's frame bytes into the staging buffer
// and transmits them. The driver call is synchronous; once it returns
// the caller may reuse its slice.
func (b *FrameBridge) SendOutbound(frame []byte) error {
	if len(frame) > len(b.txBuf) {
		return ErrFrameTooLarge
	}
	n := copy(b.txBuf[:], frame)
	b.drv.Transmit(b.txBuf[:n])
	return nil
}

// Dropped returns how many inbound frames were lost to pool exhaustion.
func (b *FrameBridge) Dropped() uint32 {
	return b.dropped
}
