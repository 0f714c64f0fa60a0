package core

// Frame is one link-layer frame staged in a fixed-capacity buffer.
// Ownership transfers whole: whoever holds the *Frame may read Bytes and
// must eventually hand it onward or release it back to its pool.
type Frame struct {
	data [MaxFrameLen]byte
	len  int
	pool *FramePool
}

// Bytes returns the valid payload span.
func (f *Frame) Bytes() []byte {
	return f.data[:f.len]
}

// Len returns the payload length.
func (f *Frame) Len() int {
	return f.len
}

// Release returns the frame to its pool. The frame must not be touched
// afterwards.
func (f *Frame) Release() {
	f.pool.put(f)
}

// FramePool is a fixed set of frame buffers allocated once at startup.
// It stands in for a packet-buffer allocator: taking a frame can fail
// (pool empty), and a failed take is a silent single-frame loss.
type FramePool struct {
	frames []Frame
	free   []*Frame
	missed uint32
}

// NewFramePool allocates n frame buffers. All allocation happens here;
// the steady-state loop never allocates.
func NewFramePool(n int) *FramePool {
	p := &FramePool{
		frames: make([]Frame, n),
		free:   make([]*Frame, 0, n),
	}
	for i := range p.frames {
		p.frames[i].pool = p
		p.free = append(p.free, &p.frames[i])
	}
	return p
}

// Take copies payload into a free buffer and returns it, or nil if the
// pool is exhausted or the payload does not fit a frame.
func (p *FramePool) Take(payload []byte) *Frame {
	if len(payload) > MaxFrameLen || len(p.free) == 0 {
		p.missed++
		return nil
	}
	f := p.free[len(p.free)-1]
	p.free = p.free[:len(p.free)-1]
	f.len = copy(f.data[:], payload)
	return f
}

func (p *FramePool) put(f *Frame) {
	f.len = 0
	p.free = append(p.free, f)
}

// Free returns how many buffers are currently available.
func (p *FramePool) Free() int {
	return len(p.free)
}

// Missed returns how many Take calls failed since startup.
func (p *FramePool) Missed() uint32 {
	return p.missed
}
