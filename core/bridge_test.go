package core

import (
	"bytes"
	"errors"
	"testing"
)

// fakeNIC queues inbound frames and records transmits.
type fakeNIC struct {
	inbound  [][]byte
	sent     [][]byte
	resets   int
	promisc  bool
	promSets int
}

func (d *fakeNIC) Reset() { d.resets++ }

func (d *fakeNIC) SetPromiscuous(on bool) {
	d.promisc = on
	d.promSets++
}

func (d *fakeNIC) PollInbound(deliver func(frame []byte)) {
	for _, f := range d.inbound {
		deliver(f)
	}
	d.inbound = nil
}

func (d *fakeNIC) Transmit(frame []byte) {
	d.sent = append(d.sent, append([]byte(nil), frame...))
}

// fakeStack records ingested frames and can be told to reject them.
type fakeStack struct {
	ingested  []*Frame
	reject    bool
	up        bool
	assigned  bool
	fineTicks int
	coarse    int
	applied   []IPv4
}

var errRejected = errors.New("stack: frame rejected")

func (s *fakeStack) Ingest(f *Frame) error {
	if s.reject {
		return errRejected
	}
	s.ingested = append(s.ingested, f)
	return nil
}

func (s *fakeStack) FineTick()                { s.fineTicks++ }
func (s *fakeStack) CoarseTick()              { s.coarse++ }
func (s *fakeStack) IsUp() bool               { return s.up }
func (s *fakeStack) HasAssignedAddress() bool { return s.assigned }

func (s *fakeStack) ApplyFixedAddress(addr, netmask, gateway IPv4) {
	s.applied = append(s.applied, addr, netmask, gateway)
	s.assigned = true
}

func TestBridgePumpForwardsFrames(t *testing.T) {
	drv := &fakeNIC{inbound: [][]byte{{1, 2, 3}, {4, 5}}}
	stack := &fakeStack{}
	b := NewFrameBridge(drv, stack, NewFramePool(4))

	b.PumpInbound()

	if len(stack.ingested) != 2 {
		t.Fatalf("Expected 2 ingested frames, got %d", len(stack.ingested))
	}
	if !bytes.Equal(stack.ingested[0].Bytes(), []byte{1, 2, 3}) {
		t.Errorf("Expected first frame payload [1 2 3], got %v", stack.ingested[0].Bytes())
	}
	if stack.ingested[1].Len() != 2 {
		t.Errorf("Expected second frame length 2, got %d", stack.ingested[1].Len())
	}
}

func TestBridgeRejectedFrameReturnsToPool(t *testing.T) {
	drv := &fakeNIC{inbound: [][]byte{{0xAA, 0xBB}}}
	stack := &fakeStack{reject: true}
	pool := NewFramePool(1)
	b := NewFrameBridge(drv, stack, pool)

	b.PumpInbound()

	if len(stack.ingested) != 0 {
		t.Errorf("Expected no retained frames after rejection, got %d", len(stack.ingested))
	}
	if pool.Free() != 1 {
		t.Errorf("Expected rejected buffer back in the pool, %d free", pool.Free())
	}
	if len(drv.sent) != 0 {
		t.Errorf("Expected rejected frame never to reach the driver, %d sent", len(drv.sent))
	}
}

func TestBridgePoolExhaustionDropsSilently(t *testing.T) {
	drv := &fakeNIC{inbound: [][]byte{{1}, {2}, {3}}}
	stack := &fakeStack{}
	b := NewFrameBridge(drv, stack, NewFramePool(2))

	b.PumpInbound()

	if len(stack.ingested) != 2 {
		t.Errorf("Expected 2 frames through a pool of 2, got %d", len(stack.ingested))
	}
	if b.Dropped() != 1 {
		t.Errorf("Expected 1 dropped frame, got %d", b.Dropped())
	}
}

func TestBridgeSendOutbound(t *testing.T) {
	drv := &fakeNIC{}
	b := NewFrameBridge(drv, &fakeStack{}, NewFramePool(1))

	payload := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	if err := b.SendOutbound(payload); err != nil {
		t.Fatalf("Expected outbound send to succeed, got %v", err)
	}
	if len(drv.sent) != 1 {
		t.Fatalf("Expected 1 transmitted frame, got %d", len(drv.sent))
	}
	if !bytes.Equal(drv.sent[0], payload) {
		t.Errorf("Expected transmitted bytes %v, got %v", payload, drv.sent[0])
	}
}

func TestBridgeSendOutboundTooLarge(t *testing.T) {
	drv := &fakeNIC{}
	b := NewFrameBridge(drv, &fakeStack{}, NewFramePool(1))

	oversize := make([]byte, MaxFrameLen+1)
	if err := b.SendOutbound(oversize); !errors.Is(err, ErrFrameTooLarge) {
		t.Errorf("Expected ErrFrameTooLarge for %d bytes, got %v", len(oversize), err)
	}
	if len(drv.sent) != 0 {
		t.Errorf("Expected no transmit for oversize frame, got %d", len(drv.sent))
	}

	exact := make([]byte, MaxFrameLen)
	if err := b.SendOutbound(exact); err != nil {
		t.Errorf("Expected a MaxFrameLen frame to send, got %v", err)
	}
}
