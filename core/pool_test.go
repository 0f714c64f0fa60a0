package core

import (
	"bytes"
	"testing"
)

func TestPoolTakeAndRelease(t *testing.T) {
	p := NewFramePool(2)

	f := p.Take([]byte{9, 8, 7})
	if f == nil {
		t.Fatalf("Expected a buffer from a fresh pool")
	}
	if !bytes.Equal(f.Bytes(), []byte{9, 8, 7}) {
		t.Errorf("Expected payload copied into the buffer, got %v", f.Bytes())
	}
	if p.Free() != 1 {
		t.Errorf("Expected 1 free buffer after one take, got %d", p.Free())
	}

	f.Release()
	if p.Free() != 2 {
		t.Errorf("Expected both buffers free after release, got %d", p.Free())
	}
}

func TestPoolExhaustion(t *testing.T) {
	p := NewFramePool(1)

	first := p.Take([]byte{1})
	if first == nil {
		t.Fatalf("Expected the single buffer")
	}
	if p.Take([]byte{2}) != nil {
		t.Errorf("Expected nil from an exhausted pool")
	}
	if p.Missed() != 1 {
		t.Errorf("Expected 1 missed take, got %d", p.Missed())
	}

	first.Release()
	if p.Take([]byte{3}) == nil {
		t.Errorf("Expected the released buffer to be reusable")
	}
}

func TestPoolRejectsOversizePayload(t *testing.T) {
	p := NewFramePool(1)

	if p.Take(make([]byte, MaxFrameLen+1)) != nil {
		t.Errorf("Expected nil for a payload larger than a frame")
	}
	if p.Free() != 1 {
		t.Errorf("Expected the buffer still free after an oversize take, got %d", p.Free())
	}

	f := p.Take(make([]byte, MaxFrameLen))
	if f == nil || f.Len() != MaxFrameLen {
		t.Errorf("Expected a full-size payload to fit exactly")
	}
}
