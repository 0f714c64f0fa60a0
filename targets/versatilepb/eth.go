//go:build versatilepb

package main

import (
	"runtime/volatile"
	"unsafe"

	"ethernode/core"
)

// LAN91C111 ethernet controller, mapped by versatilepb at 0x10010000.
// The register file is 16 bits wide and banked: offset 0xE selects one of
// four banks, the other offsets mean different things per bank.
const ethBase = 0x10010000

// Register offsets (within the selected bank)
const (
	// Any bank
	ethBankSelect = 0xE

	// Bank 0
	ethTCR = 0x0 // Transmit control
	ethRCR = 0x4 // Receive control

	// Bank 1
	ethConfig  = 0x0
	ethControl = 0xC
	ethIABase  = 0x4 // Individual (MAC) address, 3 words

	// Bank 2
	ethMMUCmd = 0x0
	ethPNR    = 0x2 // Packet number (low byte) / allocation result (high byte)
	ethFIFO   = 0x4 // TX done fifo (low byte) / RX fifo (high byte)
	ethPtr    = 0x6 // Buffer pointer
	ethData   = 0x8 // Buffer data window
	ethInt    = 0xC // Interrupt status (low byte) / mask (high byte)
)

// Bit assignments
const (
	tcrTxEnable = 0x0001

	rcrSoftReset   = 0x8000
	rcrRxEnable    = 0x0100
	rcrPromiscuous = 0x0002

	ctlAutoRelease = 0x0800

	mmuAlloc     = 1 << 5
	mmuReset     = 2 << 5
	mmuRelease   = 4 << 5 // Remove and release top of RX fifo
	mmuEnqueue   = 6 << 5
	mmuRstTxFifo = 7 << 5

	pnrAllocFailed = 0x80

	fifoRxEmpty = 0x8000

	ptrRcv     = 0x8000
	ptrAutoInc = 0x4000
	ptrRead    = 0x2000

	intRcv   = 0x01
	intAlloc = 0x08

	rxStatusOddFrame = 0x1000
	ctrlByteOdd      = 0x20
)

// Packet buffer overhead: status word and count word before the data,
// control word after it.
const ethPktOverhead = 6

func ethReg(offset uintptr) *volatile.Register16 {
	return (*volatile.Register16)(unsafe.Pointer(uintptr(ethBase) + offset))
}

// LAN91C111 is a polled, interrupt-free driver for the controller,
// implementing core.NICDriver. One instance owns the register file.
type LAN91C111 struct {
	mac [6]byte
	rx  [core.MaxFrameLen]byte
}

// NewLAN91C111 returns a driver that will program the given MAC on Reset.
func NewLAN91C111(mac [6]byte) *LAN91C111 {
	return &LAN91C111{mac: mac}
}

func (d *LAN91C111) selectBank(bank uint16) {
	ethReg(ethBankSelect).Set(bank)
}

// Reset soft-resets the controller, programs the MAC address and enables
// the transmitter and receiver.
func (d *LAN91C111) Reset() {
	d.selectBank(0)
	ethReg(ethRCR).Set(rcrSoftReset)
	ethReg(ethRCR).Set(0)
	ethReg(ethTCR).Set(0)

	d.selectBank(2)
	ethReg(ethMMUCmd).Set(mmuReset)
	ethReg(ethMMUCmd).Set(mmuRstTxFifo)

	d.selectBank(1)
	// Let the MMU release TX memory on completion so the polled loop
	// never has to service TX interrupts.
	ethReg(ethControl).Set(ctlAutoRelease)
	for i := 0; i < 3; i++ {
		w := uint16(d.mac[2*i]) | uint16(d.mac[2*i+1])<<8
		ethReg(ethIABase + uintptr(2*i)).Set(w)
	}

	d.selectBank(0)
	ethReg(ethTCR).Set(tcrTxEnable)
	ethReg(ethRCR).Set(rcrRxEnable)
}

// SetPromiscuous toggles promiscuous reception.
func (d *LAN91C111) SetPromiscuous(on bool) {
	d.selectBank(0)
	v := uint16(rcrRxEnable)
	if on {
		v |= rcrPromiscuous
	}
	ethReg(ethRCR).Set(v)
}

// PollInbound drains the RX fifo, delivering each frame in turn. The
// slice handed to deliver aliases the driver's staging buffer and is only
// valid for the duration of the callback.
func (d *LAN91C111) PollInbound(deliver func(frame []byte)) {
	d.selectBank(2)
	for ethReg(ethInt).Get()&intRcv != 0 {
		if ethReg(ethFIFO).Get()&fifoRxEmpty != 0 {
			break
		}

		// Point the data window at the top packet in the RX fifo.
		ethReg(ethPtr).Set(ptrRcv | ptrAutoInc | ptrRead)
		status := ethReg(ethData).Get()
		count := ethReg(ethData).Get() & 0x07FF

		n := 0
		if count >= ethPktOverhead {
			n = int(count) - ethPktOverhead
			if status&rxStatusOddFrame != 0 {
				n++
			}
			if n > len(d.rx) {
				n = len(d.rx)
			}
			for i := 0; i < n; i += 2 {
				w := ethReg(ethData).Get()
				d.rx[i] = byte(w)
				if i+1 < n {
					d.rx[i+1] = byte(w >> 8)
				}
			}
		}

		// Pop the packet and hand its memory back before delivery, so a
		// slow consumer cannot starve the receive memory.
		ethReg(ethMMUCmd).Set(mmuRelease)

		if n > 0 {
			deliver(d.rx[:n])
		}
	}
}

// Transmit allocates controller memory, copies the frame in and enqueues
// it. Synchronous: the frame is owned by the controller when this
// returns. An allocation failure drops the frame; the polled loop has
// nothing to retry with.
func (d *LAN91C111) Transmit(frame []byte) {
	if len(frame) > core.MaxFrameLen {
		return
	}

	d.selectBank(2)
	ethReg(ethMMUCmd).Set(mmuAlloc)
	for ethReg(ethInt).Get()&intAlloc == 0 {
	}
	pn := ethReg(ethPNR).Get() >> 8
	if pn&pnrAllocFailed != 0 {
		return
	}

	ethReg(ethPNR).Set(pn & 0x3F)
	ethReg(ethPtr).Set(ptrAutoInc)

	// Status word, then total byte count including overhead.
	ethReg(ethData).Set(0)
	ethReg(ethData).Set(uint16(len(frame)+ethPktOverhead) & 0x07FE)

	for i := 0; i+1 < len(frame); i += 2 {
		ethReg(ethData).Set(uint16(frame[i]) | uint16(frame[i+1])<<8)
	}

	// Control word: odd-length frames carry the last byte next to the
	// control byte.
	if len(frame)%2 != 0 {
		ethReg(ethData).Set(uint16(frame[len(frame)-1]) | uint16(ctrlByteOdd)<<8)
	} else {
		ethReg(ethData).Set(0)
	}

	ethReg(ethMMUCmd).Set(mmuEnqueue)
}

var _ core.NICDriver = (*LAN91C111)(nil)
