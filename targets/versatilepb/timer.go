//go:build versatilepb

package main

import (
	"runtime/volatile"
	"unsafe"

	"ethernode/core"
)

// SP804 dual timer on versatilepb. Timer1 of the first pair, fed at 1MHz.
const (
	timerBase    = 0x101E2000
	timerLoad    = timerBase + 0x00 // Reload value
	timerValue   = timerBase + 0x04 // Current (down-counting) value
	timerControl = timerBase + 0x08 // Control register
	timerIntClr  = timerBase + 0x0C // Interrupt clear (write-only)
)

// Control register bits
const (
	timerCtrlEnable   = 1 << 7
	timerCtrlPeriodic = 1 << 6
	timerCtrlIntEn    = 1 << 5
	timerCtrl32Bit    = 1 << 1
)

var (
	timerLoadReg  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerLoad)))
	timerValueReg = (*volatile.Register32)(unsafe.Pointer(uintptr(timerValue)))
	timerCtrlReg  = (*volatile.Register32)(unsafe.Pointer(uintptr(timerControl)))
	timerClrReg   = (*volatile.Register32)(unsafe.Pointer(uintptr(timerIntClr)))
)

// SP804Counter exposes the hardware timer as a core.Counter.
type SP804Counter struct{}

var _ core.Counter = SP804Counter{}

// Start programs the timer free-running: reload at max, periodic, 32-bit,
// no interrupt. The counter then decrements once per microsecond and
// reloads on reaching zero without software involvement.
func (SP804Counter) Start() {
	timerCtrlReg.Set(0)
	timerClrReg.Set(1)
	timerLoadReg.Set(core.CounterMax)
	timerCtrlReg.Set(timerCtrlEnable | timerCtrlPeriodic | timerCtrl32Bit)
}

// Read returns the raw down-counting value.
func (SP804Counter) Read() uint32 {
	return timerValueReg.Get()
}
