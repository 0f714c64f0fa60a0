//go:build versatilepb

package main

import (
	"fmt"
	"runtime/volatile"
	"unsafe"
)

// PL011 UART0 on versatilepb, used only for informational output.
const (
	uartBase = 0x101F1000
	uartDR   = uartBase + 0x00 // Data register
	uartFR   = uartBase + 0x18 // Flag register
)

// Flag register bits
const uartFlagTxFull = 1 << 5

var (
	uartDataReg = (*volatile.Register32)(unsafe.Pointer(uintptr(uartDR)))
	uartFlagReg = (*volatile.Register32)(unsafe.Pointer(uintptr(uartFR)))
)

func consolePutc(c byte) {
	for uartFlagReg.Get()&uartFlagTxFull != 0 {
	}
	uartDataReg.Set(uint32(c))
}

func consoleWrite(s string) {
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			consolePutc('\r')
		}
		consolePutc(s[i])
	}
}

// consoleLogf is the Logf hook handed to the superloop.
func consoleLogf(format string, args ...any) {
	consoleWrite(fmt.Sprintf(format, args...))
	consoleWrite("\n")
}
