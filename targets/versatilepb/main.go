//go:build versatilepb

package main

import (
	"ethernode/core"
	"ethernode/stack"
)

// The board-side MAC, matching the address QEMU advertises for -net nic.
var nodeMAC = [6]byte{0x00, 0x23, 0xC1, 0xDE, 0xD0, 0x0D}

func main() {
	cfg := core.DefaultConfig()

	drv := NewLAN91C111(nodeMAC)
	node := core.NewNode(cfg, SP804Counter{}, drv, stack.NewNull())
	node.Logf = consoleLogf

	consoleWrite("ethernode: starting superloop\n")
	node.Run(cfg)
}
