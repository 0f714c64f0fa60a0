// Command ethernode-host attaches to a running node's console UART and
// streams its informational output, timestamping each line on the host
// side and flagging the link-state transitions the node reports.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"ethernode/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyUSB0", "Serial device path (or QEMU pty)")
	baud    = flag.Int("baud", 115200, "Console baud rate")
	verbose = flag.Bool("verbose", false, "Echo every line, not just link-state transitions")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	// Block on reads; the scanner below owns pacing.
	cfg.ReadTimeout = 0

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Attached to node console on %s at %d baud\n", *device, *baud)

	start := time.Now()
	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}

		switch {
		case strings.Contains(line, "using static IP"):
			fmt.Printf("[%8.3f] LINK UP (fallback) %s\n", time.Since(start).Seconds(), line)
		case strings.Contains(line, "lease acquired"):
			fmt.Printf("[%8.3f] LINK UP (dhcp) %s\n", time.Since(start).Seconds(), line)
		case *verbose:
			fmt.Printf("[%8.3f] %s\n", time.Since(start).Seconds(), line)
		}
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: console read failed: %v\n", err)
		os.Exit(1)
	}
}
