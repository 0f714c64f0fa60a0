package serial

import (
	"io"
)

// Port is the console connection to a running node.
// The abstraction allows for different implementations:
// - Native serial (using github.com/tarm/serial)
// - A pipe or pty when the node runs under QEMU
// - In-memory ports for tests
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", or the pty QEMU prints)
	Device string

	// Baud rate; the node console runs at 115200
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration matching the node's console UART
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 100,
	}
}
