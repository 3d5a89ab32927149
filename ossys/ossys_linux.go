//go:build linux

package ossys

import (
	"os"

	"golang.org/x/sys/unix"
)

// Datasync blocks until all previously-issued writes to f are durable
// (spec.md §6.5).
func Datasync(f *os.File) error {
	return unix.Fdatasync(int(f.Fd()))
}

// getentropyChunk is the largest single getrandom(2) call this shim issues
// per call (spec.md §6.5: "chunked at whatever size the platform accepts").
const getentropyChunk = 256

// GetEntropy fills buf with cryptographically strong bytes, chunked per
// getentropyChunk (spec.md §6.5).
func GetEntropy(buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > getentropyChunk {
			n = getentropyChunk
		}
		if _, err := unix.Getrandom(buf[:n], 0); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
