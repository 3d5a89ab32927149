//go:build darwin

// Package ossys implements the OS syscall shims of spec.md §6.5: a
// durable-write barrier (fdatasync, or its platform substitute) and a
// strong-entropy source (getentropy), chunked at whatever size the
// platform accepts.
package ossys

import (
	"os"

	"golang.org/x/sys/unix"
)

// Datasync substitutes fcntl(F_FULLFSYNC) for fdatasync, since Darwin does
// not implement the latter (spec.md §6.5: "fcntl(F_FULLFSYNC) (Apple)
// substitute").
func Datasync(f *os.File) error {
	_, err := unix.FcntlInt(f.Fd(), unix.F_FULLFSYNC, 0)
	return err
}

// getentropyChunk is the largest single getentropy(2) call Darwin accepts
// (spec.md §6.5: "chunked at whatever size the platform accepts").
const getentropyChunk = 256

// GetEntropy fills buf with cryptographically strong bytes, chunked per
// getentropyChunk (spec.md §6.5).
func GetEntropy(buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > getentropyChunk {
			n = getentropyChunk
		}
		if err := unix.Getentropy(buf[:n]); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
