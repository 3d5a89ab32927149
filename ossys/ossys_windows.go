//go:build windows

// Package ossys implements the OS syscall shims of spec.md §6.5: a
// durable-write barrier (fdatasync, or its platform substitute) and a
// strong-entropy source (getentropy), chunked at whatever size the
// platform accepts.
package ossys

import (
	"crypto/rand"
	"os"

	"golang.org/x/sys/windows"
)

// Datasync substitutes FlushFileBuffers for fdatasync, since Windows has no
// direct equivalent (spec.md §6.5: "FlushFileBuffers (Windows) substitute").
func Datasync(f *os.File) error {
	return windows.FlushFileBuffers(windows.Handle(f.Fd()))
}

// getentropyChunk mirrors the Unix shims' chunk size; Windows has no native
// getentropy so this reads from the OS CSPRNG via crypto/rand in the same
// chunked discipline (spec.md §6.5).
const getentropyChunk = 256

// GetEntropy fills buf with cryptographically strong bytes.
func GetEntropy(buf []byte) error {
	for len(buf) > 0 {
		n := len(buf)
		if n > getentropyChunk {
			n = getentropyChunk
		}
		if _, err := rand.Read(buf[:n]); err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}
