package ossys

import (
	"os"
	"testing"
)

func TestGetEntropyFillsBuffer(t *testing.T) {
	buf := make([]byte, 600) // spans multiple chunks
	if err := GetEntropy(buf); err != nil {
		t.Fatalf("getentropy: %v", err)
	}
	allZero := true
	for _, b := range buf {
		if b != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		t.Fatalf("expected getentropy to fill the buffer with non-trivial bytes")
	}
}

func TestDatasyncOnRealFile(t *testing.T) {
	f, err := os.CreateTemp("", "ossys-datasync-*")
	if err != nil {
		t.Fatalf("create temp: %v", err)
	}
	defer os.Remove(f.Name())
	defer f.Close()

	if _, err := f.Write([]byte("payload")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := Datasync(f); err != nil {
		t.Fatalf("datasync: %v", err)
	}
}
