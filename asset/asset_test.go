package asset

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestReadThreeBytes(t *testing.T) {
	r := New([]byte{0x01, 0x02, 0x03})
	dst := make([]byte, 2)

	n, err := r.Read(dst)
	if err != nil || n != 2 {
		t.Fatalf("Read() = %d, %v, want 2, nil", n, err)
	}
	if !bytes.Equal(dst[:n], []byte{0x01, 0x02}) {
		t.Fatalf("Read() data = %x, want 0102", dst[:n])
	}

	n, err = r.Read(dst)
	if err != nil || n != 1 {
		t.Fatalf("Read() = %d, %v, want 1, nil", n, err)
	}
	if dst[0] != 0x03 {
		t.Fatalf("Read() data = %x, want 03", dst[:n])
	}

	n, err = r.Read(dst)
	if !errors.Is(err, ErrReadExhausted) || n != 0 {
		t.Fatalf("Read() = %d, %v, want 0, ErrReadExhausted", n, err)
	}
}

func TestReadReproducesBlob(t *testing.T) {
	blob := make([]byte, 1000)
	for i := range blob {
		blob[i] = byte(i * 7)
	}

	for _, size := range []int{1, 3, 64, 999, 1000, 4096} {
		r := New(blob)
		var out []byte
		buf := make([]byte, size)
		for {
			n, err := r.Read(buf)
			if errors.Is(err, ErrReadExhausted) {
				break
			}
			if err != nil {
				t.Fatalf("size %d: Read() error = %v", size, err)
			}
			out = append(out, buf[:n]...)
		}
		if !bytes.Equal(out, blob) {
			t.Fatalf("size %d: read %d bytes, mismatch with blob", size, len(out))
		}
		if r.Remaining() != 0 {
			t.Fatalf("size %d: Remaining() = %d, want 0", size, r.Remaining())
		}
	}
}

func TestReadEmptyBlob(t *testing.T) {
	r := New(nil)
	if _, err := r.Read(make([]byte, 8)); !errors.Is(err, ErrReadExhausted) {
		t.Fatalf("Read() error = %v, want ErrReadExhausted", err)
	}
}

func TestReadZeroLengthDestination(t *testing.T) {
	r := New([]byte{1, 2})
	n, err := r.Read(nil)
	if n != 0 || err != nil {
		t.Fatalf("Read(nil) = %d, %v, want 0, nil", n, err)
	}
	if r.Remaining() != 2 {
		t.Fatalf("Remaining() = %d, want 2", r.Remaining())
	}
}

func TestSeekNotSupported(t *testing.T) {
	r := New([]byte{1, 2, 3})
	_, _ = r.Read(make([]byte, 1))
	for _, whence := range []int{io.SeekStart, io.SeekCurrent, io.SeekEnd} {
		if _, err := r.Seek(0, whence); !errors.Is(err, ErrSeekNotSupported) {
			t.Fatalf("Seek(0, %d) error = %v, want ErrSeekNotSupported", whence, err)
		}
	}
	if errors.Is(ErrSeekNotSupported, ErrReadExhausted) {
		t.Fatal("seek and exhaustion errors are not distinct")
	}
	if r.Remaining() != 2 {
		t.Fatalf("Seek moved the cursor: Remaining() = %d, want 2", r.Remaining())
	}
}

func TestDemoTapeEmbedded(t *testing.T) {
	if len(Demo) == 0 {
		t.Fatal("Demo tape is empty")
	}
}
