package byte_ring_go

import (
	"bytes"
	"errors"
	"io"
	"testing"
)

func TestRingIO(t *testing.T) {
	// Test: Short write
	t.Run("Short write", func(t *testing.T) {
		ring := NewRing(make([]byte, 4))

		n, err := ring.Write([]byte("abc"))
		if err != nil || n != 3 {
			t.Fatalf("expected to write 3 bytes, wrote %d, error: %v", n, err)
		}

		n, err = ring.Write([]byte("def"))
		if !errors.Is(err, io.ErrShortWrite) || n != 1 {
			t.Fatalf("expected short write of 1 byte, wrote %d, error: %v", n, err)
		}

		if err = ring.WriteByte('x'); !errors.Is(err, io.ErrShortWrite) {
			t.Fatalf("expected short write on full ring, error: %v", err)
		}
	})

	// Test: Read until EOF
	t.Run("Read until EOF", func(t *testing.T) {
		ring := NewRing(make([]byte, 8))
		if _, err := ring.Write([]byte("abcdef")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := io.ReadAll(ring)
		if err != nil || string(got) != "abcdef" {
			t.Fatalf("expected to read abcdef, read %q, error: %v", got, err)
		}
		if !ring.IsEmpty() || ring.ReadPos() != 0 || ring.WritePos() != 0 {
			t.Fatalf("expected drained ring to be reset")
		}

		n, err := ring.Read(make([]byte, 1))
		if err != io.EOF || n != 0 {
			t.Fatalf("expected EOF, read %d, error: %v", n, err)
		}

		n, err = ring.Read(nil)
		if err != nil || n != 0 {
			t.Fatalf("expected empty read to succeed, read %d, error: %v", n, err)
		}
	})

	// Test: Byte at a time
	t.Run("Byte at a time", func(t *testing.T) {
		ring := NewRing(make([]byte, 3))
		for _, c := range []byte("xyz") {
			if err := ring.WriteByte(c); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}

		var out []byte
		for {
			c, err := ring.ReadByte()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			out = append(out, c)
		}
		if string(out) != "xyz" {
			t.Fatalf("expected xyz, got %q", out)
		}
	})

	// Test: ReadAt is relative to the read cursor
	t.Run("ReadAt is relative to the read cursor", func(t *testing.T) {
		ring := NewRing(make([]byte, 6))
		ring.WriteBytes([]byte("abcdef"))
		ring.DiscardBytes(4)
		ring.WriteBytes([]byte("gh"))

		p := make([]byte, 3)
		n, err := ring.ReadAt(p, 1)
		if err != nil || n != 3 || string(p) != "fgh" {
			t.Fatalf("expected to read fgh, read %d, error: %v, data: %q", n, err, p)
		}

		n, err = ring.ReadAt(p, 2)
		if err != io.EOF || n != 2 || string(p[:n]) != "gh" {
			t.Fatalf("expected short read with EOF, read %d, error: %v, data: %q", n, err, p[:n])
		}

		n, err = ring.ReadAt(p, 4)
		if err != io.EOF || n != 0 {
			t.Fatalf("expected EOF past the unread bytes, read %d, error: %v", n, err)
		}

		_, err = ring.ReadAt(p, -1)
		if !errors.Is(err, ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange, error: %v", err)
		}

		if ring.Len() != 4 {
			t.Fatalf("expected ReadAt not to consume, len %d", ring.Len())
		}
	})

	// Test: Uninitialized rings
	t.Run("Uninitialized rings", func(t *testing.T) {
		var ring *Ring
		if _, err := ring.Write([]byte("a")); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}
		if _, err := ring.Read(make([]byte, 1)); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}
		if _, err := ring.ReadAt(make([]byte, 1), 0); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}
		if err := ring.WriteByte('a'); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}
		if _, err := ring.ReadByte(); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}

		var wo WriteOnlyRing
		if _, err := wo.Write([]byte("a")); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}

		var ro *ReadOnlyRing
		if _, err := ro.Read(make([]byte, 1)); !errors.Is(err, ErrInvalidRing) {
			t.Fatalf("expected ErrInvalidRing, error: %v", err)
		}
	})

	// Test: Variants never come up short
	t.Run("Variants never come up short", func(t *testing.T) {
		data := make([]byte, 4)
		wo := NewWriteOnlyRing(data)
		src := []byte("0123456789")

		n, err := io.Copy(wo, bytes.NewReader(src))
		if err != nil || n != int64(len(src)) {
			t.Fatalf("expected to copy %d bytes, copied %d, error: %v", len(src), n, err)
		}

		ro := NewReadOnlyRing(data)
		ro.DiscardBytes(wo.WritePos())
		out := make([]byte, 4)
		if _, err := io.ReadFull(ro, out); err != nil || string(out) != "6789" {
			t.Fatalf("expected the last 4 bytes, got %q, error: %v", out, err)
		}
	})
}
