package byte_ring_go

import "io"

// Write implements io.Writer. Bytes that do not fit are dropped and
// io.ErrShortWrite is returned with the short count.
func (ring *Ring) Write(p []byte) (int, error) {
	if ring == nil || len(ring.data) == 0 {
		return 0, ErrInvalidRing
	}

	n := ring.WriteBytes(p)
	if n < len(p) {
		return n, io.ErrShortWrite
	}

	return n, nil
}

// Read implements io.Reader. It never blocks: an empty ring returns io.EOF.
func (ring *Ring) Read(p []byte) (int, error) {
	if ring == nil || len(ring.data) == 0 {
		return 0, ErrInvalidRing
	}

	if len(p) == 0 {
		return 0, nil
	}

	if ring.len == 0 {
		return 0, io.EOF
	}

	return ring.ReadBytes(p), nil
}

// ReadAt implements io.ReaderAt over the unread bytes, with off measured from
// the read cursor. Nothing is consumed.
func (ring *Ring) ReadAt(p []byte, off int64) (int, error) {
	if ring == nil || len(ring.data) == 0 {
		return 0, ErrInvalidRing
	}

	if off < 0 {
		return 0, ErrOutOfRange
	}

	if off >= int64(ring.len) {
		if len(p) == 0 {
			return 0, nil
		}

		return 0, io.EOF
	}

	n := ring.PeekBytesAt(int(off), p)
	if n < len(p) {
		return n, io.EOF
	}

	return n, nil
}

func (ring *Ring) WriteByte(c byte) error {
	if ring == nil || len(ring.data) == 0 {
		return ErrInvalidRing
	}

	if ring.WriteBytes([]byte{c}) == 0 {
		return io.ErrShortWrite
	}

	return nil
}

func (ring *Ring) ReadByte() (byte, error) {
	if ring == nil || len(ring.data) == 0 {
		return 0, ErrInvalidRing
	}

	if ring.len == 0 {
		return 0, io.EOF
	}

	c := ring.data[ring.rpos]
	ring.consume(1)

	return c, nil
}

// Write implements io.Writer. It always accepts all of p.
func (ring *WriteOnlyRing) Write(p []byte) (int, error) {
	if ring == nil || len(ring.data) == 0 {
		return 0, ErrInvalidRing
	}

	return ring.WriteBytes(p), nil
}

// Read implements io.Reader. It always fills p.
func (ring *ReadOnlyRing) Read(p []byte) (int, error) {
	if ring == nil || len(ring.data) == 0 {
		return 0, ErrInvalidRing
	}

	return ring.ReadBytes(p), nil
}
