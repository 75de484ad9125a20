package byte_ring_go

// ReadOnlyRing is a ring whose writer lives elsewhere.
//
// It only tracks the read cursor and assumes the writer keeps the storage
// full, so every request is satisfied in full, wrapping as many times as
// needed. Whether the bytes handed out were ever written is the caller's
// concern.
type ReadOnlyRing struct {
	data []byte
	rpos int
}

// NewReadOnlyRing binds a read-only ring to data. It returns nil if data is
// empty.
func NewReadOnlyRing(data []byte) *ReadOnlyRing {
	ring := &ReadOnlyRing{}
	if !ring.Init(data) {
		return nil
	}

	return ring
}

// Init binds the ring to data and rewinds the read cursor. It reports false,
// leaving the ring untouched, if the ring is nil or data is empty.
func (ring *ReadOnlyRing) Init(data []byte) bool {
	if ring == nil || len(data) == 0 {
		return false
	}

	ring.data = data
	ring.rpos = 0

	return true
}

func (ring *ReadOnlyRing) Reset() bool {
	if ring == nil {
		return false
	}

	ring.rpos = 0

	return true
}

func (ring *ReadOnlyRing) Data() []byte {
	if ring == nil {
		return nil
	}

	return ring.data
}

func (ring *ReadOnlyRing) Cap() int {
	if ring == nil {
		return 0
	}

	return len(ring.data)
}

func (ring *ReadOnlyRing) ReadPos() int {
	if ring == nil {
		return 0
	}

	return ring.rpos
}

// DiscardBytes advances the read cursor by n modulo Cap() and returns n.
func (ring *ReadOnlyRing) DiscardBytes(n int) int {
	if len(ring.Data()) == 0 || n <= 0 {
		return 0
	}

	ring.rpos = ring.advance(ring.rpos, n)

	return n
}

// ReadBytes fills p from the read cursor and advances it. It returns len(p).
func (ring *ReadOnlyRing) ReadBytes(p []byte) int {
	if len(ring.Data()) == 0 || len(p) == 0 {
		return 0
	}

	ring.rpos = ring.copyOut(p, ring.rpos)

	return len(p)
}

// PeekBytes fills p from the read cursor without moving it. It returns len(p).
func (ring *ReadOnlyRing) PeekBytes(p []byte) int {
	if len(ring.Data()) == 0 || len(p) == 0 {
		return 0
	}

	ring.copyOut(p, ring.rpos)

	return len(p)
}

// PeekBytesAt fills p starting offset bytes past the read cursor, wrapping
// modulo Cap(). It returns len(p).
func (ring *ReadOnlyRing) PeekBytesAt(offset int, p []byte) int {
	if len(ring.Data()) == 0 || offset < 0 || len(p) == 0 {
		return 0
	}

	ring.copyOut(p, ring.advance(ring.rpos, offset))

	return len(p)
}

func (ring *ReadOnlyRing) advance(position int, n int) int {
	return (position + n%len(ring.data)) % len(ring.data)
}

// copyOut fills p segment by segment starting at position and returns the
// position following the last byte copied.
func (ring *ReadOnlyRing) copyOut(p []byte, position int) int {
	bufferCap := len(ring.data)

	for len(p) > 0 {
		n := copy(p, ring.data[position:])
		p = p[n:]

		position += n
		if position == bufferCap {
			position = 0
		}
	}

	return position
}
