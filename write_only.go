package byte_ring_go

// WriteOnlyRing is a ring whose reader lives elsewhere.
//
// It only tracks the write cursor. Writes are never refused: once the cursor
// wraps, the oldest bytes are overwritten, so the storage always holds the most
// recent Cap() bytes written, ending just before WritePos().
type WriteOnlyRing struct {
	data []byte
	wpos int
}

// NewWriteOnlyRing binds a write-only ring to data. It returns nil if data is
// empty.
func NewWriteOnlyRing(data []byte) *WriteOnlyRing {
	ring := &WriteOnlyRing{}
	if !ring.Init(data) {
		return nil
	}

	return ring
}

// Init binds the ring to data and rewinds the write cursor. It reports false,
// leaving the ring untouched, if the ring is nil or data is empty.
func (ring *WriteOnlyRing) Init(data []byte) bool {
	if ring == nil || len(data) == 0 {
		return false
	}

	ring.data = data
	ring.wpos = 0

	return true
}

func (ring *WriteOnlyRing) Reset() bool {
	if ring == nil {
		return false
	}

	ring.wpos = 0

	return true
}

func (ring *WriteOnlyRing) Data() []byte {
	if ring == nil {
		return nil
	}

	return ring.data
}

func (ring *WriteOnlyRing) Cap() int {
	if ring == nil {
		return 0
	}

	return len(ring.data)
}

func (ring *WriteOnlyRing) WritePos() int {
	if ring == nil {
		return 0
	}

	return ring.wpos
}

// WriteBytes writes all of p and returns len(p). When p is longer than the
// ring only its last Cap() bytes are copied; the cursor still advances as if
// every byte had been written.
func (ring *WriteOnlyRing) WriteBytes(p []byte) int {
	bufferCap := len(ring.Data())
	if bufferCap == 0 || len(p) == 0 {
		return 0
	}

	requestedSize := len(p)
	position := ring.wpos

	if skip := requestedSize - bufferCap; skip > 0 {
		position = (position + skip) % bufferCap
		p = p[skip:]
	}

	if position+len(p) < bufferCap {
		ring.wpos = position + copy(ring.data[position:], p)
		return requestedSize
	}

	firstPart := bufferCap - position
	copy(ring.data[position:], p[:firstPart])
	ring.wpos = copy(ring.data, p[firstPart:])

	return requestedSize
}
