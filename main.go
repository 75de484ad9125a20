package byte_ring_go

// Ring is a fixed-capacity byte ring over caller-owned storage.
//
// It tracks a write cursor, a read cursor and the number of unread bytes.
// The zero value is not usable; call Init or NewRing first.
type Ring struct {
	data []byte

	wpos int
	rpos int
	len  int
}

// NewRing binds a ring to data. It returns nil if data is empty; every method
// of a nil *Ring is a no-op.
func NewRing(data []byte) *Ring {
	ring := &Ring{}
	if !ring.Init(data) {
		return nil
	}

	return ring
}

// Init binds the ring to data and empties it. The capacity is len(data).
// It reports false, leaving the ring untouched, if the ring is nil or data is
// empty.
func (ring *Ring) Init(data []byte) bool {
	if ring == nil || len(data) == 0 {
		return false
	}

	ring.data = data
	ring.wpos = 0
	ring.rpos = 0
	ring.len = 0

	return true
}

// Reset empties the ring without touching the stored bytes.
func (ring *Ring) Reset() bool {
	if ring == nil {
		return false
	}

	ring.wpos = 0
	ring.rpos = 0
	ring.len = 0

	return true
}

func (ring *Ring) Data() []byte {
	if ring == nil {
		return nil
	}

	return ring.data
}

func (ring *Ring) Cap() int {
	if ring == nil {
		return 0
	}

	return len(ring.data)
}

// Len returns the number of unread bytes.
func (ring *Ring) Len() int {
	if ring == nil {
		return 0
	}

	return ring.len
}

// Free returns the number of bytes that can be written without overwriting.
func (ring *Ring) Free() int {
	if ring == nil {
		return 0
	}

	return len(ring.data) - ring.len
}

func (ring *Ring) IsEmpty() bool {
	return ring != nil && ring.len == 0
}

func (ring *Ring) IsFull() bool {
	return ring != nil && ring.len == len(ring.data)
}

func (ring *Ring) WritePos() int {
	if ring == nil {
		return 0
	}

	return ring.wpos
}

func (ring *Ring) ReadPos() int {
	if ring == nil {
		return 0
	}

	return ring.rpos
}

// WriteSpan returns how many bytes can be written at the write cursor before
// either the ring fills or the end of the storage is reached.
func (ring *Ring) WriteSpan() int {
	if ring == nil {
		return 0
	}

	return min(len(ring.data)-ring.len, len(ring.data)-ring.wpos)
}

// ReadSpan returns how many unread bytes lie contiguously at the read cursor.
func (ring *Ring) ReadSpan() int {
	if ring == nil {
		return 0
	}

	return min(ring.len, len(ring.data)-ring.rpos)
}

// WriteBytes copies as much of p as fits into the ring and returns the count.
// Unread bytes are never overwritten.
func (ring *Ring) WriteBytes(p []byte) int {
	if ring == nil || len(p) == 0 {
		return 0
	}

	bufferCap := len(ring.data)
	requestedSize := min(len(p), bufferCap-ring.len)
	if requestedSize == 0 {
		return 0
	}

	var bytesWritten int
	if ring.wpos+requestedSize < bufferCap {
		bytesWritten = copy(ring.data[ring.wpos:], p[:requestedSize])
		ring.wpos += bytesWritten
	} else {
		firstPart := bufferCap - ring.wpos
		a := copy(ring.data[ring.wpos:], p[:firstPart])
		b := copy(ring.data, p[firstPart:requestedSize])
		bytesWritten = a + b
		ring.wpos = b
	}

	ring.len += bytesWritten

	return bytesWritten
}

// ReadBytes moves up to len(p) unread bytes into p and returns the count.
func (ring *Ring) ReadBytes(p []byte) int {
	if ring == nil || len(p) == 0 {
		return 0
	}

	bytesRead := ring.copyOut(p, ring.rpos, ring.len)
	ring.consume(bytesRead)

	return bytesRead
}

// DiscardBytes drops up to n unread bytes and returns the count dropped.
func (ring *Ring) DiscardBytes(n int) int {
	if ring == nil || n <= 0 {
		return 0
	}

	n = min(n, ring.len)
	ring.consume(n)

	return n
}

// PeekBytes copies up to len(p) unread bytes into p without consuming them.
func (ring *Ring) PeekBytes(p []byte) int {
	if ring == nil || len(p) == 0 {
		return 0
	}

	return ring.copyOut(p, ring.rpos, ring.len)
}

// PeekBytesAt is PeekBytes starting offset bytes past the read cursor. It
// returns 0 if offset is not below Len().
func (ring *Ring) PeekBytesAt(offset int, p []byte) int {
	if ring == nil || offset < 0 || offset >= ring.len || len(p) == 0 {
		return 0
	}

	position := ring.rpos + offset
	if position >= len(ring.data) {
		position -= len(ring.data)
	}

	return ring.copyOut(p, position, ring.len-offset)
}

// copyOut copies min(len(p), available) bytes starting at position, in at
// most two steps.
func (ring *Ring) copyOut(p []byte, position int, available int) int {
	bufferCap := len(ring.data)
	readSize := min(len(p), available)

	if position+readSize <= bufferCap {
		return copy(p, ring.data[position:position+readSize])
	}

	firstPart := bufferCap - position
	a := copy(p, ring.data[position:])
	b := copy(p[firstPart:], ring.data[:readSize-firstPart])

	return a + b
}

// consume advances the read cursor by n <= len bytes.
func (ring *Ring) consume(n int) {
	ring.len -= n

	if ring.len == 0 {
		ring.wpos = 0
		ring.rpos = 0
		return
	}

	ring.rpos += n
	if ring.rpos >= len(ring.data) {
		ring.rpos -= len(ring.data)
	}
}
