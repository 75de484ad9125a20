package byte_ring_go

import (
	"errors"
	"io"
)

// ByteWriter is implemented by rings that accept bytes.
//
// WriteBytes returns the number of bytes copied from p. It never blocks and
// never fails; an empty p or a nil receiver copies nothing.
type ByteWriter interface {
	WriteBytes(p []byte) int
}

// ByteReader is implemented by rings that hand bytes out.
//
// ReadBytes and DiscardBytes consume, PeekBytes and PeekBytesAt do not. Each
// returns the number of bytes transferred (or skipped). Offsets in PeekBytesAt
// are measured from the current read cursor.
type ByteReader interface {
	ReadBytes(p []byte) int
	PeekBytes(p []byte) int
	PeekBytesAt(offset int, p []byte) int
	DiscardBytes(n int) int
}

// RingInterface is the full surface of Ring.
//
// Notes on semantics:
//   - The ring borrows its storage. It never allocates, grows or frees it and
//     must not outlive it.
//   - Writes never overwrite unread bytes; anything beyond Free() is dropped
//     and the short count is returned.
//   - Reads and discards that drain the ring reset both cursors to 0, so an
//     empty ring has exactly one representation.
//   - Spans are the contiguous runs available at a cursor before the physical
//     end of the storage.
//
// None of the methods are safe for concurrent use.
type RingInterface interface {
	ByteWriter
	ByteReader

	Data() []byte
	Cap() int
	Len() int
	Free() int
	IsEmpty() bool
	IsFull() bool
	WritePos() int
	ReadPos() int
	WriteSpan() int
	ReadSpan() int
	Reset() bool
}

var _ RingInterface = &Ring{}
var _ io.ReadWriter = &Ring{}
var _ io.ReaderAt = &Ring{}
var _ io.ByteReader = &Ring{}
var _ io.ByteWriter = &Ring{}

var _ ByteWriter = &WriteOnlyRing{}
var _ io.Writer = &WriteOnlyRing{}

var _ ByteReader = &ReadOnlyRing{}
var _ io.Reader = &ReadOnlyRing{}

// ErrOutOfRange indicates a negative offset was passed to ReadAt.
var ErrOutOfRange = errors.New("ringbuffer: offset out of range")

// ErrInvalidRing is returned by the io adapters of a nil or uninitialized
// ring.
var ErrInvalidRing = errors.New("ringbuffer: ring not initialized")
