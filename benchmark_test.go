package byte_ring_go

import (
	"testing"
)

// producer and consumer alternate on one goroutine; the ring is not safe for
// concurrent use.
func produce(ring ByteWriter, data []byte, totalBytes *int) {
	*totalBytes += ring.WriteBytes(data)
}

func consume(ring ByteReader, p []byte, totalBytes *int) {
	*totalBytes += ring.ReadBytes(p)
}

func benchmarkRing(b *testing.B, bufferSize int, dataSize int) {
	ring := NewRing(make([]byte, bufferSize))
	data := make([]byte, dataSize)
	p := make([]byte, dataSize)

	var bytesWritten, bytesRead int

	b.SetBytes(int64(dataSize))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		produce(ring, data, &bytesWritten)
		consume(ring, p, &bytesRead)
	}

	b.StopTimer()

	if bytesWritten != bytesRead {
		b.Fatalf("wrote %d bytes, read %d", bytesWritten, bytesRead)
	}
}

func BenchmarkRing(b *testing.B) {
	// An odd buffer size keeps the cursors off the storage boundary
	b.Run("1KiB/64KiB+1", func(b *testing.B) { benchmarkRing(b, 1<<16+1, 1024) })
	b.Run("64B/1KiB+3", func(b *testing.B) { benchmarkRing(b, 1<<10+3, 64) })
}

func BenchmarkWriteOnlyRing(b *testing.B) {
	const dataSize = 4096
	ring := NewWriteOnlyRing(make([]byte, 1<<12+7))
	data := make([]byte, dataSize)

	b.SetBytes(dataSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ring.WriteBytes(data)
	}
}

func BenchmarkReadOnlyRing(b *testing.B) {
	const dataSize = 4096
	ring := NewReadOnlyRing(make([]byte, 1<<10+5))
	p := make([]byte, dataSize)

	b.SetBytes(dataSize)
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		consume(ring, p, new(int))
	}
}
