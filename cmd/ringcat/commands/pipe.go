package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	ring "github.com/sushydev/byte_ring_go"
)

var (
	pipeSize  = byteSize(64 << 10)
	pipeChunk = byteSize(4 << 10)
)

var pipeCmd = &cobra.Command{
	Use:   "pipe",
	Short: "Copy stdin to stdout through a ring",
	Long: `Copy stdin to stdout through a ring of --size bytes.

Input is read in chunks of at most --chunk bytes. The ring is flushed
to stdout, straight from its storage, whenever it fills and once more
at the end of input.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := allocate("size", pipeSize)
		if err != nil {
			return err
		}
		chunk, err := allocate("chunk", pipeChunk)
		if err != nil {
			return err
		}

		total, err := pipe(cmd.OutOrStdout(), cmd.InOrStdin(), ring.NewRing(storage), chunk)
		if err != nil {
			return fmt.Errorf("pipe: %w", err)
		}

		slog.Debug("pipe done", "bytes", total, "capacity", len(storage))
		return nil
	},
}

func init() {
	pipeCmd.Flags().Var(&pipeSize, "size", "ring capacity")
	pipeCmd.Flags().Var(&pipeChunk, "chunk", "maximum read size")
	rootCmd.AddCommand(pipeCmd)
}

// pipe copies src to dst through rb and returns the number of bytes written.
func pipe(dst io.Writer, src io.Reader, rb *ring.Ring, chunk []byte) (int64, error) {
	var total int64
	flushes := 0

	for eof := false; !eof; {
		n, err := src.Read(chunk[:min(len(chunk), rb.Free())])
		rb.WriteBytes(chunk[:n])

		if err == io.EOF {
			eof = true
		} else if err != nil {
			return total, fmt.Errorf("read input: %w", err)
		}

		if !rb.IsFull() && !eof {
			continue
		}

		written, err := flush(dst, rb)
		total += written
		flushes++
		if err != nil {
			return total, fmt.Errorf("write output: %w", err)
		}
	}

	slog.Debug("pipe flushed", "flushes", flushes)
	return total, nil
}

// flush writes every unread byte of rb to dst, one contiguous span at a time.
func flush(dst io.Writer, rb *ring.Ring) (int64, error) {
	var total int64

	for span := rb.ReadSpan(); span > 0; span = rb.ReadSpan() {
		start := rb.ReadPos()
		n, err := dst.Write(rb.Data()[start : start+span])
		rb.DiscardBytes(n)
		total += int64(n)

		if err != nil {
			return total, err
		}
		if n < span {
			return total, io.ErrShortWrite
		}
	}

	return total, nil
}
