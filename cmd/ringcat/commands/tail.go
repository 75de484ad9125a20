package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	ring "github.com/sushydev/byte_ring_go"
)

var tailBytes = byteSize(1 << 10)

var tailCmd = &cobra.Command{
	Use:   "tail",
	Short: "Print the last bytes of stdin",
	Long: `Print the last --bytes bytes of stdin.

Input is written into a write-only ring that silently overwrites its
oldest bytes. At end of input a read-only ring over the same storage
replays what is left, oldest byte first.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		storage, err := allocate("bytes", tailBytes)
		if err != nil {
			return err
		}

		total, err := tail(cmd.OutOrStdout(), cmd.InOrStdin(), storage)
		if err != nil {
			return fmt.Errorf("tail: %w", err)
		}

		slog.Debug("tail done", "input", total, "capacity", len(storage))
		return nil
	},
}

func init() {
	tailCmd.Flags().Var(&tailBytes, "bytes", "number of trailing bytes to keep")
	rootCmd.AddCommand(tailCmd)
}

// tail writes the last len(storage) bytes of src to dst and returns the number
// of bytes read from src.
func tail(dst io.Writer, src io.Reader, storage []byte) (int64, error) {
	writer := ring.NewWriteOnlyRing(storage)

	total, err := io.Copy(writer, src)
	if err != nil {
		return total, fmt.Errorf("read input: %w", err)
	}

	reader := ring.NewReadOnlyRing(storage)
	resident := total
	if total >= int64(len(storage)) {
		// The oldest resident byte sits at the write cursor
		reader.DiscardBytes(writer.WritePos())
		resident = int64(len(storage))
	}

	if _, err := io.CopyN(dst, reader, resident); err != nil {
		return total, fmt.Errorf("write output: %w", err)
	}

	return total, nil
}
