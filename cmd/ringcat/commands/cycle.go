package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	ring "github.com/sushydev/byte_ring_go"
)

var (
	cycleBytes  = byteSize(1 << 20)
	cycleSize   = byteSize(64 << 10)
	cycleOffset int
)

var cycleCmd = &cobra.Command{
	Use:   "cycle",
	Short: "Repeat stdin as an endless source",
	Long: `Load up to --size bytes of stdin and emit exactly --bytes bytes by
reading them over and over through a read-only ring, starting
--offset bytes into the pattern.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cycleOffset < 0 {
			return errors.New("cycle: --offset must not be negative")
		}

		storage, err := allocate("size", cycleSize)
		if err != nil {
			return err
		}

		n, err := io.ReadFull(cmd.InOrStdin(), storage)
		if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
			return fmt.Errorf("cycle: read input: %w", err)
		}

		source := ring.NewReadOnlyRing(storage[:n])
		if source == nil {
			return errors.New("cycle: empty input")
		}
		source.DiscardBytes(cycleOffset)

		if _, err := io.CopyN(cmd.OutOrStdout(), source, int64(cycleBytes)); err != nil {
			return fmt.Errorf("cycle: write output: %w", err)
		}

		slog.Debug("cycle done", "pattern", n, "bytes", int64(cycleBytes), "end", source.ReadPos())
		return nil
	},
}

func init() {
	cycleCmd.Flags().Var(&cycleBytes, "bytes", "number of bytes to emit")
	cycleCmd.Flags().Var(&cycleSize, "size", "maximum pattern size")
	cycleCmd.Flags().IntVar(&cycleOffset, "offset", 0, "start offset into the pattern")
	rootCmd.AddCommand(cycleCmd)
}
