package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "ringcat",
	Short: "Move bytes through fixed-capacity rings",
	Long: `ringcat - stream stdin through caller-allocated ring buffers.

Every command allocates its storage once, up front, and never grows it.
Sizes accept units such as 512, 4KiB or 1MB.

Examples:
  # Copy through a 64 KiB ring, flushing whenever it fills
  ringcat pipe --size 64KiB < in.bin > out.bin

  # Keep only the last 1 KiB of a log
  ringcat tail --bytes 1KiB < app.log

  # Produce 10 MB by repeating a pattern file
  ringcat cycle --bytes 10MB < pattern.bin > big.bin`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
