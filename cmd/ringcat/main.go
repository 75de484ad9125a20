// Package main is the entry point for ringcat, a byte pipeline tool built on
// fixed-capacity rings.
//
// Usage:
//
//	ringcat [flags] <command> [flags]
//
// Commands:
//
//	pipe   - Copy stdin to stdout through a ring
//	tail   - Print the last bytes of stdin
//	cycle  - Repeat stdin as an endless source
package main

import (
	"fmt"
	"os"

	"github.com/sushydev/byte_ring_go/cmd/ringcat/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
