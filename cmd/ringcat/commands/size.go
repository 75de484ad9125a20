package commands

import (
	"errors"
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// maxStorage bounds ring storage allocated from a flag.
const maxStorage = 1 << 30

// byteSize is a flag value holding a positive byte count.
type byteSize int64

func (s *byteSize) String() string {
	return humanize.IBytes(uint64(*s))
}

func (s *byteSize) Set(value string) error {
	n, err := humanize.ParseBytes(value)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", value, err)
	}
	if n == 0 {
		return errors.New("size must be positive")
	}
	if n > math.MaxInt64 {
		return fmt.Errorf("size %q is too large", value)
	}

	*s = byteSize(n)
	return nil
}

func (s *byteSize) Type() string {
	return "size"
}

// allocate returns ring storage of the given size.
func allocate(name string, size byteSize) ([]byte, error) {
	if size > maxStorage {
		return nil, fmt.Errorf("--%s %s exceeds %s", name, humanize.IBytes(uint64(size)), humanize.IBytes(maxStorage))
	}

	return make([]byte, size), nil
}
