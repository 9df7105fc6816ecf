package bsdelta

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Stats accumulates size and shape counters over the course of a Diff
// call, surfaced for logging and diagnostics.
type Stats struct {
	Mode         Mode
	OldLen       Off
	NewLen       Off
	Instructions Off
	AddBytes     Off
	CopyBytes    Off
	ExtraBytes   Off
}

// String renders Stats as a human-readable one-liner with byte counts in
// humanize.Bytes form and the instruction count comma-grouped, e.g.
// "suffix: 1.2 MB -> 1.3 MB, 41,800 instructions (212 kB diff, 48 kB copy,
// 1.1 MB extra)".
func (s Stats) String() string {
	return fmt.Sprintf(
		"%s: %s -> %s, %s instructions (%s diff, %s copy, %s extra)",
		s.Mode,
		humanize.Bytes(uint64(s.OldLen)),
		humanize.Bytes(uint64(s.NewLen)),
		humanize.Comma(int64(s.Instructions)),
		humanize.Bytes(uint64(s.AddBytes)),
		humanize.Bytes(uint64(s.CopyBytes)),
		humanize.Bytes(uint64(s.ExtraBytes)),
	)
}

// Ratio returns the compressed-over-uncompressed size ratio for a Result,
// given the three compressed block lengths. It returns 0 if NewLen is 0.
func (s Stats) Ratio(instrBlockLen, addBlockLen, extraBlockLen int) float64 {
	if s.NewLen == 0 {
		return 0
	}
	compressed := instrBlockLen + addBlockLen + extraBlockLen
	return float64(compressed) / float64(s.NewLen)
}
