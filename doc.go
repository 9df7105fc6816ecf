/*
Package bsdelta computes and represents bsdiff-style binary deltas: a
sequence of Instructions, each a diff-copy run (old and new regions summed
byte-wise modulo 256) followed by a verbatim literal run, sufficient to
reconstruct new from old.

Two MatchIndex implementations locate candidate copy regions in old:
SuffixIndex, an exact suffix array, and HashIndex, a buzhash block index
trading exactness for a fixed, much smaller memory footprint. Both are
interchangeable inputs to the same shaping loop, driven either in one shot
via Diff or one instruction at a time via Stepper.

The three output streams (an instruction stream, a diff-copy byte stream,
and an extra-literal byte stream) are written through the BlockSink
interface, independently of the shaping loop itself; NewLZOSink and
NewZstdSink provide the two compressed implementations.
*/
package bsdelta
