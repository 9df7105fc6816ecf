package bsdelta

// BlockSink is the external block-compressor collaborator a diff writes one
// of the three output streams (instruction, add, extra) to. Init prepares
// the sink for writing, Write appends raw bytes (called any number of
// times, with no implied record boundary), and Finish flushes and returns
// the complete compressed blob, transferring its ownership to the caller.
//
// A BlockSink is used for exactly one stream of one diff; it is not reused
// across Finish calls.
type BlockSink interface {
	Init() error
	Write(p []byte) error
	Finish() ([]byte, error)
}

// discardSink is a BlockSink that drops everything written to it. It is
// useful when a caller wants Stats (instruction/byte counts) without
// paying for compression, e.g. DiffOptions{Instructions: true} with all
// three sinks left nil still runs the shaping loop but skips stream
// construction entirely — discardSink exists for the case where a stream
// still needs to be driven (to reach Stats.ExtraBytes accounting) but its
// bytes are not wanted.
type discardSink struct{}

func (discardSink) Init() error             { return nil }
func (discardSink) Write(p []byte) error    { return nil }
func (discardSink) Finish() ([]byte, error) { return nil, nil }
