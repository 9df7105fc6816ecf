package bsdelta

import "github.com/go-bsdelta/bsdelta/internal/lzo1x"

// lzoSink is the default BlockSink: it buffers everything written to it
// and LZO1X-compresses the whole block on Finish, the same one-shot shape
// delta.c's bzblock gives each of the instruction/add/extra streams.
type lzoSink struct {
	buf   []byte
	level int
}

// NewLZOSink returns a BlockSink backed by LZO1X-999 level 6, a balance of
// ratio and speed suited to one-shot block compression.
func NewLZOSink() BlockSink {
	return &lzoSink{level: 6}
}

// NewLZOSinkLevel returns a BlockSink backed by LZO1X at the given level
// (0 or 1 selects the fast LZO1X-1 parser; 2-9 select LZO1X-999).
func NewLZOSinkLevel(level int) BlockSink {
	return &lzoSink{level: level}
}

func (s *lzoSink) Init() error {
	s.buf = s.buf[:0]
	return nil
}

func (s *lzoSink) Write(p []byte) error {
	s.buf = append(s.buf, p...)
	return nil
}

func (s *lzoSink) Finish() ([]byte, error) {
	out, err := lzo1x.Compress(s.buf, &lzo1x.CompressOptions{Level: s.level})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// lzoBlockSource decompresses a block produced by lzoSink, given its known
// uncompressed length.
func lzoBlockSource(block []byte, uncompressedLen int) ([]byte, error) {
	return lzo1x.Decompress(block, lzo1x.DefaultDecompressOptions(uncompressedLen))
}
