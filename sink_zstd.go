package bsdelta

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// zstdSink is a streaming alternative to lzoSink: Write forwards directly
// to a zstd.Encoder instead of buffering the whole block, trading lzoSink's
// simplicity for lower peak memory on large add/extra streams.
type zstdSink struct {
	level zstd.EncoderLevel
	buf   bytes.Buffer
	enc   *zstd.Encoder
}

// NewZstdSink returns a BlockSink backed by github.com/klauspost/compress/zstd
// at the given encoder level.
func NewZstdSink(level zstd.EncoderLevel) BlockSink {
	return &zstdSink{level: level}
}

func (s *zstdSink) Init() error {
	s.buf.Reset()
	enc, err := zstd.NewWriter(&s.buf, zstd.WithEncoderLevel(s.level))
	if err != nil {
		return err
	}
	s.enc = enc
	return nil
}

func (s *zstdSink) Write(p []byte) error {
	_, err := s.enc.Write(p)
	return err
}

func (s *zstdSink) Finish() ([]byte, error) {
	if err := s.enc.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, s.buf.Len())
	copy(out, s.buf.Bytes())
	return out, nil
}

// zstdBlockSource decompresses a block produced by zstdSink.
func zstdBlockSource(block []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(block, nil)
}
