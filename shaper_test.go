package bsdelta

import "testing"

func TestEncodeOff(t *testing.T) {
	cases := []struct {
		v    int64
		want [8]byte
	}{
		{0, [8]byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{1, [8]byte{1, 0, 0, 0, 0, 0, 0, 0}},
		{-1, [8]byte{1, 0, 0, 0, 0, 0, 0, 0x80}},
		{255, [8]byte{255, 0, 0, 0, 0, 0, 0, 0}},
		{256, [8]byte{0, 1, 0, 0, 0, 0, 0, 0}},
		{-256, [8]byte{0, 1, 0, 0, 0, 0, 0, 0x80}},
	}
	for _, c := range cases {
		got := encodeOff(c.v)
		if got != c.want {
			t.Errorf("encodeOff(%d) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestToSigned64RoundTrip(t *testing.T) {
	// A small positive value must reinterpret identically regardless of Off
	// width; this only exercises the common, in-range case since the two
	// build-tag variants can't both be compiled in one test binary.
	var v Off = 42
	if got := toSigned64(v); got != 42 {
		t.Errorf("toSigned64(42) = %d, want 42", got)
	}
}

func TestWriteAddBlockChunking(t *testing.T) {
	old := make([]byte, 9000)
	new := make([]byte, 9000)
	for i := range new {
		new[i] = old[i] + 3
	}
	sink := &recordingSink{}
	if err := writeAddBlock(sink, old, new, 0, 0, 9000); err != nil {
		t.Fatalf("writeAddBlock: %v", err)
	}
	if len(sink.writes) < 3 {
		t.Errorf("expected at least 3 chunked writes for 9000 bytes at 4096/chunk, got %d", len(sink.writes))
	}
	var total []byte
	for _, w := range sink.writes {
		total = append(total, w...)
	}
	if len(total) != 9000 {
		t.Fatalf("total written = %d, want 9000", len(total))
	}
	for i, b := range total {
		if b != 3 {
			t.Fatalf("byte %d = %d, want 3", i, b)
		}
	}
}

func TestWriteExtraBlockChunking(t *testing.T) {
	new := make([]byte, 10)
	for i := range new {
		new[i] = byte(i)
	}
	sink := &recordingSink{}
	if err := writeExtraBlock(sink, new, 2, 8); err != nil {
		t.Fatalf("writeExtraBlock: %v", err)
	}
	var total []byte
	for _, w := range sink.writes {
		total = append(total, w...)
	}
	want := new[2:8]
	if string(total) != string(want) {
		t.Fatalf("writeExtraBlock wrote %v, want %v", total, want)
	}
}

type recordingSink struct {
	writes [][]byte
}

func (s *recordingSink) Init() error { return nil }
func (s *recordingSink) Write(p []byte) error {
	cp := append([]byte(nil), p...)
	s.writes = append(s.writes, cp)
	return nil
}
func (s *recordingSink) Finish() ([]byte, error) { return nil, nil }
