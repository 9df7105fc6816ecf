package bsdelta

import (
	"bytes"
	"math/rand"
	"testing"
)

// decodedInstr mirrors one 24-byte record of the instruction stream, in the
// shape a patch applier would decode it: a copy-out length from old (added
// to the diff-copy stream), a copy-in length of verbatim extra-literal
// bytes, and a signed seek applied to the old-file cursor before the next
// record's copy-out.
type decodedInstr struct {
	CopyOut int64
	CopyIn  int64
	Seek    int64
}

// decodeOff is the inverse of encodeOff: 7 little-endian magnitude bytes
// plus a high byte carrying the sign and the top 7 magnitude bits.
func decodeOff(b [8]byte) int64 {
	var magnitude uint64
	for i := 6; i >= 0; i-- {
		magnitude = magnitude<<8 | uint64(b[i])
	}
	magnitude |= uint64(b[7]&0x7f) << 56
	v := int64(magnitude)
	if b[7]&0x80 != 0 {
		v = -v
	}
	return v
}

// decodeInstrStream parses a decompressed instruction block into its
// records, the way a patch applier reading the wire format would.
func decodeInstrStream(t *testing.T, raw []byte) []decodedInstr {
	t.Helper()
	if len(raw)%24 != 0 {
		t.Fatalf("instruction stream length %d is not a multiple of 24", len(raw))
	}
	out := make([]decodedInstr, 0, len(raw)/24)
	for i := 0; i < len(raw); i += 24 {
		var rec [3][8]byte
		copy(rec[0][:], raw[i:i+8])
		copy(rec[1][:], raw[i+8:i+16])
		copy(rec[2][:], raw[i+16:i+24])
		out = append(out, decodedInstr{
			CopyOut: decodeOff(rec[0]),
			CopyIn:  decodeOff(rec[1]),
			Seek:    decodeOff(rec[2]),
		})
	}
	return out
}

// applyDecodedStream reconstructs new from old plus a decoded instruction
// stream and the decompressed add/extra byte streams, exactly as a patch
// applier would walk the wire format -- as opposed to applyInstructions,
// which reconstructs directly from in-memory Instruction structs and so
// never touches the encoded seek field.
func applyDecodedStream(old []byte, instrs []decodedInstr, addStream, extraStream []byte) []byte {
	var out []byte
	var oldPos, addPos, extraPos int64
	for _, in := range instrs {
		for i := int64(0); i < in.CopyOut; i++ {
			out = append(out, old[oldPos+i]+addStream[addPos+i])
		}
		oldPos += in.CopyOut
		addPos += in.CopyOut

		out = append(out, extraStream[extraPos:extraPos+in.CopyIn]...)
		extraPos += in.CopyIn

		oldPos += in.Seek
	}
	return out
}

// decodeResultStreams decompresses and decodes all three of a Result's
// output blocks, using Stats to know each stream's uncompressed length.
func decodeResultStreams(t *testing.T, res *Result) ([]decodedInstr, []byte, []byte) {
	t.Helper()
	instrRaw, err := lzoBlockSource(res.InstrBlock, int(res.Stats.Instructions)*24)
	if err != nil {
		t.Fatalf("decompress instruction block: %v", err)
	}
	addRaw, err := lzoBlockSource(res.AddBlock, int(res.Stats.AddBytes))
	if err != nil {
		t.Fatalf("decompress add block: %v", err)
	}
	extraRaw, err := lzoBlockSource(res.ExtraBlock, int(res.Stats.ExtraBytes))
	if err != nil {
		t.Fatalf("decompress extra block: %v", err)
	}
	return decodeInstrStream(t, instrRaw), addRaw, extraRaw
}

// TestWireRoundTrip decodes Result.InstrBlock/AddBlock/ExtraBlock back into
// bytes -- rather than reconstructing from the in-memory []Instruction
// structs -- and checks the reconstruction matches new. This is the only
// test that exercises writeInstruction's encoded seek field end to end.
func TestWireRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(2024))
	old := randomishText(r, 6000)
	new := mutate(r, old, 80)

	for _, mode := range []Mode{ModeSuffix, ModeHash} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			res, err := Diff(old, new, DefaultDiffOptions(mode))
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}

			instrs, addStream, extraStream := decodeResultStreams(t, res)
			got := applyDecodedStream(old, instrs, addStream, extraStream)
			if !bytes.Equal(got, new) {
				t.Fatalf("wire round-trip mismatch (mode=%s)", mode)
			}
		})
	}
}

// TestWireRoundTripShortHashInput exercises hash mode with a new shorter
// than one hash block (previously an out-of-bounds panic in
// HashIndex.FindNext), decoding the real wire streams rather than the
// Instruction structs.
func TestWireRoundTripShortHashInput(t *testing.T) {
	cases := []struct {
		name     string
		old, new []byte
	}{
		{"identical short", []byte("hello"), []byte("hello")},
		{"shrink to short", []byte("hello world, this old content is much longer than one block"), []byte("hi")},
		{"empty old, short new", nil, []byte("hey")},
		{"empty new", []byte("hello"), nil},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			res, err := Diff(tc.old, tc.new, DefaultDiffOptions(ModeHash))
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}

			instrs, addStream, extraStream := decodeResultStreams(t, res)
			got := applyDecodedStream(tc.old, instrs, addStream, extraStream)
			if !bytes.Equal(got, tc.new) {
				t.Fatalf("wire round-trip mismatch:\n got: %q\nwant: %q", got, tc.new)
			}
		})
	}
}
