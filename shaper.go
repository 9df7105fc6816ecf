package bsdelta

import "fmt"

// shapeStep computes one Instruction from a committed match window, shared
// by Diff and Stepper. lastscan/lastpos are the end of the previous
// instruction's copy-in region; scan/pos/length are what MatchIndex.FindNext
// just reported. It returns the instruction plus the (lastscan, lastpos)
// pair the next call should start from.
//
// noAddBlock selects the FlagNoAddBlock shape: forward and backward
// extension are both skipped, so every instruction has CopyOut == 0 and
// its whole span is literal (there is no add stream to carry diff bytes).
func shapeStep(old, new []byte, lastscan, lastpos, scan, pos, length Off, noAddBlock bool) (instr Instruction, newLastScan, newLastPos Off) {
	oldLen := Off(len(old))

	var lenf Off
	if !noAddBlock {
		var s, Sf, i Off
		for lastscan+i < scan && lastpos+i < oldLen {
			if old[lastpos+i] == new[lastscan+i] {
				s++
				i++
				if s >= Sf+(i-s) {
					Sf = 2*s - i
					lenf = i
				}
			} else {
				i++
			}
		}
	}

	var lenb Off
	if !noAddBlock && scan < Off(len(new)) {
		var s, Sb Off
		for i := Off(1); scan >= lastscan+i && pos >= i; i++ {
			if old[pos-i] == new[scan-i] {
				s++
			}
			if s >= Sb+(i-s) {
				Sb = 2*s - i
				lenb = i
			}
		}
	}

	if lastscan+lenf > scan-lenb {
		overlap := (lastscan + lenf) - (scan - lenb)
		var s, Sb, Ss, lens Off
		for i := Off(0); i < overlap; i++ {
			if new[lastscan+lenf-overlap+i] == old[lastpos+lenf-overlap+i] {
				s++
			}
			if new[scan-lenb+i] == old[pos-lenb+i] {
				Sb++
			}
			if s > Sb && s-Sb > Ss {
				Ss = s - Sb
				lens = i + 1
			}
		}
		lenf -= overlap - lens
		lenb -= lens
	}

	instr = Instruction{
		CopyOut:    lenf,
		CopyIn:     (scan - lenb) - (lastscan + lenf),
		CopyOutOff: lastpos,
		CopyInOff:  lastscan,
	}
	newLastScan = scan - lenb
	newLastPos = pos - lenb
	return
}

// encodeOff serializes a signed 64-bit offset as 8 bytes: 7 little-endian
// magnitude bytes followed by a byte whose high bit carries the sign and
// whose low 7 bits hold the top magnitude byte. This is the instruction
// stream's only encoding primitive and is part of the wire format.
func encodeOff(v int64) [8]byte {
	sign := byte(0)
	if v < 0 {
		sign = 0x80
		v = -v
	}
	uv := uint64(v)
	var b [8]byte
	for i := 0; i < 7; i++ {
		b[i] = byte(uv)
		uv >>= 8
	}
	b[7] = sign | byte(uv&0x7f)
	return b
}

// writeInstruction serializes instr as three encodeOff offsets — copy-out
// length, copy-in length, and the signed seek in old between the end of
// this instruction's copy-out region (CopyOutOff+CopyOut) and the start of
// the next instruction's copy-out source (nextCopyOutOff) — and writes the
// resulting 24 bytes to sink.
func writeInstruction(sink BlockSink, instr Instruction, nextCopyOutOff Off) error {
	seek := toSigned64(nextCopyOutOff) - (toSigned64(instr.CopyOutOff) + toSigned64(instr.CopyOut))
	buf := make([]byte, 0, 24)
	for _, v := range [3]int64{toSigned64(instr.CopyOut), toSigned64(instr.CopyIn), seek} {
		b := encodeOff(v)
		buf = append(buf, b[:]...)
	}
	if err := sink.Write(buf); err != nil {
		return fmt.Errorf("%w: instruction stream: %w", ErrSinkFailure, err)
	}
	return nil
}

// writeAddBlock writes the modular-256 byte-difference stream for a
// CopyOut region of length lenf starting at (lastscan, lastpos), chunked at
// 4096 bytes per Write call to bound peak buffering.
func writeAddBlock(sink BlockSink, old, new []byte, lastscan, lastpos, lenf Off) error {
	const chunk = 4096
	buf := make([]byte, 0, chunk)
	for lenf > 0 {
		n := lenf
		if n > chunk {
			n = chunk
		}
		buf = buf[:0]
		for i := Off(0); i < n; i++ {
			buf = append(buf, new[lastscan+i]-old[lastpos+i])
		}
		if err := sink.Write(buf); err != nil {
			return fmt.Errorf("%w: add stream: %w", ErrSinkFailure, err)
		}
		lastscan += n
		lastpos += n
		lenf -= n
	}
	return nil
}

// writeExtraBlock writes the verbatim literal bytes new[from:to], chunked
// at 2^30 bytes per Write call.
func writeExtraBlock(sink BlockSink, new []byte, from, to Off) error {
	const chunk = 1 << 30
	for from < to {
		n := to - from
		if n > chunk {
			n = chunk
		}
		if err := sink.Write(new[from : from+n]); err != nil {
			return fmt.Errorf("%w: extra stream: %w", ErrSinkFailure, err)
		}
		from += n
	}
	return nil
}
