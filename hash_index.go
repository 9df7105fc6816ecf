package bsdelta

import "bytes"

// HashIndex is the approximate, memory-light MatchIndex: non-overlapping
// hashBlockSize-byte blocks of old are hashed with buzhash into an
// open-addressed table with exactly one linear-probe step.
type HashIndex struct {
	hash  []Off
	prime uint32
}

// BuildHashIndex builds a HashIndex over old. It returns a *BoundsError
// wrapping ErrInputTooLarge if oldlen is MaxHashIndexInput or more for this
// build's Off width.
func BuildHashIndex(old []byte) (*HashIndex, error) {
	oldLen := Off(len(old))
	if oldLen >= MaxHashIndexInput {
		return nil, &BoundsError{Mode: ModeHash, OldLen: oldLen, Max: MaxHashIndexInput}
	}

	num := (oldLen + hashBlockSize - 1) >> hashBlockShift
	target := uint32(num) * 4
	prime := hashPrimes[len(hashPrimes)-1]
	for s := 0; s < len(hashPrimes)-1; s++ {
		if target < hashPrimes[s] {
			prime = hashPrimes[s]
			break
		}
	}

	hash := make([]Off, prime)
	for off := Off(0); oldLen-off >= hashBlockSize; off += hashBlockSize {
		block := old[off : off+hashBlockSize]
		s := buzhash(block) % prime
		if hash[s] != 0 {
			next := s + 1
			if s == prime-1 {
				next = 0
			}
			if hash[next] != 0 {
				continue
			}
			if bytes.Equal(old[hash[s]-1:hash[s]-1+hashBlockSize], block) {
				continue
			}
			s = next
		}
		hash[s] = off + 1
	}
	return &HashIndex{hash: hash, prime: prime}, nil
}

// Close releases the index's backing table.
func (h *HashIndex) Close() {
	h.hash = nil
}

// FindNext implements hash_findnext: a rolling buzhash search over new with
// a double-check probe three blocks ahead, tracking the best candidate seen
// since the last commit point and committing once it is both long (>=32)
// and clear of closer competition (scan has moved a full block past it).
func (h *HashIndex) FindNext(old, new []byte, lastoffset Off, scan Off) (Off, Off, Off) {
	oldLen, newLen := Off(len(old)), Off(len(new))
	hash, prime := h.hash, h.prime

	if newLen < hashBlockSize {
		return newLen, 0, 0
	}

	scanStart := scan
	var oldScore, oldScoreNum, oldScoreStart Off
	var ssx uint32
	if scan <= newLen-hashBlockSize {
		ssx = buzhash(new[scan:])
	}
	var pos, length Off
	var lScan, lPos, lLen Off

	for {
		if scan >= newLen-hashBlockSize {
			if lLen >= 32 {
				goto gotit
			}
			goto exhausted
		}

		{
			ss := ssx % prime
			pos = hash[ss]
			if pos == 0 {
				goto scanNext
			}
			pos--
			if !bytes.Equal(old[pos:pos+hashBlockSize], new[scan:scan+hashBlockSize]) {
				next := ss + 1
				if ss == prime-1 {
					next = 0
				}
				pos = hash[next]
				if pos == 0 {
					goto scanNext
				}
				pos--
				if !bytes.Equal(old[pos:pos+hashBlockSize], new[scan:scan+hashBlockSize]) {
					goto scanNext
				}
			}
			length = matchlen(old[pos+hashBlockSize:], new[scan+hashBlockSize:]) + hashBlockSize

			if scan+hashBlockSize*4 <= newLen {
				ssx2 := buzhash(new[scan+hashBlockSize*3:]) % prime
				pos2 := hash[ssx2]
				if pos2 != 0 {
					if !bytes.Equal(new[scan+hashBlockSize*3:scan+hashBlockSize*3+hashBlockSize], old[pos2-1:pos2-1+hashBlockSize]) {
						// Preserved verbatim from the source: compares ssx2
						// against prime rather than prime-1, a latent
						// off-by-one in the double-check probe's wraparound.
						if ssx2 == prime {
							ssx2 = 0
						} else {
							ssx2++
						}
						pos2 = hash[ssx2]
					}
				}
				if pos2 > 1+hashBlockSize*3 {
					pos2 = pos2 - 1 - hashBlockSize*3
					if pos2 != pos {
						len2 := matchlen(old[pos2:], new[scan:])
						if len2 > length {
							pos = pos2
							length = len2
						}
					}
				}
			}

			if length > lLen {
				lLen = length
				lPos = pos
				lScan = scan
			}
			goto scanNext
		}

	scanNext:
		if lLen >= 32 && scan-lScan >= hashBlockSize {
			goto gotit
		}
		{
			oldc := hashNoise[new[scan]] ^ buzhashRollXor
			ssx = rotl1(ssx) ^ hashNoise[new[scan+hashBlockSize]]
			ssx ^= rotl(oldc, hashBlockSize%32)
		}
		scan++
		continue

	gotit:
		scan = lScan
		length = lLen
		pos = lPos
		if scan+lastoffset == pos {
			scan += length
			scanStart = scan
			if scan+hashBlockSize < newLen {
				ssx = buzhash(new[scan:])
			}
			lLen = 0
			continue
		}

		for i := scan - scanStart; i != 0 && pos != 0 && scan != 0 && old[pos-1] == new[scan-1]; i-- {
			length++
			pos--
			scan--
		}

		if oldScoreStart+1 != scan || oldScoreNum == 0 || oldScoreNum-1 > length {
			oldScore = 0
			for scsc := scan; scsc < scan+length; scsc++ {
				if scsc+lastoffset < oldLen && old[scsc+lastoffset] == new[scsc] {
					oldScore++
				}
			}
			oldScoreStart = scan
			oldScoreNum = length
		} else {
			if oldScoreStart+lastoffset < oldLen && old[oldScoreStart+lastoffset] == new[oldScoreStart] {
				oldScore--
			}
			oldScoreStart++
			oldScoreNum--
			for scsc := oldScoreStart + oldScoreNum; oldScoreNum < length; scsc++ {
				if scsc+lastoffset < oldLen && old[scsc+lastoffset] == new[scsc] {
					oldScore++
				}
				oldScoreNum++
			}
		}

		if length-oldScore >= 32 {
			break
		}
		if length > hashBlockSize*3+32 {
			scan += length - (hashBlockSize*3 + 32)
		}
		if scan <= lScan {
			scan = lScan + 1
		}
		scanStart = scan
		if scan+hashBlockSize < newLen {
			ssx = buzhash(new[scan:])
		}
		lLen = 0
	}

	if scan >= newLen-hashBlockSize {
		return newLen, 0, 0
	}
	return scan, pos, length

exhausted:
	return newLen, 0, 0
}

// matchlen returns the length of the common prefix of a and b.
func matchlen(a, b []byte) Off {
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	var i int
	for i = 0; i < max; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return Off(i)
}
