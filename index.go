package bsdelta

// MatchIndex is a match-finding index built once over old. The shaping loop
// calls only FindNext, advancing scan left to right; Close releases the
// index's backing allocations exactly once.
//
// SuffixIndex and HashIndex are the two implementations; both answer
// "longest match for the prefix of new at or after scan" the same way from
// the shaping loop's point of view, trading exactness for memory.
type MatchIndex interface {
	// FindNext advances scan from its current value and returns the next
	// candidate match: scan' (the position the match starts at, >= the input
	// scan), pos (its start in old), and len (its length). lastoffset is
	// lastpos-lastscan of the shaping loop's previous copy window (or oldlen
	// when noAddBlock is set), used to prefer genuinely new matches over
	// continuations of the running one. If no match is found before newlen,
	// it returns (len(new), 0, 0).
	FindNext(old, new []byte, lastoffset Off, scan Off) (nextScan, pos, length Off)

	// Close releases the index's backing allocations. It is safe to call
	// exactly once; calling FindNext after Close is undefined.
	Close()
}
