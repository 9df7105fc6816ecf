package bsdelta

// Stepper is the stepwise counterpart to Diff: it exposes one Instruction
// per call instead of running the shaping loop to completion, for callers
// that want to interleave diffing with their own I/O or flow control. It
// corresponds to mkdiff_step_setup/mkdiff_step/mkdiff_step_free.
//
// A Stepper holds the MatchIndex built over old for its lifetime; call
// Close to release it once done.
type Stepper struct {
	old, new   []byte
	idx        MatchIndex
	noAddBlock bool

	scan, lastscan, lastpos Off
}

// NewStepper builds a Stepper over the given (old, new) pair under mode.
func NewStepper(mode Mode, old, new []byte) (*Stepper, error) {
	base, noAddBlock, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}
	idx, err := buildIndex(base, old)
	if err != nil {
		return nil, err
	}
	return &Stepper{old: old, new: new, idx: idx, noAddBlock: noAddBlock}, nil
}

// Step produces the next Instruction. done is true once the diff is
// complete (lastscan has reached len(new)), at which point instr is the
// zero value and Step may be called again safely — it keeps returning
// done == true.
//
// Unlike Diff, which always sets the next lastpos to pos-lenb, Step sets
// it to lastpos+copyout on the final instruction (scan == len(new)). This
// mirrors mkdiff_step's own terminal case, which differs from mkdiff's.
func (st *Stepper) Step() (instr Instruction, done bool, err error) {
	newLen := Off(len(st.new))
	if st.lastscan >= newLen {
		return Instruction{}, true, nil
	}
	oldLen := Off(len(st.old))

	lastoffset := st.lastpos - st.lastscan
	if st.noAddBlock {
		lastoffset = oldLen
	}
	scan, pos, length := st.idx.FindNext(st.old, st.new, lastoffset, st.scan)

	instr, newLastScan, newLastPos := shapeStep(st.old, st.new, st.lastscan, st.lastpos, scan, pos, length, st.noAddBlock)
	if scan == newLen {
		newLastPos = st.lastpos + instr.CopyOut
	}

	st.scan = scan + length
	st.lastscan = newLastScan
	st.lastpos = newLastPos
	return instr, false, nil
}

// Close releases the Stepper's MatchIndex. It is safe to call more than
// once.
func (st *Stepper) Close() error {
	if st.idx != nil {
		st.idx.Close()
		st.idx = nil
	}
	return nil
}
