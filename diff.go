package bsdelta

import "fmt"

// DiffOptions selects which outputs a Diff call produces. A nil sink (or
// false for Instructions) means that output is skipped entirely — the
// corresponding shaping work (add/extra chunking) is still done only when
// its sink is non-nil, mirroring mkdiff's optional instrp/addblkp/
// extrablkp/instrblkp out-parameters.
type DiffOptions struct {
	// Mode selects the MatchIndex variant (ModeSuffix or ModeHash),
	// optionally OR-ed with FlagNoAddBlock.
	Mode Mode

	// Instructions, if true, collects the uncompressed Instruction slice
	// into Result.Instructions.
	Instructions bool

	// InstrSink, AddSink, ExtraSink receive the compressed instruction,
	// add, and extra streams respectively. Any of the three may be nil.
	InstrSink BlockSink
	AddSink   BlockSink
	ExtraSink BlockSink
}

// DefaultDiffOptions returns a DiffOptions for mode that produces only the
// three compressed streams (via NewLZOSink for each), matching the default
// shape of a bsdelta patch.
func DefaultDiffOptions(mode Mode) *DiffOptions {
	return &DiffOptions{
		Mode:      mode,
		InstrSink: NewLZOSink(),
		AddSink:   NewLZOSink(),
		ExtraSink: NewLZOSink(),
	}
}

// Result holds everything a Diff call produced, per its DiffOptions.
type Result struct {
	Instructions []Instruction
	InstrBlock   []byte
	AddBlock     []byte
	ExtraBlock   []byte
	Stats        Stats
}

// Diff computes a one-shot delta from old to new under opts.Mode,
// corresponding to mkdiff: it builds the requested MatchIndex, runs the
// shaping loop to completion, and returns every output opts asked for. A
// nil opts defaults to DefaultDiffOptions(ModeSuffix).
func Diff(old, new []byte, opts *DiffOptions) (*Result, error) {
	if opts == nil {
		opts = DefaultDiffOptions(ModeSuffix)
	}
	mode := opts.Mode
	base, noAddBlock, err := ParseMode(mode)
	if err != nil {
		return nil, err
	}

	idx, err := buildIndex(base, old)
	if err != nil {
		return nil, err
	}
	defer idx.Close()

	if opts.InstrSink != nil {
		if err := opts.InstrSink.Init(); err != nil {
			return nil, fmt.Errorf("%w: instruction sink init: %w", ErrSinkFailure, err)
		}
	}
	if !noAddBlock && opts.AddSink != nil {
		if err := opts.AddSink.Init(); err != nil {
			return nil, fmt.Errorf("%w: add sink init: %w", ErrSinkFailure, err)
		}
	}
	if opts.ExtraSink != nil {
		if err := opts.ExtraSink.Init(); err != nil {
			return nil, fmt.Errorf("%w: extra sink init: %w", ErrSinkFailure, err)
		}
	}

	res := &Result{}
	oldLen, newLen := Off(len(old)), Off(len(new))

	var lastscan, lastpos, scan Off
	for lastscan < newLen {
		lastoffset := lastpos - lastscan
		if noAddBlock {
			lastoffset = oldLen
		}

		nextScan, pos, length := idx.FindNext(old, new, lastoffset, scan)
		scan = nextScan

		instr, newLastScan, newLastPos := shapeStep(old, new, lastscan, lastpos, scan, pos, length, noAddBlock)

		if opts.Instructions {
			res.Instructions = append(res.Instructions, instr)
		}
		if opts.InstrSink != nil {
			if err := writeInstruction(opts.InstrSink, instr, newLastPos); err != nil {
				return nil, err
			}
		}
		if opts.ExtraSink != nil {
			from := instr.CopyInOff + instr.CopyOut
			to := newLastScan
			if err := writeExtraBlock(opts.ExtraSink, new, from, to); err != nil {
				return nil, err
			}
			res.Stats.ExtraBytes += to - from
		}
		if !noAddBlock && opts.AddSink != nil {
			if err := writeAddBlock(opts.AddSink, old, new, lastscan, lastpos, instr.CopyOut); err != nil {
				return nil, err
			}
		}

		res.Stats.Instructions++
		res.Stats.AddBytes += instr.CopyOut
		res.Stats.CopyBytes += instr.CopyIn

		lastscan, lastpos = newLastScan, newLastPos
		scan += length
	}

	if opts.InstrSink != nil {
		res.InstrBlock, err = opts.InstrSink.Finish()
		if err != nil {
			return nil, fmt.Errorf("%w: instruction sink finish: %w", ErrSinkFailure, err)
		}
	}
	if !noAddBlock && opts.AddSink != nil {
		res.AddBlock, err = opts.AddSink.Finish()
		if err != nil {
			return nil, fmt.Errorf("%w: add sink finish: %w", ErrSinkFailure, err)
		}
	}
	if opts.ExtraSink != nil {
		res.ExtraBlock, err = opts.ExtraSink.Finish()
		if err != nil {
			return nil, fmt.Errorf("%w: extra sink finish: %w", ErrSinkFailure, err)
		}
	}

	res.Stats.Mode = mode
	res.Stats.OldLen = oldLen
	res.Stats.NewLen = newLen
	return res, nil
}

// buildIndex constructs the MatchIndex for base (a mode value with
// FlagNoAddBlock already stripped by ParseMode).
func buildIndex(base Mode, old []byte) (MatchIndex, error) {
	switch base {
	case ModeSuffix:
		return BuildSuffixIndex(old)
	case ModeHash:
		return BuildHashIndex(old)
	default:
		return nil, &ModeError{Mode: base}
	}
}
