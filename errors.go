package bsdelta

import (
	"errors"
	"fmt"
)

// Sentinel errors of this package. The original engine this is modeled on
// treats allocation failure, an unknown mode, an oversized input, and a sink
// failure as fatal (process exit); here an unknown mode, an oversized input
// and a sink failure are ordinary returned errors instead.
var (
	// ErrOutOfMemory names an allocation failure. No function in this
	// package returns it: allocations are not checked for failure.
	ErrOutOfMemory = errors.New("bsdelta: out of memory")
	// ErrUnsupportedMode is returned when Mode names no installed index variant.
	ErrUnsupportedMode = errors.New("bsdelta: unsupported mode")
	// ErrInputTooLarge is returned when oldlen exceeds the hash-mode cap for
	// the configured Off width (see MaxHashIndexInput).
	ErrInputTooLarge = errors.New("bsdelta: input exceeds hash-mode size cap")
	// ErrSinkFailure is returned when a BlockSink Init, Write or Finish call
	// fails. The returned error wraps both ErrSinkFailure and the sink's own
	// error, so errors.Is matches either one.
	ErrSinkFailure = errors.New("bsdelta: block sink failed")
)

// ModeError reports that a requested Mode has no installed MatchIndex
// implementation. It wraps ErrUnsupportedMode.
type ModeError struct {
	Mode Mode
}

func (e *ModeError) Error() string {
	return fmt.Sprintf("bsdelta: mode %s has no installed index", e.Mode)
}

func (e *ModeError) Unwrap() error { return ErrUnsupportedMode }

// BoundsError reports that oldlen is outside what the configured Off width
// and index variant can address. It wraps ErrInputTooLarge.
type BoundsError struct {
	Mode   Mode
	OldLen Off
	Max    Off
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("bsdelta: oldlen %d exceeds %s cap of %d", e.OldLen, e.Mode, e.Max)
}

func (e *BoundsError) Unwrap() error { return ErrInputTooLarge }
