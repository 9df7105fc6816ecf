package bsdelta

import (
	"errors"
	"testing"
)

func TestModeErrorUnwraps(t *testing.T) {
	err := error(&ModeError{Mode: Mode(77)})
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Error("expected errors.Is(err, ErrUnsupportedMode) to hold")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}

func TestBoundsErrorUnwraps(t *testing.T) {
	err := error(&BoundsError{Mode: ModeHash, OldLen: 1 << 31, Max: 1 << 30})
	if !errors.Is(err, ErrInputTooLarge) {
		t.Error("expected errors.Is(err, ErrInputTooLarge) to hold")
	}
	if err.Error() == "" {
		t.Error("expected non-empty error message")
	}
}

func TestDiffUnsupportedMode(t *testing.T) {
	_, err := Diff([]byte("a"), []byte("b"), &DiffOptions{Mode: Mode(123)})
	if err == nil {
		t.Fatal("expected error for unsupported mode")
	}
	if !errors.Is(err, ErrUnsupportedMode) {
		t.Errorf("err = %v, want wrapping ErrUnsupportedMode", err)
	}
}

// failingSink fails its Write call, to exercise ErrSinkFailure wrapping.
type failingSink struct{ writeErr error }

func (failingSink) Init() error { return nil }
func (s failingSink) Write(p []byte) error {
	return s.writeErr
}
func (failingSink) Finish() ([]byte, error) { return nil, nil }

func TestDiffWrapsSinkFailure(t *testing.T) {
	underlying := errors.New("disk full")
	opts := &DiffOptions{
		Mode:      ModeSuffix,
		InstrSink: failingSink{writeErr: underlying},
	}
	_, err := Diff([]byte("the quick brown fox"), []byte("the slow brown fox"), opts)
	if err == nil {
		t.Fatal("expected error from failing sink")
	}
	if !errors.Is(err, ErrSinkFailure) {
		t.Errorf("err = %v, want wrapping ErrSinkFailure", err)
	}
	if !errors.Is(err, underlying) {
		t.Errorf("err = %v, want wrapping the underlying sink error", err)
	}
}
