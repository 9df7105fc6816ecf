package bsdelta

import (
	"strings"
	"testing"
)

func TestStatsPopulatedByDiff(t *testing.T) {
	old := []byte("the quick brown fox jumps over the lazy dog")
	new := []byte("the quick brown fox leaps over the lazy doggo")

	res, err := Diff(old, new, &DiffOptions{Mode: ModeSuffix, Instructions: true})
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if res.Stats.OldLen != Off(len(old)) {
		t.Errorf("Stats.OldLen = %d, want %d", res.Stats.OldLen, len(old))
	}
	if res.Stats.NewLen != Off(len(new)) {
		t.Errorf("Stats.NewLen = %d, want %d", res.Stats.NewLen, len(new))
	}
	if res.Stats.Instructions == 0 {
		t.Error("expected nonzero instruction count")
	}
	if res.Stats.Mode != ModeSuffix {
		t.Errorf("Stats.Mode = %v, want %v", res.Stats.Mode, ModeSuffix)
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{
		Mode:         ModeHash,
		OldLen:       1024,
		NewLen:       2048,
		Instructions: 3,
		AddBytes:     100,
		CopyBytes:    900,
		ExtraBytes:   1048,
	}
	str := s.String()
	if !strings.Contains(str, "hash") {
		t.Errorf("String() = %q, want it to mention mode %q", str, "hash")
	}
	if !strings.Contains(str, "3 instructions") {
		t.Errorf("String() = %q, want instruction count", str)
	}
}

func TestStatsRatio(t *testing.T) {
	s := Stats{NewLen: 1000}
	if got := s.Ratio(100, 100, 100); got != 0.3 {
		t.Errorf("Ratio = %v, want 0.3", got)
	}
	empty := Stats{}
	if got := empty.Ratio(10, 10, 10); got != 0 {
		t.Errorf("Ratio on zero NewLen = %v, want 0", got)
	}
}
