package bsdelta

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiffIdenticalInputs(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeatedly, for padding")
	for _, mode := range []Mode{ModeSuffix, ModeHash} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			res, err := Diff(data, data, &DiffOptions{Mode: mode, Instructions: true})
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}
			if len(res.Instructions) == 0 {
				t.Fatal("expected at least one instruction")
			}
			var total Off
			for _, in := range res.Instructions {
				total += in.CopyOut + in.CopyIn
			}
			if total != Off(len(data)) {
				t.Errorf("instructions cover %d bytes, want %d", total, len(data))
			}
		})
	}
}

func TestDiffEmptyOld(t *testing.T) {
	new := []byte("brand new content with no history")
	for _, mode := range []Mode{ModeSuffix, ModeHash} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			res, err := Diff(nil, new, &DiffOptions{Mode: mode, Instructions: true})
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}
			lit := extractLiteral(nil, new, res.Instructions)
			got := applyInstructions(nil, res.Instructions, lit)
			if !bytes.Equal(got, new) {
				t.Fatalf("round-trip mismatch:\n got: %q\nwant: %q", got, new)
			}
		})
	}
}

func TestDiffEmptyNew(t *testing.T) {
	old := []byte("content that will vanish entirely")
	for _, mode := range []Mode{ModeSuffix, ModeHash} {
		mode := mode
		t.Run(mode.String(), func(t *testing.T) {
			res, err := Diff(old, nil, &DiffOptions{Mode: mode, Instructions: true})
			if err != nil {
				t.Fatalf("Diff: %v", err)
			}
			if len(res.Instructions) != 0 {
				t.Errorf("expected zero instructions for empty new, got %d", len(res.Instructions))
			}
		})
	}
}

func TestDiffNoAddBlockShape(t *testing.T) {
	old := []byte("aaaaaaaaaabbbbbbbbbbccccccccccdddddddddd")
	new := []byte("aaaaaaaaaaXXXXXXXXXXccccccccccYYYYYYYYYY")

	res, err := Diff(old, new, &DiffOptions{Mode: ModeSuffix | FlagNoAddBlock, Instructions: true})
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	for i, in := range res.Instructions {
		if in.CopyOut != 0 {
			t.Errorf("instr[%d] CopyOut = %d, want 0 under FlagNoAddBlock", i, in.CopyOut)
		}
	}
	lit := extractLiteral(old, new, res.Instructions)
	got := applyInstructions(old, res.Instructions, lit)
	if !bytes.Equal(got, new) {
		t.Fatalf("round-trip mismatch under noaddblk:\n got: %q\nwant: %q", got, new)
	}
}

func TestDiffModeAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	old := randomishText(r, 2000)
	new := mutate(r, old, 40)

	suffixRes, err := Diff(old, new, &DiffOptions{Mode: ModeSuffix, Instructions: true})
	if err != nil {
		t.Fatalf("Diff(ModeSuffix): %v", err)
	}
	hashRes, err := Diff(old, new, &DiffOptions{Mode: ModeHash, Instructions: true})
	if err != nil {
		t.Fatalf("Diff(ModeHash): %v", err)
	}

	for name, res := range map[string]*Result{"suffix": suffixRes, "hash": hashRes} {
		lit := extractLiteral(old, new, res.Instructions)
		got := applyInstructions(old, res.Instructions, lit)
		if !bytes.Equal(got, new) {
			t.Fatalf("%s: round-trip mismatch", name)
		}
	}
}

func TestDiffDeterministic(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	old := randomishText(r, 1500)
	new := mutate(r, old, 20)

	res1, err := Diff(old, new, &DiffOptions{Mode: ModeSuffix, Instructions: true})
	if err != nil {
		t.Fatalf("Diff (1st): %v", err)
	}
	res2, err := Diff(old, new, &DiffOptions{Mode: ModeSuffix, Instructions: true})
	if err != nil {
		t.Fatalf("Diff (2nd): %v", err)
	}
	if diff := cmp.Diff(res1.Instructions, res2.Instructions); diff != "" {
		t.Fatalf("instructions differ across identical runs (-first +second):\n%s", diff)
	}
}

func TestDiffWithLZOSinks(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	old := randomishText(r, 5000)
	new := mutate(r, old, 60)

	res, err := Diff(old, new, DefaultDiffOptions(ModeSuffix))
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if len(res.InstrBlock) == 0 {
		t.Error("expected non-empty compressed instruction block")
	}
	if len(res.AddBlock) == 0 {
		t.Error("expected non-empty compressed add block")
	}
}

func randomishText(r *rand.Rand, n int) []byte {
	words := []string{"the", "quick", "brown", "fox", "jumps", "over", "lazy", "dog", "and", "runs", "away", "again"}
	var buf bytes.Buffer
	for buf.Len() < n {
		buf.WriteString(words[r.Intn(len(words))])
		buf.WriteByte(' ')
	}
	return buf.Bytes()[:n]
}

func mutate(r *rand.Rand, src []byte, edits int) []byte {
	out := append([]byte(nil), src...)
	for i := 0; i < edits; i++ {
		if len(out) == 0 {
			break
		}
		pos := r.Intn(len(out))
		switch r.Intn(3) {
		case 0:
			out[pos] = byte(r.Intn(256))
		case 1:
			out = append(out[:pos], out[pos+1:]...)
		case 2:
			b := byte(r.Intn(256))
			out = append(out[:pos], append([]byte{b}, out[pos:]...)...)
		}
	}
	return out
}
