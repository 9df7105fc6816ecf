package bsdelta

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestLZOSinkRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(5))
	data := randomishText(r, 8192)

	sink := NewLZOSink()
	if err := sink.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	// Write in several chunks to exercise buffering across calls.
	for i := 0; i < len(data); i += 777 {
		end := i + 777
		if end > len(data) {
			end = len(data)
		}
		if err := sink.Write(data[i:end]); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	compressed, err := sink.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if len(compressed) == 0 {
		t.Fatal("expected non-empty compressed output")
	}

	decompressed, err := lzoBlockSource(compressed, len(data))
	if err != nil {
		t.Fatalf("lzoBlockSource: %v", err)
	}
	if !bytes.Equal(decompressed, data) {
		t.Fatal("round-trip mismatch")
	}
}

func TestLZOSinkEmptyInput(t *testing.T) {
	sink := NewLZOSink()
	if err := sink.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	compressed, err := sink.Finish()
	if err != nil {
		t.Fatalf("Finish on empty sink: %v", err)
	}
	decompressed, err := lzoBlockSource(compressed, 0)
	if err != nil {
		t.Fatalf("lzoBlockSource: %v", err)
	}
	if len(decompressed) != 0 {
		t.Errorf("expected empty output, got %d bytes", len(decompressed))
	}
}

func TestPooledLZOSink(t *testing.T) {
	sink := AcquirePooledLZOSink()
	if err := sink.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if err := sink.Write([]byte("pooled sink contents")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if _, err := sink.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	ReleasePooledLZOSink(sink)

	sink2 := AcquirePooledLZOSink()
	if err := sink2.Init(); err != nil {
		t.Fatalf("Init (reused): %v", err)
	}
	if err := sink2.Write([]byte("second use")); err != nil {
		t.Fatalf("Write (reused): %v", err)
	}
	out, err := sink2.Finish()
	if err != nil {
		t.Fatalf("Finish (reused): %v", err)
	}
	if len(out) == 0 {
		t.Fatal("expected non-empty compressed output on reused sink")
	}
	ReleasePooledLZOSink(sink2)
}
