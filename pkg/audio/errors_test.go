// ABOUTME: Tests for the error taxonomy
// ABOUTME: Sentinel descriptions and unknown-error handling
package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestDescribeErrorSentinels(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{ErrInvalidArgument, "Invalid argument"},
		{ErrNotSupported, "Audio is not supported"},
		{ErrOutOfMemory, "Out of memory"},
		{ErrNoAudioOutput, "No audio output device"},
	}

	for _, tt := range tests {
		msg, ok := DescribeError(tt.err)
		if !ok {
			t.Errorf("DescribeError(%v) not recognized", tt.err)
			continue
		}
		if msg != tt.want {
			t.Errorf("DescribeError(%v) = %q, want %q", tt.err, msg, tt.want)
		}
	}
}

func TestDescribeErrorWrapped(t *testing.T) {
	wrapped := fmt.Errorf("opening device: %w", ErrNoAudioOutput)
	msg, ok := DescribeError(wrapped)
	if !ok || msg != "No audio output device" {
		t.Fatalf("DescribeError(wrapped) = (%q, %v)", msg, ok)
	}
}

func TestDescribeErrorUnknown(t *testing.T) {
	if msg, ok := DescribeError(errors.New("something else")); ok {
		t.Fatalf("unexpected description %q for unknown error", msg)
	}
	if _, ok := DescribeError(nil); ok {
		t.Fatal("nil error should not be described")
	}
}
