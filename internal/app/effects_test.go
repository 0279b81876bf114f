// ABOUTME: Sound effect loading tests
// ABOUTME: Round-trips generated WAV files through the decoder
package app

import (
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeTestWAV writes a small 16-bit PCM WAV file and returns its path.
func writeTestWAV(t *testing.T, channels, sampleRate int, data []int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("creating test WAV: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("writing test WAV: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("closing test WAV: %v", err)
	}
	return path
}

func TestLoadWAVFile(t *testing.T) {
	data := []int{0, 1000, -1000, 32767, -32768, 42}
	path := writeTestWAV(t, 1, 22050, data)

	sound, err := LoadWAVFile(path)
	if err != nil {
		t.Fatalf("LoadWAVFile failed: %v", err)
	}

	if sound.Channels != 1 {
		t.Errorf("Channels = %d, want 1", sound.Channels)
	}
	if sound.SampleRate != 22050 {
		t.Errorf("SampleRate = %d, want 22050", sound.SampleRate)
	}
	if sound.Rate != 100 || sound.Volume != 100 {
		t.Errorf("defaults Rate=%d Volume=%d, want 100/100", sound.Rate, sound.Volume)
	}
	if len(sound.Samples) != len(data) {
		t.Fatalf("got %d samples, want %d", len(sound.Samples), len(data))
	}
	for i, want := range data {
		if int(sound.Samples[i]) != want {
			t.Errorf("sample %d = %d, want %d", i, sound.Samples[i], want)
		}
	}
}

func TestLoadWAVFileStereo(t *testing.T) {
	path := writeTestWAV(t, 2, 44100, []int{1, 2, 3, 4, 5, 6})

	sound, err := LoadWAVFile(path)
	if err != nil {
		t.Fatalf("LoadWAVFile failed: %v", err)
	}
	if sound.Channels != 2 || sound.SampleRate != 44100 {
		t.Errorf("got %dch/%dHz, want 2ch/44100Hz", sound.Channels, sound.SampleRate)
	}
}

func TestLoadWAVRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.wav")
	if err := os.WriteFile(path, []byte("definitely not a wav"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadWAVFile(path); err == nil {
		t.Fatal("expected an error for a non-WAV file")
	}
}

func TestSamplesFromInts(t *testing.T) {
	got := samplesFromInts([]int{0, -1, 32767, -32768})
	want := []int16{0, -1, 32767, -32768}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("samplesFromInts = %v, want %v", got, want)
		}
	}
}
