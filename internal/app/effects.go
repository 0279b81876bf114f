// ABOUTME: Sound effect loading
// ABOUTME: Decodes WAV files into playable PCM data
package app

import (
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"

	"github.com/quarrycraft/quarrycraft-go/pkg/audio"
)

// LoadWAV decodes a 16-bit PCM WAV stream into a playable sound effect.
func LoadWAV(r io.ReadSeeker) (*audio.Data, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("decoding WAV: %w", err)
	}
	if dec.BitDepth != 16 {
		return nil, fmt.Errorf("unsupported WAV bit depth %d, want 16", dec.BitDepth)
	}
	if buf.Format.NumChannels != 1 && buf.Format.NumChannels != 2 {
		return nil, fmt.Errorf("unsupported WAV channel count %d", buf.Format.NumChannels)
	}

	return &audio.Data{
		Samples:    samplesFromInts(buf.Data),
		Channels:   buf.Format.NumChannels,
		SampleRate: buf.Format.SampleRate,
		Rate:       100,
		Volume:     100,
	}, nil
}

// LoadWAVFile loads a sound effect from disk.
func LoadWAVFile(path string) (*audio.Data, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return LoadWAV(f)
}

// samplesFromInts narrows decoder output to the 16-bit samples drivers take.
func samplesFromInts(data []int) []int16 {
	samples := make([]int16, len(data))
	for i, s := range data {
		samples[i] = int16(s)
	}
	return samples
}
