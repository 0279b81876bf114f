// ABOUTME: Session helper tests
// ABOUTME: Tone synthesis and playback duration math
package app

import (
	"testing"
	"time"

	"github.com/quarrycraft/quarrycraft-go/pkg/audio"
)

func TestGenerateTone(t *testing.T) {
	tone := GenerateTone(440, 250*time.Millisecond)

	if tone.Channels != 1 {
		t.Errorf("Channels = %d, want 1", tone.Channels)
	}
	if tone.SampleRate != toneSampleRate {
		t.Errorf("SampleRate = %d, want %d", tone.SampleRate, toneSampleRate)
	}
	if want := toneSampleRate / 4; len(tone.Samples) != want {
		t.Errorf("got %d samples, want %d", len(tone.Samples), want)
	}

	// A sine must swing both ways and stay inside the reduced amplitude.
	var min, max int16
	for _, s := range tone.Samples {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	if max <= 0 || min >= 0 {
		t.Errorf("tone does not oscillate: min %d, max %d", min, max)
	}
	if max > 8192 || min < -8192 {
		t.Errorf("tone exceeds quarter amplitude: min %d, max %d", min, max)
	}
}

func TestSoundDuration(t *testing.T) {
	tests := []struct {
		name  string
		sound *audio.Data
		want  time.Duration
	}{
		{
			"mono one second",
			&audio.Data{Samples: make([]int16, 22050), Channels: 1, SampleRate: 22050, Rate: 100},
			time.Second,
		},
		{
			"stereo halves the frame count",
			&audio.Data{Samples: make([]int16, 22050), Channels: 2, SampleRate: 22050, Rate: 100},
			500 * time.Millisecond,
		},
		{
			"double speed halves the duration",
			&audio.Data{Samples: make([]int16, 22050), Channels: 1, SampleRate: 22050, Rate: 200},
			500 * time.Millisecond,
		},
		{
			"degenerate",
			&audio.Data{Samples: nil, Channels: 1, SampleRate: 22050, Rate: 100},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := soundDuration(tt.sound); got != tt.want {
				t.Errorf("soundDuration = %v, want %v", got, tt.want)
			}
		})
	}
}
