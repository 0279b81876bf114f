// ABOUTME: Test tone synthesis
// ABOUTME: Generates sine wave PCM so playback works without asset files
package app

import (
	"math"
	"time"

	"github.com/quarrycraft/quarrycraft-go/pkg/audio"
)

const toneSampleRate = 22050

// GenerateTone synthesizes a mono sine wave at the given frequency.
func GenerateTone(freq float64, duration time.Duration) *audio.Data {
	n := int(toneSampleRate * duration.Seconds())
	samples := make([]int16, n)

	// Quarter amplitude keeps the raw sine comfortable on headphones.
	const amplitude = math.MaxInt16 / 4
	step := 2 * math.Pi * freq / toneSampleRate
	for i := range samples {
		samples[i] = int16(amplitude * math.Sin(step*float64(i)))
	}

	return &audio.Data{
		Samples:    samples,
		Channels:   1,
		SampleRate: toneSampleRate,
		Rate:       100,
		Volume:     100,
	}
}
