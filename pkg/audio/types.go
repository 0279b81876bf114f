// ABOUTME: Core playback types and constants
// ABOUTME: Defines Data play requests and buffer-slot limits
package audio

const (
	// MaxBuffers is the largest number of buffer slots a Context may hold.
	MaxBuffers = 4

	// poolContexts is the number of reusable contexts serving one-shot sounds.
	poolContexts = 8
)

// Data is one play request: raw interleaved 16-bit PCM plus its format.
//
// The subsystem never mutates Samples. Some drivers submit by reference
// rather than by copy, so Samples must stay valid (and unmodified) until
// Poll reports the corresponding buffer slot free again.
type Data struct {
	Samples    []int16
	Channels   int // 1 or 2
	SampleRate int // Hz
	Rate       int // playback rate percent, 100 = normal speed
	Volume     int // 0-100
}

// AdjustedSampleRate returns the effective sample rate for a playback rate.
// Faster playback is achieved by submitting samples at a higher rate.
func AdjustedSampleRate(sampleRate, playbackRate int) int {
	return sampleRate * playbackRate / 100
}

func (d *Data) adjustedRate() int {
	return AdjustedSampleRate(d.SampleRate, d.Rate)
}
