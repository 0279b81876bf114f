// ABOUTME: Playback driver on the oto library, selected with -tags oto
// ABOUTME: Single shared engine context with one oto player per voice
//go:build oto && !noaudio && (!portaudio || !cgo)

package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/ebitengine/oto/v3"
)

var current driver = &otoDriver{}

// otoDriver plays through oto. oto permits exactly one context per process,
// so the engine is created lazily by the first SetFormat and that format
// sticks: later voices asking for a different format keep the engine format
// and play at the wrong pitch rather than failing, with a warning logged.
// Volume is applied natively per player, not in software.
type otoDriver struct {
	mu         sync.Mutex
	engine     *oto.Context
	channels   int
	sampleRate int
}

// init defers engine creation to the first SetFormat, since oto needs the
// stream format up front. There is nothing to load that can fail here.
func (d *otoDriver) init() bool { return true }

func (d *otoDriver) tick() {}

// shutdown suspends the engine; oto contexts cannot be destroyed.
func (d *otoDriver) shutdown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine == nil {
		return
	}
	if err := d.engine.Suspend(); err != nil {
		log.Printf("Suspending oto context: %v", err)
	}
}

func (d *otoDriver) describeError(err error) (string, bool) { return "", false }

func (d *otoDriver) newVoice(buffers int) (voice, error) {
	v := &otoVoice{drv: d, volume: 100}
	v.initSlots(buffers)
	// oto pulls through Read whenever the player is running; the playing
	// gate lives in the player, not the slot ring.
	v.playing = true
	return v, nil
}

func (d *otoDriver) allocChunks(size, count int) ([][]int16, error) {
	_, chunks := allocChunks(size, count, 1)
	return chunks, nil
}

func (d *otoDriver) freeChunks(chunks [][]int16) {
	for i := range chunks {
		chunks[i] = nil
	}
}

// ensureEngine creates the process-wide oto context on first use.
func (d *otoDriver) ensureEngine(channels, sampleRate int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine != nil {
		if d.channels != channels || d.sampleRate != sampleRate {
			log.Printf("oto supports one format per process; keeping %dch/%dHz, requested %dch/%dHz",
				d.channels, d.sampleRate, channels, sampleRate)
		}
		return nil
	}

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channels,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return fmt.Errorf("creating oto context: %w", err)
	}
	<-ready

	d.engine = ctx
	d.channels = channels
	d.sampleRate = sampleRate
	return nil
}

// otoVoice feeds a persistent oto player from the shared slot ring via Read.
// Chunks are submitted by reference and become free once Read has fully
// copied them out.
type otoVoice struct {
	mixerVoice
	drv    *otoDriver
	player *oto.Player
	volume int
}

func (v *otoVoice) setFormat(channels, sampleRate int) error {
	v.setFormatState(channels, sampleRate)
	if err := v.drv.ensureEngine(channels, sampleRate); err != nil {
		return err
	}
	if v.player == nil {
		v.player = v.drv.engine.NewPlayer(v)
		// Volume set before the player existed must stick, zero included.
		v.player.SetVolume(float64(v.volume) / 100)
	}
	return nil
}

func (v *otoVoice) setVolume(volume int) {
	v.volume = volume
	if v.player != nil {
		v.player.SetVolume(float64(volume) / 100)
	}
}

func (v *otoVoice) queueChunk(samples []int16) error {
	if v.player == nil {
		return ErrInvalidArgument
	}
	// The ring's own volume stays at 100: scaling is the player's job here.
	return v.mixerVoice.queueChunk(samples)
}

func (v *otoVoice) play() error {
	if v.player == nil {
		return ErrInvalidArgument
	}
	if !v.player.IsPlaying() {
		v.player.Play()
	}
	return nil
}

func (v *otoVoice) pause() error {
	if v.player == nil {
		return ErrInvalidArgument
	}
	v.player.Pause()
	return nil
}

// Read hands queued PCM to the oto player, zero-filling on underrun so the
// player never starves between effect bursts.
func (v *otoVoice) Read(p []byte) (int, error) {
	n := len(p) &^ 1
	v.fillBytes(p[:n])
	return n, nil
}

// fastPlay: the engine format is process-wide, so only a matching request
// avoids the wrong-pitch fallback.
func (v *otoVoice) fastPlay(channels, sampleRate int) bool {
	v.drv.mu.Lock()
	defer v.drv.mu.Unlock()
	if v.drv.engine == nil {
		return true
	}
	return v.drv.channels == channels && v.drv.sampleRate == sampleRate
}

func (v *otoVoice) close() {
	if v.player != nil {
		_ = v.player.Close()
		v.player = nil
	}
	v.reset()
}
