// ABOUTME: Playback driver on PortAudio, selected with -tags portaudio
// ABOUTME: Per-voice stream fed from the shared mixer slot ring
//go:build portaudio && cgo && !noaudio

package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gordonklaus/portaudio"
)

var current driver = &paDriver{}

// paDriver plays through PortAudio. Each voice owns a private stream opened
// at that voice's format; format changes close and reopen the stream.
// PortAudio has no per-stream gain, so volume goes through the software
// scaling path, and chunks are submitted by reference like the default
// miniaudio driver.
type paDriver struct {
	mu     sync.Mutex
	inited bool
	failed bool
}

func (d *paDriver) init() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.inited {
		return true
	}
	if d.failed {
		return false
	}
	if err := portaudio.Initialize(); err != nil {
		d.failed = true
		log.Printf("Failed to init PortAudio: %v. No audio will play.", err)
		return false
	}
	d.inited = true
	return true
}

func (d *paDriver) tick() {}

func (d *paDriver) shutdown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.inited {
		return
	}
	if err := portaudio.Terminate(); err != nil {
		log.Printf("Terminating PortAudio: %v", err)
	}
	d.inited = false
}

func (d *paDriver) describeError(err error) (string, bool) {
	if paErr, ok := err.(portaudio.Error); ok {
		return paErr.Error(), true
	}
	return "", false
}

func (d *paDriver) newVoice(buffers int) (voice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.inited {
		return nil, ErrNotSupported
	}
	v := &paVoice{}
	v.initSlots(buffers)
	return v, nil
}

func (d *paDriver) allocChunks(size, count int) ([][]int16, error) {
	_, chunks := allocChunks(size, count, 1)
	return chunks, nil
}

func (d *paDriver) freeChunks(chunks [][]int16) {
	for i := range chunks {
		chunks[i] = nil
	}
}

type paVoice struct {
	mixerVoice
	stream  *portaudio.Stream
	started bool
}

func (v *paVoice) setFormat(channels, sampleRate int) error {
	if !v.setFormatState(channels, sampleRate) && v.stream != nil {
		return nil
	}
	if v.stream != nil {
		if v.started {
			_ = v.stream.Stop()
			v.started = false
		}
		_ = v.stream.Close()
		v.stream = nil
	}

	stream, err := portaudio.OpenDefaultStream(0, channels, float64(sampleRate), 0,
		func(out []int16) {
			v.fill(out)
		})
	if err != nil {
		if _, derr := portaudio.DefaultOutputDevice(); derr != nil {
			return ErrNoAudioOutput
		}
		return fmt.Errorf("opening playback stream: %w", err)
	}
	v.stream = stream

	if v.isPlaying() {
		if err := stream.Start(); err != nil {
			return fmt.Errorf("restarting playback stream: %w", err)
		}
		v.started = true
	}
	return nil
}

func (v *paVoice) queueChunk(samples []int16) error {
	if v.stream == nil {
		return ErrInvalidArgument
	}
	return v.mixerVoice.queueChunk(samples)
}

func (v *paVoice) play() error {
	if v.stream == nil {
		return ErrInvalidArgument
	}
	v.setPlaying(true)
	if v.started {
		return nil
	}
	if err := v.stream.Start(); err != nil {
		return fmt.Errorf("starting playback stream: %w", err)
	}
	v.started = true
	return nil
}

func (v *paVoice) pause() error {
	if v.stream == nil {
		return ErrInvalidArgument
	}
	v.setPlaying(false)
	if !v.started {
		return nil
	}
	if err := v.stream.Stop(); err != nil {
		return fmt.Errorf("stopping playback stream: %w", err)
	}
	v.started = false
	return nil
}

func (v *paVoice) close() {
	if v.stream != nil {
		if v.started {
			_ = v.stream.Stop()
			v.started = false
		}
		_ = v.stream.Close()
		v.stream = nil
	}
	v.reset()
}
