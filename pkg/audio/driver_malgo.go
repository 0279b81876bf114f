// ABOUTME: Default playback driver on miniaudio via malgo
// ABOUTME: Per-voice playback device fed from the shared mixer slot ring
//go:build cgo && !noaudio && !oto && !portaudio

package audio

import (
	"fmt"
	"log"
	"sync"

	"github.com/gen2brain/malgo"
)

var current driver = &malgoDriver{}

// malgoDriver plays through miniaudio. The process-wide engine is a malgo
// context; each voice owns a private playback device opened at that voice's
// format, so a format change means closing and reopening the device.
//
// Chunks are submitted by reference: the device callback reads straight from
// the queued slice until Poll reports the slot free. miniaudio has no
// per-device gain here, so volume goes through the software scaling path.
type malgoDriver struct {
	mu     sync.Mutex
	engine *malgo.AllocatedContext
	failed bool
}

func (d *malgoDriver) init() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine != nil {
		return true
	}
	if d.failed {
		return false
	}

	engine, err := malgo.InitContext(nil, malgo.ContextConfig{}, nil)
	if err != nil {
		d.failed = true
		log.Printf("Failed to init miniaudio: %v. No audio will play.", err)
		return false
	}
	d.engine = engine
	return true
}

// tick is empty: miniaudio services its device queues on its own thread.
func (d *malgoDriver) tick() {}

func (d *malgoDriver) shutdown() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine == nil {
		return
	}
	_ = d.engine.Uninit()
	d.engine.Free()
	d.engine = nil
}

func (d *malgoDriver) describeError(err error) (string, bool) {
	// malgo errors already carry readable messages; nothing to translate.
	return "", false
}

func (d *malgoDriver) newVoice(buffers int) (voice, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.engine == nil {
		return nil, ErrNotSupported
	}
	v := &malgoVoice{drv: d}
	v.initSlots(buffers)
	return v, nil
}

func (d *malgoDriver) allocChunks(size, count int) ([][]int16, error) {
	_, chunks := allocChunks(size, count, 1)
	return chunks, nil
}

func (d *malgoDriver) freeChunks(chunks [][]int16) {
	for i := range chunks {
		chunks[i] = nil
	}
}

type malgoVoice struct {
	mixerVoice
	drv    *malgoDriver
	device *malgo.Device
}

func (v *malgoVoice) setFormat(channels, sampleRate int) error {
	if !v.setFormatState(channels, sampleRate) && v.device != nil {
		return nil
	}
	if v.device != nil {
		v.device.Uninit()
		v.device = nil
	}

	cfg := malgo.DefaultDeviceConfig(malgo.Playback)
	cfg.Playback.Format = malgo.FormatS16
	cfg.Playback.Channels = uint32(channels)
	cfg.SampleRate = uint32(sampleRate)
	cfg.Alsa.NoMMap = 1

	device, err := malgo.InitDevice(v.drv.engine.Context, cfg, malgo.DeviceCallbacks{
		Data: func(out, _ []byte, frameCount uint32) {
			v.fillBytes(out)
		},
	})
	if err != nil {
		return v.wrapOpenError(err)
	}
	v.device = device

	if v.isPlaying() {
		if err := device.Start(); err != nil {
			return fmt.Errorf("restarting playback device: %w", err)
		}
	}
	return nil
}

// wrapOpenError distinguishes "there is no output device at all" from a
// generic open failure so the caller can log something clearer than a
// miniaudio result code.
func (v *malgoVoice) wrapOpenError(err error) error {
	if infos, derr := v.drv.engine.Devices(malgo.Playback); derr == nil && len(infos) == 0 {
		return ErrNoAudioOutput
	}
	return fmt.Errorf("opening playback device: %w", err)
}

func (v *malgoVoice) queueChunk(samples []int16) error {
	if v.device == nil {
		return ErrInvalidArgument
	}
	return v.mixerVoice.queueChunk(samples)
}

func (v *malgoVoice) play() error {
	if v.device == nil {
		return ErrInvalidArgument
	}
	v.setPlaying(true)
	if v.device.IsStarted() {
		return nil
	}
	if err := v.device.Start(); err != nil {
		return fmt.Errorf("starting playback device: %w", err)
	}
	return nil
}

func (v *malgoVoice) pause() error {
	if v.device == nil {
		return ErrInvalidArgument
	}
	v.setPlaying(false)
	if !v.device.IsStarted() {
		return nil
	}
	if err := v.device.Stop(); err != nil {
		return fmt.Errorf("stopping playback device: %w", err)
	}
	return nil
}

func (v *malgoVoice) close() {
	if v.device != nil {
		if v.device.IsStarted() {
			_ = v.device.Stop()
		}
		v.device.Uninit()
		v.device = nil
	}
	v.reset()
}
