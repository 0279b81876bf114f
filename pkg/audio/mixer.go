// ABOUTME: Shared voice core for callback-driven drivers
// ABOUTME: Bounded slot ring between the caller and the device data callback
package audio

import (
	"encoding/binary"
	"sync"
)

type slotState uint8

const (
	slotFree   slotState = iota
	slotQueued           // holds PCM the callback has not fully consumed
	slotDone             // fully consumed, waiting for poll to reclaim
)

type mixerSlot struct {
	state   slotState
	samples []int16
	pos     int // samples already consumed by the callback

	// scratch is per slot: a scaled chunk must stay intact until the
	// callback finishes it, even while later slots are being queued.
	scratch volumeScratch
}

// mixerVoice is the driver-independent half of a callback-driven voice: a
// bounded ring of PCM slots shared between the caller goroutine and the
// device data callback. The mutex covers everything the callback touches.
//
// Chunks are submitted by reference. When volume is below 100 the samples
// are first copied into the slot's scratch buffer and scaled there; the
// caller's buffer is never written to either way.
type mixerVoice struct {
	mu    sync.Mutex
	slots []mixerSlot
	head  int // oldest occupied slot
	used  int // occupied (queued or done) slots

	channels   int
	sampleRate int
	volume     int
	playing    bool

	mix []int16 // byte-callback staging, touched only on the device thread
}

func (v *mixerVoice) initSlots(buffers int) {
	v.slots = make([]mixerSlot, buffers)
	v.volume = 100
}

// setFormatState records the new format and reports whether it differs from
// the current one, i.e. whether the driver must recreate its device.
func (v *mixerVoice) setFormatState(channels, sampleRate int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	changed := v.channels != channels || v.sampleRate != sampleRate
	v.channels = channels
	v.sampleRate = sampleRate
	return changed
}

func (v *mixerVoice) setVolume(volume int) {
	v.mu.Lock()
	v.volume = volume
	v.mu.Unlock()
}

func (v *mixerVoice) queueChunk(samples []int16) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.used == len(v.slots) {
		// tried to queue data without polling for free buffers first
		return ErrInvalidArgument
	}
	s := &v.slots[(v.head+v.used)%len(v.slots)]
	s.samples = s.scratch.adjusted(samples, v.volume)
	s.pos = 0
	s.state = slotQueued
	v.used++
	return nil
}

func (v *mixerVoice) setPlaying(playing bool) {
	v.mu.Lock()
	v.playing = playing
	v.mu.Unlock()
}

func (v *mixerVoice) isPlaying() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.playing
}

func (v *mixerVoice) poll() (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for v.used > 0 {
		s := &v.slots[v.head]
		if s.state != slotDone {
			break
		}
		s.state = slotFree
		s.samples = nil
		s.pos = 0
		v.head = (v.head + 1) % len(v.slots)
		v.used--
	}
	return v.used, nil
}

func (v *mixerVoice) fastPlay(channels, sampleRate int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.channels == 0 || (v.channels == channels && v.sampleRate == sampleRate)
}

// fill drains queued slots into out, zero-filling on underrun or while not
// playing. Called from the device data callback.
func (v *mixerVoice) fill(out []int16) {
	v.mu.Lock()
	defer v.mu.Unlock()

	n := 0
	if v.playing {
		for i := 0; i < v.used && n < len(out); i++ {
			s := &v.slots[(v.head+i)%len(v.slots)]
			if s.state != slotQueued {
				continue
			}
			c := copy(out[n:], s.samples[s.pos:])
			s.pos += c
			n += c
			if s.pos == len(s.samples) {
				s.state = slotDone
			}
		}
	}
	for ; n < len(out); n++ {
		out[n] = 0
	}
}

// fillBytes is fill for drivers whose callback hands out raw little-endian
// bytes. The staging buffer persists across callbacks to keep the audio
// thread allocation-free once warm.
func (v *mixerVoice) fillBytes(out []byte) {
	n := len(out) / 2
	if cap(v.mix) < n {
		v.mix = make([]int16, n)
	}
	buf := v.mix[:n]
	v.fill(buf)
	for i, s := range buf {
		binary.LittleEndian.PutUint16(out[i*2:], uint16(s))
	}
}

// reset returns the voice to its closed state, discarding queued slots and
// their scratch buffers.
func (v *mixerVoice) reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.slots {
		v.slots[i] = mixerSlot{}
	}
	v.head = 0
	v.used = 0
	v.channels = 0
	v.sampleRate = 0
	v.playing = false
}
