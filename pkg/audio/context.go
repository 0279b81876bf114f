// ABOUTME: Playback context state machine
// ABOUTME: One voice with a fixed ring of buffer slots and format state
package audio

// Context is one playback voice. Its zero value is a closed context; Init
// opens it against the compiled-in driver. All methods must be called from a
// single goroutine.
//
// A context moves through closed -> open -> configured -> playing. Queueing
// requires a free buffer slot, and slots are only reclaimed by Poll, so a
// caller that stops polling eventually starves the context.
type Context struct {
	drv driver
	v   voice

	count      int // buffer slots reserved by Init; 0 while closed
	channels   int
	sampleRate int // effective rate, already adjusted for playback rate
	volume     int
}

// Init reserves a voice with the given number of buffer slots, up to
// MaxBuffers. The driver engine is brought up lazily on first use; if it is
// unavailable the context stays closed and ErrNotSupported is returned.
// A context always opens at full volume, regardless of any SetVolume made
// while it was closed.
func (c *Context) Init(buffers int) error {
	if buffers <= 0 || buffers > MaxBuffers {
		return ErrInvalidArgument
	}
	if c.v != nil {
		return ErrInvalidArgument
	}

	if c.drv == nil {
		c.drv = current
	}
	if !c.drv.init() {
		return ErrNotSupported
	}

	v, err := c.drv.newVoice(buffers)
	if err != nil {
		return err
	}
	c.v = v
	c.count = buffers
	c.volume = 100
	return nil
}

// SetFormat configures channel count and sample rate, with the playback rate
// folded into the effective rate. Setting the format the context already has
// is a cheap no-op; otherwise drivers that bind format to the device tear it
// down and recreate it, which is the expensive path.
func (c *Context) SetFormat(channels, sampleRate, playbackRate int) error {
	if c.v == nil {
		return ErrInvalidArgument
	}
	if channels != 1 && channels != 2 {
		return ErrInvalidArgument
	}

	adjusted := AdjustedSampleRate(sampleRate, playbackRate)
	if channels == c.channels && adjusted == c.sampleRate {
		return nil
	}
	c.channels = channels
	c.sampleRate = adjusted
	return c.v.setFormat(channels, adjusted)
}

// SetVolume sets playback volume as a percentage. Drivers without native
// gain control scale samples in software on each queued chunk instead.
// Volume applies to the currently open voice; on a closed context it has no
// lasting effect, since Init resets volume to 100.
func (c *Context) SetVolume(volume int) {
	if volume < 0 {
		volume = 0
	}
	if volume > 100 {
		volume = 100
	}
	c.volume = volume
	if c.v != nil {
		c.v.setVolume(volume)
	}
}

// QueueChunk hands one chunk of PCM to the driver. Fails with
// ErrInvalidArgument when no buffer slot is free, which means the caller
// didn't Poll first; the context state is unchanged in that case.
func (c *Context) QueueChunk(samples []int16) error {
	if c.v == nil {
		return ErrInvalidArgument
	}
	return c.v.queueChunk(samples)
}

// Play starts or resumes consumption of queued chunks. Idempotent while
// already playing.
func (c *Context) Play() error {
	if c.v == nil {
		return ErrInvalidArgument
	}
	return c.v.play()
}

// Pause suspends consumption without discarding queued chunks.
func (c *Context) Pause() error {
	if c.v == nil {
		return ErrInvalidArgument
	}
	return c.v.pause()
}

// Poll reclaims buffer slots the driver has finished with and returns how
// many are still in flight. Non-blocking, and safe on a closed context.
func (c *Context) Poll() (int, error) {
	if c.v == nil {
		return 0, nil
	}
	return c.v.poll()
}

// Close stops playback and releases the voice, discarding anything still in
// flight. Idempotent.
func (c *Context) Close() {
	if c.v != nil {
		c.v.close()
		c.v = nil
	}
	c.count = 0
	c.channels = 0
	c.sampleRate = 0
}

// fastPlay reports whether data can play on this context without the
// expensive device-recreation path.
func (c *Context) fastPlay(d *Data) bool {
	if c.v == nil {
		return false
	}
	return c.v.fastPlay(d.Channels, d.adjustedRate())
}
