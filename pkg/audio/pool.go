// ABOUTME: Fixed pool of reusable playback contexts for one-shot sounds
// ABOUTME: Two-pass selection preferring contexts that avoid device recreation
package audio

// Pool is a fixed set of contexts serving transient one-shot sound effects.
// Contexts are created lazily on first use. Music should not go through a
// pool; it gets a dedicated Context so effect contention can never evict it.
//
// A Pool is driven from a single goroutine, normally the game's audio
// update loop.
type Pool struct {
	drv      driver
	contexts [poolContexts]Context
}

// NewPool returns an empty pool bound to the compiled-in driver.
func NewPool() *Pool { return &Pool{} }

// Play selects a context and starts the sound on it.
//
// The first pass only accepts an idle context whose configured format already
// matches the sound, skipping the expensive device-recreation path. The
// second pass takes any idle context and eats the recreation cost. When every
// context is busy the sound is dropped without error: losing an effect under
// load is expected, surfacing it as a failure is not.
func (p *Pool) Play(d *Data) error {
	for i := range p.contexts {
		ctx := &p.contexts[i]
		if ctx.count == 0 {
			ctx.drv = p.drv
			if err := ctx.Init(1); err != nil {
				return err
			}
		}

		inUse, err := ctx.Poll()
		if err != nil {
			return err
		}
		if inUse > 0 {
			continue
		}

		if !ctx.fastPlay(d) {
			continue
		}
		return playData(ctx, d)
	}

	for i := range p.contexts {
		ctx := &p.contexts[i]
		inUse, err := ctx.Poll()
		if err != nil {
			return err
		}
		if inUse > 0 {
			continue
		}

		return playData(ctx, d)
	}
	return nil
}

// Close closes every pooled context. Called once at shutdown.
func (p *Pool) Close() {
	for i := range p.contexts {
		p.contexts[i].Close()
	}
}

func playData(ctx *Context, d *Data) error {
	ctx.SetVolume(d.Volume)

	if err := ctx.SetFormat(d.Channels, d.SampleRate, d.Rate); err != nil {
		return err
	}
	if err := ctx.QueueChunk(d.Samples); err != nil {
		return err
	}
	return ctx.Play()
}
