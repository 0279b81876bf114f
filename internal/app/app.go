// ABOUTME: Playback demo application orchestration
// ABOUTME: Wires the context pool, sound effects and streaming music together
package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/quarrycraft/quarrycraft-go/pkg/audio"
)

// Config holds playback demo configuration.
type Config struct {
	SoundPath string  // WAV sound effect, played through the pool
	MusicPath string  // MP3 track, streamed on a dedicated context
	Volume    int     // 0-100
	Rate      int     // playback rate percent for the sound effect
	Repeat    int     // how many times to fire the sound effect
	ToneFreq  float64 // synthesized tone frequency when no sound file is given
	Interval  time.Duration
}

// App runs a playback session: repeated one-shot effects over the shared
// pool, with optional music streaming alongside.
type App struct {
	config Config
	pool   *audio.Pool
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new playback session.
func New(config Config) *App {
	ctx, cancel := context.WithCancel(context.Background())
	return &App{
		config: config,
		pool:   audio.NewPool(),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Start runs the session until it finishes or Stop is called.
func (a *App) Start() error {
	if !audio.Init() {
		return fmt.Errorf("no audio driver available")
	}
	defer audio.Shutdown()
	defer a.pool.Close()

	sound, err := a.loadSound()
	if err != nil {
		return err
	}

	musicDone := make(chan error, 1)
	if a.config.MusicPath != "" {
		f, err := os.Open(a.config.MusicPath)
		if err != nil {
			return fmt.Errorf("opening music: %w", err)
		}
		go func() {
			defer f.Close()
			musicDone <- StreamMusic(a.ctx, f, a.config.Volume)
		}()
	} else {
		musicDone <- nil
	}

	for i := 0; i < a.config.Repeat; i++ {
		if err := a.pool.Play(sound); err != nil {
			if msg, ok := audio.DescribeError(err); ok {
				log.Printf("Sound playback failed: %s", msg)
			} else {
				log.Printf("Sound playback failed: %v", err)
			}
		}

		select {
		case <-a.ctx.Done():
			return nil
		case <-time.After(a.config.Interval):
		}
	}

	// Let the last effect drain before the pool is torn down.
	select {
	case <-a.ctx.Done():
		return nil
	case <-time.After(soundDuration(sound)):
	}

	select {
	case err := <-musicDone:
		if err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	case <-a.ctx.Done():
	}
	return nil
}

// Stop cancels the session. Start returns shortly after.
func (a *App) Stop() {
	a.cancel()
}

func (a *App) loadSound() (*audio.Data, error) {
	var sound *audio.Data
	if a.config.SoundPath != "" {
		s, err := LoadWAVFile(a.config.SoundPath)
		if err != nil {
			return nil, err
		}
		sound = s
	} else {
		sound = GenerateTone(a.config.ToneFreq, 250*time.Millisecond)
	}
	sound.Volume = a.config.Volume
	sound.Rate = a.config.Rate
	return sound, nil
}

// soundDuration is the wall-clock length of one play request, with the
// playback rate folded in.
func soundDuration(d *audio.Data) time.Duration {
	if d.Channels <= 0 {
		return 0
	}
	frames := len(d.Samples) / d.Channels
	rate := audio.AdjustedSampleRate(d.SampleRate, d.Rate)
	if rate <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(rate)
}
