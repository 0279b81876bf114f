// ABOUTME: Inert fallback driver
// ABOUTME: Compiled in when no native audio API is available or audio is disabled
//go:build noaudio || (!cgo && !oto)

package audio

var current driver = nullDriver{}

// nullDriver is the no-audio fallback: Init reports failure and every
// operation is refused, so the rest of the game runs silently.
type nullDriver struct{}

func (nullDriver) init() bool { return false }

func (nullDriver) tick() {}

func (nullDriver) shutdown() {}

func (nullDriver) describeError(err error) (string, bool) { return "", false }

func (nullDriver) newVoice(buffers int) (voice, error) { return nil, ErrNotSupported }

func (nullDriver) allocChunks(size, count int) ([][]int16, error) { return nil, ErrNotSupported }

func (nullDriver) freeChunks(chunks [][]int16) {}
