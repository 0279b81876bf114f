// ABOUTME: Backend driver contract and package-level driver operations
// ABOUTME: Exactly one driver implementation is compiled in via build tags
package audio

// driver is the contract every native audio backend implements. Exactly one
// implementation is compiled into a binary; the build tags on the driver_*.go
// files select it. The process-wide engine handle lives inside the driver,
// created by init and released by shutdown.
type driver interface {
	// init lazily brings up the native engine/device, exactly once. It is
	// idempotent and logs a warning on the first failure, after which the
	// driver stays inert for the rest of the process.
	init() bool

	// tick is a per-frame maintenance hook. Callback-driven drivers have
	// nothing to service here.
	tick()

	// shutdown releases the engine. Safe to call without init, or twice.
	shutdown()

	// describeError translates driver-specific error values. ok is false
	// for errors the driver does not recognize.
	describeError(err error) (msg string, ok bool)

	// newVoice reserves a playback voice with the given number of buffer
	// slots. Fails with ErrNotSupported when the driver is inert.
	newVoice(buffers int) (voice, error)

	// allocChunks and freeChunks manage driver-appropriate PCM buffer
	// memory for callers that reuse chunks across many submissions.
	allocChunks(size, count int) ([][]int16, error)
	freeChunks(chunks [][]int16)
}

// voice is one native playback channel: a bound set of buffer slots plus
// format and volume state. Voices are driven by a single caller goroutine;
// any synchronization with a driver service thread or data callback is the
// voice's own business.
type voice interface {
	setFormat(channels, sampleRate int) error
	setVolume(volume int)
	queueChunk(samples []int16) error
	play() error
	pause() error
	poll() (inUse int, err error)
	fastPlay(channels, sampleRate int) bool
	close()
}

// Init brings up the compiled-in driver. Idempotent; returns false when the
// native engine is unavailable, in which case all playback is a no-op for
// the rest of the process.
func Init() bool { return current.init() }

// Tick runs periodic driver maintenance. Call once per frame.
func Tick() { current.tick() }

// Shutdown releases the driver engine. Safe to call even if Init failed or
// was never called.
func Shutdown() { current.shutdown() }

// AllocChunks allocates count equally sized PCM chunks (size is in samples)
// backed by a single contiguous allocation, padded however the driver needs.
func AllocChunks(size, count int) ([][]int16, error) {
	if size <= 0 || count <= 0 {
		return nil, ErrInvalidArgument
	}
	return current.allocChunks(size, count)
}

// FreeChunks releases chunks returned by AllocChunks.
func FreeChunks(chunks [][]int16) {
	if len(chunks) == 0 {
		return
	}
	current.freeChunks(chunks)
}
