// ABOUTME: Playback error taxonomy
// ABOUTME: Sentinel errors shared by all drivers plus error description lookup
package audio

import "errors"

var (
	// ErrInvalidArgument indicates a caller protocol violation, most often
	// queueing a chunk without polling for a free buffer slot first.
	ErrInvalidArgument = errors.New("audio: invalid argument")

	// ErrNotSupported is returned for every operation once the compiled-in
	// driver failed to initialize, and by the null driver always.
	ErrNotSupported = errors.New("audio: not supported")

	// ErrOutOfMemory indicates a buffer allocation request that cannot be
	// satisfied.
	ErrOutOfMemory = errors.New("audio: out of memory")

	// ErrNoAudioOutput means no output device is present at all, as opposed
	// to a generic failure opening one.
	ErrNoAudioOutput = errors.New("audio: no audio output device")
)

// DescribeError translates a playback error into a human-readable string for
// logging. The driver gets first crack at its own error codes; the shared
// sentinels are described here. Returns false when the error is unrecognized,
// which callers must not treat as fatal.
func DescribeError(err error) (string, bool) {
	if err == nil {
		return "", false
	}
	if msg, ok := current.describeError(err); ok {
		return msg, true
	}

	switch {
	case errors.Is(err, ErrInvalidArgument):
		return "Invalid argument", true
	case errors.Is(err, ErrNotSupported):
		return "Audio is not supported", true
	case errors.Is(err, ErrOutOfMemory):
		return "Out of memory", true
	case errors.Is(err, ErrNoAudioOutput):
		return "No audio output device", true
	}
	return "", false
}
