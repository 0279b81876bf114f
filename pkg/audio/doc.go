// ABOUTME: Audio playback package for the game client
// ABOUTME: Abstracts native sound APIs behind one uniform playback interface
// Package audio is the playback layer of the Quarrycraft client.
//
// It plays short one-shot sound effects and streamed music through whichever
// native audio API was compiled in (miniaudio by default, oto or PortAudio via
// build tags, or an inert null driver). Callers hand the package raw 16-bit
// PCM; decoding happens elsewhere.
//
// A Context is a single playback voice with a small ring of buffer slots.
// Callers must Poll a context periodically to reclaim slots the driver has
// finished with; QueueChunk fails when no slot is free. A Pool of eight
// contexts serves one-shot effects, while music streams through a dedicated
// Context owned by the caller.
//
// Example:
//
//	if !audio.Init() {
//		return // no audio for this process
//	}
//	defer audio.Shutdown()
//
//	pool := audio.NewPool()
//	defer pool.Close()
//
//	pool.Play(&audio.Data{
//		Samples:    pcm,
//		Channels:   2,
//		SampleRate: 44100,
//		Rate:       100,
//		Volume:     80,
//	})
package audio
