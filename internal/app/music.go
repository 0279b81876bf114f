// ABOUTME: Streaming music playback
// ABOUTME: Feeds MP3 audio through a dedicated context chunk by chunk
package app

import (
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"time"

	mp3 "github.com/hajimehoshi/go-mp3"

	"github.com/quarrycraft/quarrycraft-go/pkg/audio"
)

// musicChunkMs is how much audio one buffer slot holds.
const musicChunkMs = 200

// StreamMusic plays an MP3 stream to completion, or until ctx is cancelled.
// It owns a dedicated playback context with the full ring of buffer slots,
// refilling slots round-robin as the driver drains them. Chunks may be
// submitted by reference, so a slot is only rewritten once Poll reports it
// free again.
func StreamMusic(ctx context.Context, r io.Reader, volume int) error {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return fmt.Errorf("opening MP3 stream: %w", err)
	}

	var mctx audio.Context
	if err := mctx.Init(audio.MaxBuffers); err != nil {
		return err
	}
	defer mctx.Close()

	// go-mp3 always emits stereo 16-bit little-endian PCM.
	const channels = 2
	sampleRate := dec.SampleRate()
	if err := mctx.SetFormat(channels, sampleRate, 100); err != nil {
		return err
	}
	mctx.SetVolume(volume)

	chunkSamples := sampleRate * channels * musicChunkMs / 1000
	chunks, err := audio.AllocChunks(chunkSamples, audio.MaxBuffers)
	if err != nil {
		return err
	}
	defer audio.FreeChunks(chunks)

	raw := make([]byte, chunkSamples*2)
	next := 0 // oldest slot, the next one to refill
	drained := false

	for {
		inUse, err := mctx.Poll()
		if err != nil {
			return fmt.Errorf("polling music context: %w", err)
		}

		for !drained && inUse < audio.MaxBuffers {
			n, rerr := readChunk(dec, raw)
			if n > 0 {
				chunk := chunks[next]
				decodeSamples(raw[:n], chunk)
				if err := mctx.QueueChunk(chunk[:n/2]); err != nil {
					return fmt.Errorf("queueing music chunk: %w", err)
				}
				next = (next + 1) % audio.MaxBuffers
				inUse++
			}
			if rerr != nil {
				if rerr != io.EOF {
					return fmt.Errorf("decoding MP3: %w", rerr)
				}
				drained = true
			}
		}

		if err := mctx.Play(); err != nil {
			return err
		}
		if drained && inUse == 0 {
			return nil
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(musicChunkMs * time.Millisecond / 4):
		}
	}
}

// readChunk reads up to len(buf) bytes. A short read at the end of the stream
// still delivers its bytes, with io.EOF reported on the same call. The count
// is truncated to whole samples.
func readChunk(r io.Reader, buf []byte) (int, error) {
	n, err := io.ReadFull(r, buf)
	if err == io.ErrUnexpectedEOF {
		err = io.EOF
	}
	return n &^ 1, err
}

// decodeSamples unpacks little-endian PCM bytes into out.
func decodeSamples(raw []byte, out []int16) {
	for i := 0; i < len(raw)/2; i++ {
		out[i] = int16(binary.LittleEndian.Uint16(raw[i*2:]))
	}
}
