// ABOUTME: Driver-independent base routines shared by multiple drivers
// ABOUTME: Software volume scaling and contiguous chunk allocation
package audio

// applyVolume scales 16-bit samples in place by an integer percentage.
// Unrolled in groups of eight with a remainder loop. No clamping: inputs are
// int16 and volume never exceeds 100, so results stay in range.
func applyVolume(samples []int16, volume int) {
	i := 0
	for n := len(samples) &^ 0x07; i < n; i += 8 {
		s := samples[i : i+8 : i+8]
		s[0] = int16(int(s[0]) * volume / 100)
		s[1] = int16(int(s[1]) * volume / 100)
		s[2] = int16(int(s[2]) * volume / 100)
		s[3] = int16(int(s[3]) * volume / 100)

		s[4] = int16(int(s[4]) * volume / 100)
		s[5] = int16(int(s[5]) * volume / 100)
		s[6] = int16(int(s[6]) * volume / 100)
		s[7] = int16(int(s[7]) * volume / 100)
	}

	for ; i < len(samples); i++ {
		samples[i] = int16(int(samples[i]) * volume / 100)
	}
}

// volumeScratch holds the reusable buffer for drivers without native volume
// control. It grows to the largest chunk seen and never shrinks.
type volumeScratch struct {
	buf []int16
}

// adjusted returns samples scaled to the given volume. At full volume the
// caller's buffer is returned unmodified; below that the samples are copied
// into the scratch buffer and scaled there, since the caller's buffer must
// never be mutated.
func (vs *volumeScratch) adjusted(samples []int16, volume int) []int16 {
	if volume >= 100 {
		return samples
	}
	if cap(vs.buf) < len(samples) {
		vs.buf = make([]int16, len(samples))
	}
	out := vs.buf[:len(samples)]
	copy(out, samples)
	applyVolume(out, volume)
	return out
}

func (vs *volumeScratch) reset() {
	vs.buf = nil
}

// allocChunks carves count equally sized chunks out of one contiguous backing
// slice, so releasing them is a single deallocation. size is in samples and
// is rounded up to align when a driver needs padded chunks.
func allocChunks(size, count, align int) (backing []int16, chunks [][]int16) {
	if align > 1 {
		size = (size + align - 1) &^ (align - 1)
	}
	backing = make([]int16, size*count)
	chunks = make([][]int16, count)
	for i := range chunks {
		chunks[i] = backing[i*size : (i+1)*size : (i+1)*size]
	}
	return backing, chunks
}
