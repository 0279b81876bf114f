// ABOUTME: State-level oto driver tests
// ABOUTME: Exercises voice volume bookkeeping without opening a device
//go:build oto && !noaudio && (!portaudio || !cgo)

package audio

import "testing"

func TestOtoVoiceVolumeDefaultsToFull(t *testing.T) {
	d := &otoDriver{}
	v, err := d.newVoice(2)
	if err != nil {
		t.Fatalf("newVoice failed: %v", err)
	}

	ov := v.(*otoVoice)
	if ov.volume != 100 {
		t.Fatalf("fresh voice volume %d, want 100", ov.volume)
	}
}

func TestOtoVoiceVolumeZeroBeforePlayerSticks(t *testing.T) {
	d := &otoDriver{}
	v, err := d.newVoice(1)
	if err != nil {
		t.Fatalf("newVoice failed: %v", err)
	}

	// Volume is routinely set before the first setFormat creates the
	// player; zero must survive until then, not be mistaken for unset.
	ov := v.(*otoVoice)
	ov.setVolume(0)
	if ov.volume != 0 {
		t.Fatalf("stored volume %d, want 0", ov.volume)
	}

	ov.setVolume(60)
	if ov.volume != 60 {
		t.Fatalf("stored volume %d, want 60", ov.volume)
	}
}
