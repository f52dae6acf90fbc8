package assets

import (
	"encoding/binary"
	"testing"

	cfg "github.com/carlos2058/ganho/config"
)

func TestSynthesizeLength(t *testing.T) {
	tone := cfg.Tone{StartHz: 440, EndHz: 440, Duration: 0.1, Square: 0}
	pcm := Synthesize(tone, 44100)
	if want := 4410 * 4; len(pcm) != want {
		t.Fatalf("len = %d, want %d", len(pcm), want)
	}
}

func TestSynthesizeStereoAndDecay(t *testing.T) {
	tone := cfg.Tone{StartHz: 300, EndHz: 100, Duration: 0.05, Square: 1}
	pcm := Synthesize(tone, 8000)

	peakStart, peakEnd := 0, 0
	frames := len(pcm) / 4
	for i := 0; i < frames; i++ {
		l := int16(binary.LittleEndian.Uint16(pcm[i*4:]))
		r := int16(binary.LittleEndian.Uint16(pcm[i*4+2:]))
		if l != r {
			t.Fatalf("frame %d: left %d != right %d", i, l, r)
		}
		a := int(l)
		if a < 0 {
			a = -a
		}
		if i < frames/4 && a > peakStart {
			peakStart = a
		}
		if i > frames*3/4 && a > peakEnd {
			peakEnd = a
		}
	}
	if peakEnd >= peakStart {
		t.Fatalf("envelope does not decay: start peak %d, end peak %d", peakStart, peakEnd)
	}
}

func TestSynthesizeZeroDuration(t *testing.T) {
	if pcm := Synthesize(cfg.Tone{StartHz: 440, EndHz: 440}, 44100); pcm != nil {
		t.Fatalf("len = %d, want nil", len(pcm))
	}
}

func TestEveryCueHasATone(t *testing.T) {
	for id := cfg.SoundShot; id <= cfg.SoundStart; id++ {
		tone, ok := cfg.Sound.Tones[id]
		if !ok {
			t.Fatalf("sound %d has no tone", id)
		}
		if tone.Duration <= 0 {
			t.Fatalf("sound %d duration = %v, want > 0", id, tone.Duration)
		}
	}
}
