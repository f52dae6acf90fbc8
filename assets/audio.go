package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/carlos2058/ganho/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects and caches the PCM per sound.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered audio bytes for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = Synthesize(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the sound each time.
// SFX are cached as rendered bytes for instant playback.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	player, err := l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
	if err != nil {
		return nil, fmt.Errorf("failed to create player for sound %d: %w", id, err)
	}
	return player, nil
}

// Synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// audio.Context players read.
func Synthesize(tone cfg.Tone, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n*4)

	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		sine := math.Sin(phase)
		square := 1.0
		if sine < 0 {
			square = -1
		}
		v := (sine*(1-tone.Square) + square*tone.Square) * (1 - t)

		s := int16(v * math.MaxInt16 * 0.8)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
