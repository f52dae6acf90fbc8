package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Combat sounds
	SoundShot
	SoundEnemyShot
	SoundHit
	SoundPlayerHit
	SoundReload
	// Outcome sounds
	SoundVictory
	SoundDefeat
	// UI sounds
	SoundStart
)

// Tone describes a synthesized sound effect: a square/sine blend that sweeps
// from StartHz to EndHz over Duration seconds with a linear decay envelope.
type Tone struct {
	StartHz  float64
	EndHz    float64
	Duration float64
	Square   float64 // 0 = pure sine, 1 = pure square
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.35,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundShot:      {StartHz: 880, EndHz: 440, Duration: 0.06, Square: 0.7},
			SoundEnemyShot: {StartHz: 520, EndHz: 300, Duration: 0.07, Square: 0.5},
			SoundHit:       {StartHz: 220, EndHz: 90, Duration: 0.09, Square: 0.9},
			SoundPlayerHit: {StartHz: 160, EndHz: 70, Duration: 0.12, Square: 1},
			SoundReload:    {StartHz: 300, EndHz: 600, Duration: 0.15, Square: 0.3},
			SoundVictory:   {StartHz: 523, EndHz: 1046, Duration: 0.6, Square: 0.2},
			SoundDefeat:    {StartHz: 392, EndHz: 98, Duration: 0.8, Square: 0.4},
			SoundStart:     {StartHz: 440, EndHz: 660, Duration: 0.12, Square: 0.2},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundEnemyShot: 0.5,
			SoundHit:       1.2,
		},
	}
}
