package config

import "image/color"

// Config holds the logical screen size. The arena fills the whole screen,
// so screen coordinates and simulation coordinates are the same space.
type Config struct {
	Width  int
	Height int
	Title  string
}

// ArenaConfig contains the play area configuration
type ArenaConfig struct {
	Width  float64
	Height float64

	// Broadphase space (resolv). The space is larger than the arena so enemies
	// spawned or chasing outside the visible bounds still get cells.
	SpaceMargin float64
	CellSize    int

	BackgroundColor color.RGBA
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed  float64
	Health float64

	// Collision radius used for clamping to the arena bounds
	Radius float64
	// Distance at which a hostile bullet registers a hit
	HitRadius float64

	ZoneDamage float64 // hp lost per tick outside the zone

	// Visual
	DrawRadius    float64
	AimLineLength float64
	Color         color.RGBA
	HitColor      color.RGBA
}

// WeaponConfig contains the player's gun configuration
type WeaponConfig struct {
	ClipSize        int
	StartingReserve int
	FireCooldown    int // ticks between shots
	ReloadTime      int // ticks until the clip is refilled

	BulletSpeed  float64
	BulletDamage float64
	BulletLife   int
	AimJitter    float64 // total spread in radians (±AimJitter/2)
	BulletColor  color.RGBA
	BulletRadius float64
}

// EnemyConfig contains enemy spawn, AI and gun configuration
type EnemyConfig struct {
	SpawnCount       int
	Health           float64
	MinSpawnDistance float64
	MaxSpawnDistance float64 // exclusive
	MinSpeed         float64
	MaxSpeed         float64 // exclusive

	// AI
	InitialShootWindow int     // first shot timer is drawn from [0, InitialShootWindow)
	ShootCooldownMin   int     // later timers are drawn from [Min, Max)
	ShootCooldownMax   int
	FireRange          float64 // must be strictly closer than this to shoot
	AimJitter          float64 // total spread in radians

	// Gun
	BulletSpeed  float64
	BulletDamage float64
	BulletLife   int
	BulletColor  color.RGBA

	// Collision
	Radius     float64 // broadphase body radius
	HitRadius  float64 // distance at which a friendly bullet registers a hit
	ZoneDamage float64

	// Visual
	Color          color.RGBA
	HealthBarWidth float64
	HealthBarH     float64
	HealthBarY     float64 // offset above the enemy centre
	HealthBarBg    color.RGBA
	HealthBarFg    color.RGBA
	HitColor       color.RGBA
}

// ZoneConfig contains the shrinking safe zone configuration
type ZoneConfig struct {
	InitialRadius float64
	MinRadius     float64
	ShrinkRate    float64 // radius lost per tick
	StrokeWidth   float32
	Color         color.RGBA
}

// ParticleConfig contains hit effect configuration
type ParticleConfig struct {
	BurstCount int
	MinSpeed   float64
	MaxSpeed   float64 // exclusive
	MinLife    int
	LifeSpread int // lifetime is MinLife + [0, LifeSpread)
	Damping    float64
	DrawRadius float64
}

// OverlayConfig contains the idle/defeat/victory banner configuration
type OverlayConfig struct {
	ShadeColor   color.RGBA
	TitleColor   color.RGBA
	HintColor    color.RGBA
	IdleTitle    string
	DefeatTitle  string
	VictoryTitle string
	Hint         string
	PausedTitle  string
	TitleOffsetY float64 // relative to the screen centre
	HintOffsetY  float64
	FadeDuration float32 // seconds
	SlideOffset  float32 // pixels the title slides up while fading in
}

// HUDConfig contains the status panel configuration
type HUDConfig struct {
	Padding         int
	Spacing         int
	FontSize        float64
	TextColor       color.RGBA
	BackgroundColor color.RGBA
	HealthFormat    string
	AmmoFormat      string
	EnemiesFormat   string
	ZoneFormat      string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Seed          int64 // 0 = time based
	ShowColliders bool
	Mute          bool
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Weapon WeaponConfig
var Enemy EnemyConfig
var Zone ZoneConfig
var Particles ParticleConfig
var Overlay OverlayConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 17, G: 17, B: 17, A: 255}
	Grass        = color.RGBA{R: 35, G: 95, B: 52, A: 255}
	ZoneGreen    = color.RGBA{R: 69, G: 185, B: 108, A: 230}
	PlayerBlue   = color.RGBA{R: 77, G: 171, B: 247, A: 255}
	EnemyPink    = color.RGBA{R: 255, G: 107, B: 129, A: 255}
	EnemyBarPink = color.RGBA{R: 255, G: 143, B: 163, A: 255}
	ShotYellow   = color.RGBA{R: 255, G: 221, B: 87, A: 255}
	HostileRed   = color.RGBA{R: 255, G: 123, B: 137, A: 255}
	SparkYellow  = color.RGBA{R: 255, G: 209, B: 102, A: 255}
	BloodRed     = color.RGBA{R: 255, G: 107, B: 107, A: 255}
	NightOverlay = color.RGBA{R: 3, G: 8, B: 16, A: 158}
	PanelShade   = color.RGBA{R: 0, G: 0, B: 0, A: 140}
)

func init() {
	C = &Config{
		Width:  960,
		Height: 640,
		Title:  "Mini FF Arena",
	}

	Arena = ArenaConfig{
		Width:           float64(C.Width),
		Height:          float64(C.Height),
		SpaceMargin:     128,
		CellSize:        32,
		BackgroundColor: Grass,
	}

	Player = PlayerConfig{
		Speed:         3,
		Health:        100,
		Radius:        15,
		HitRadius:     14,
		ZoneDamage:    0.12,
		DrawRadius:    14,
		AimLineLength: 20,
		Color:         PlayerBlue,
		HitColor:      BloodRed,
	}

	Weapon = WeaponConfig{
		ClipSize:        24,
		StartingReserve: 96,
		FireCooldown:    9,
		ReloadTime:      70,
		BulletSpeed:     8.8,
		BulletDamage:    26,
		BulletLife:      80,
		AimJitter:       0.06,
		BulletColor:     ShotYellow,
		BulletRadius:    3.5,
	}

	Enemy = EnemyConfig{
		SpawnCount:       8,
		Health:           55,
		MinSpawnDistance: 170,
		MaxSpawnDistance: 390,
		MinSpeed:         1.1,
		MaxSpeed:         1.7,

		InitialShootWindow: 120,
		ShootCooldownMin:   60,
		ShootCooldownMax:   120,
		FireRange:          420,
		AimJitter:          0.18,

		BulletSpeed:  5.8,
		BulletDamage: 8,
		BulletLife:   80,
		BulletColor:  HostileRed,

		Radius:     12,
		HitRadius:  13,
		ZoneDamage: 0.08,

		Color:          EnemyPink,
		HealthBarWidth: 28,
		HealthBarH:     4,
		HealthBarY:     20,
		HealthBarBg:    Black,
		HealthBarFg:    EnemyBarPink,
		HitColor:       SparkYellow,
	}

	Zone = ZoneConfig{
		InitialRadius: 280,
		MinRadius:     85,
		ShrinkRate:    0.04,
		StrokeWidth:   3,
		Color:         ZoneGreen,
	}

	Particles = ParticleConfig{
		BurstCount: 8,
		MinSpeed:   0.6,
		MaxSpeed:   2.6,
		MinLife:    20,
		LifeSpread: 12,
		Damping:    0.96,
		DrawRadius: 2.2,
	}

	Overlay = OverlayConfig{
		ShadeColor:   NightOverlay,
		TitleColor:   White,
		HintColor:    White,
		IdleTitle:    "Mini FF Arena",
		DefeatTitle:  "Eliminado",
		VictoryTitle: "Booyah!",
		Hint:         "Pressione ESPAÇO para jogar",
		PausedTitle:  "Pausado",
		TitleOffsetY: -18,
		HintOffsetY:  24,
		FadeDuration: 0.6,
		SlideOffset:  24,
	}

	HUD = HUDConfig{
		Padding:         8,
		Spacing:         18,
		FontSize:        16,
		TextColor:       White,
		BackgroundColor: PanelShade,
		HealthFormat:    "HP: %d",
		AmmoFormat:      "Munição: %d / %d",
		EnemiesFormat:   "Inimigos: %d",
		ZoneFormat:      "Zona: %d%%",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
