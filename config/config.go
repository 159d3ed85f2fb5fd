package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every entity is created on.
const Default ecs.LayerID = iota

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// ArenaConfig controls the playfield and its collision grid
type ArenaConfig struct {
	MapPath      string  // TMX file inside the embedded maps directory
	CellSize     int     // resolv cell size in pixels
	CullMargin   float64 // entities further than this outside the bounds are pruned; keep above SpawnMargin plus half an enemy
	SpawnMargin  float64 // distance outside the bounds enemies appear at
	EdgeFraction float64 // spawn band keeps at least this fraction away from corners
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Health    int
	MoveSpeed float64 // units per tick at full joystick deflection

	// Shooting
	FireCooldown     float64 // seconds between shots before power-up modifiers
	ProjectileDamage int

	// Dimensions
	Size            float64 // visual square, used for bounds clamping
	CollisionWidth  float64
	CollisionHeight float64
}

// EnemyConfig contains enemy system configuration
type EnemyConfig struct {
	MaxSpeed       float64 // hard cap on per-tick movement regardless of level
	RotationFactor float64 // fraction of the angular difference closed each tick

	// Session ramp, independent of the difficulty level
	SpawnInterval    float64
	SpawnDecay       float64
	MinSpawnInterval float64
	ShotInterval     float64
	ShotDecay        float64
	MinShotInterval  float64
	ShotChance       float64

	ProjectileDamage int

	// Dimensions
	Size            float64
	CollisionWidth  float64
	CollisionHeight float64
}

// ProjectileConfig contains projectile movement and sizing
type ProjectileConfig struct {
	Speed  float64
	Width  float64
	Height float64
}

// DifficultyConfig parameterizes the level curve and the adaptive adjustment
type DifficultyConfig struct {
	// Level derivation
	ScorePerLevel   int
	SecondsPerLevel float64
	KillsPerLevel   int

	// Base values at level 1
	BaseSpawnInterval float64
	BaseShotInterval  float64
	BaseEnemySpeed    float64
	BaseEnemyHealth   int
	BaseEnemyDamage   int
	BaseMaxEnemies    int

	// Per-level scaling
	SpawnStep        float64 // fraction faster per level
	ShotStep         float64
	SpeedStep        float64
	HealthPerLevel   int
	DamagePerLevel   int
	LevelsPerEnemy   int // one more concurrent enemy every N levels
	MinSpawnInterval float64
	MinShotInterval  float64
	MaxEnemySpeed    float64
	MaxEnemyDamage   int
	MaxEnemies       int

	// Scoring
	KillScore         int
	ComboStep         float64
	MaxCombo          float64
	SurvivalPerSecond int

	// Adaptive adjustment
	AdaptiveInterval float64 // seconds between performance checks
	ExpectedKillRate float64 // kills per second considered on par
	HighPerformance  float64
	LowPerformance   float64
	FasterFactor     float64
	SlowerFactor     float64
}

// PowerUpConfig contains power-up effects, lifetime and spawn pacing
type PowerUpConfig struct {
	HealAmount int

	RapidFireDuration    float64
	RapidFireRate        float64
	RapidFireExtraDamage float64
	ShieldDuration       float64
	ShieldReduction      float64

	Lifetime float64 // seconds an uncollected power-up stays on the field
	Size     float64

	Weights map[PowerUpType]int

	// Spawn pacing
	InitialDelay     float64
	MinInterval      float64
	MaxInterval      float64
	MinIntervalFloor float64
	MaxIntervalFloor float64

	// Placement
	Placement   PlacementMode
	MinDistance float64
	MaxDistance float64
	EdgeMargin  float64
	Regions     []Rect // fallback regions when the arena map defines none

	// Tween timings (seconds)
	PopDuration    float64
	SettleDuration float64
	PulseDuration  float64
	PulseScale     float64
}

// EffectsConfig contains visual feedback timings in frames
type EffectsConfig struct {
	FlashDuration int
	BurstDuration int
	BurstRadius   float64
	BannerFrames  int
	PopupFrames   int
}

// UIConfig holds HUD layout and colors
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64

	HealthBarBgColor color.RGBA
	HealthBarFgColor color.RGBA
	ShieldColor      color.RGBA
	RapidFireColor   color.RGBA
	TextColor        color.RGBA
	BackgroundColor  color.RGBA
	GridColor        color.RGBA
}

// PersistenceConfig names the storage application and item keys
type PersistenceConfig struct {
	AppName      string
	HighScoreKey string
	GameStateKey string
	SettingsKey  string

	// Shown at start when a saved game can be loaded
	ContinueBanner string
}

// Rect is an axis-aligned rectangle in arena coordinates
type Rect struct {
	X, Y, W, H float64
}

// Global configuration instances
var C *Config
var Arena ArenaConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Projectile ProjectileConfig
var Difficulty DifficultyConfig
var PowerUp PowerUpConfig
var Effects EffectsConfig
var UI UIConfig
var Persistence PersistenceConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Cyan         = color.RGBA{R: 0, G: 220, B: 255, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Arena = ArenaConfig{
		MapPath:      "maps/arena.tmx",
		CellSize:     32,
		CullMargin:   100,
		SpawnMargin:  50,
		EdgeFraction: 0.1,
	}

	Player = PlayerConfig{
		Health:    100,
		MoveSpeed: 4.0,

		FireCooldown:     0.25,
		ProjectileDamage: 20,

		Size:            32,
		CollisionWidth:  20,
		CollisionHeight: 20,
	}

	Enemy = EnemyConfig{
		MaxSpeed:       4.0,
		RotationFactor: 0.05,

		SpawnInterval:    2.0,
		SpawnDecay:       0.98,
		MinSpawnInterval: 0.8,
		ShotInterval:     1.5,
		ShotDecay:        0.99,
		MinShotInterval:  0.5,
		ShotChance:       0.5,

		ProjectileDamage: 20,

		Size:            24,
		CollisionWidth:  16,
		CollisionHeight: 16,
	}

	Projectile = ProjectileConfig{
		Speed:  8.0,
		Width:  8,
		Height: 12,
	}

	Difficulty = DifficultyConfig{
		ScorePerLevel:   100,
		SecondsPerLevel: 30,
		KillsPerLevel:   10,

		BaseSpawnInterval: 2.0,
		BaseShotInterval:  1.5,
		BaseEnemySpeed:    1.5,
		BaseEnemyHealth:   40,
		BaseEnemyDamage:   20,
		BaseMaxEnemies:    2,

		SpawnStep:        0.15,
		ShotStep:         0.12,
		SpeedStep:        0.25,
		HealthPerLevel:   10,
		DamagePerLevel:   3,
		LevelsPerEnemy:   2,
		MinSpawnInterval: 0.3,
		MinShotInterval:  0.4,
		MaxEnemySpeed:    8.0,
		MaxEnemyDamage:   40,
		MaxEnemies:       10,

		KillScore:         10,
		ComboStep:         0.1,
		MaxCombo:          3.0,
		SurvivalPerSecond: 2,

		AdaptiveInterval: 10,
		ExpectedKillRate: 0.5,
		HighPerformance:  1.5,
		LowPerformance:   0.5,
		FasterFactor:     0.9,
		SlowerFactor:     1.05,
	}

	PowerUp = PowerUpConfig{
		HealAmount: 30,

		RapidFireDuration:    10,
		RapidFireRate:        1.5,
		RapidFireExtraDamage: 0.5,
		ShieldDuration:       15,
		ShieldReduction:      1.0,

		Lifetime: 15,
		Size:     30,

		Weights: map[PowerUpType]int{
			PowerUpHealthBoost: 3,
			PowerUpRapidFire:   2,
			PowerUpShield:      1,
		},

		InitialDelay:     8,
		MinInterval:      4,
		MaxInterval:      12,
		MinIntervalFloor: 2,
		MaxIntervalFloor: 4,

		Placement:   PlacementAroundPlayer,
		MinDistance: 150,
		MaxDistance: 400,
		EdgeMargin:  50,
		Regions: []Rect{
			{X: 80, Y: 80, W: 640, H: 100},
			{X: 80, Y: 420, W: 640, H: 100},
			{X: 80, Y: 180, W: 120, H: 240},
			{X: 600, Y: 180, W: 120, H: 240},
		},

		PopDuration:    0.15,
		SettleDuration: 0.1,
		PulseDuration:  0.8,
		PulseScale:     1.1,
	}

	Effects = EffectsConfig{
		FlashDuration: 6,
		BurstDuration: 18,
		BurstRadius:   22,
		BannerFrames:  90,
		PopupFrames:   40,
	}

	UI = UIConfig{
		HealthBarWidth:  160,
		HealthBarHeight: 12,
		Margin:          12,

		HealthBarBgColor: color.RGBA{R: 40, G: 40, B: 40, A: 255},
		HealthBarFgColor: color.RGBA{R: 40, G: 220, B: 40, A: 255},
		ShieldColor:      LightBlue,
		RapidFireColor:   Orange,
		TextColor:        White,
		BackgroundColor:  color.RGBA{R: 12, G: 12, B: 24, A: 255},
		GridColor:        color.RGBA{R: 28, G: 28, B: 48, A: 255},
	}

	Persistence = PersistenceConfig{
		AppName:        "pixelstrike",
		HighScoreKey:   "highscore",
		GameStateKey:   "gamestate",
		SettingsKey:    "settings",
		ContinueBanner: "F9 TO CONTINUE",
	}
}

// Seconds converts a duration in seconds to whole simulation ticks.
func Seconds(s float64) int {
	return int(s*float64(C.TPS) + 0.5)
}
