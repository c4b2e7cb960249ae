package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the layer every entity and renderer lives on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int
}

// PhysicsConfig contains physics-related configuration values.
// Distances are pixels, times are seconds, Y grows downward.
type PhysicsConfig struct {
	Gravity      float64 // px/s², multiplied by each body's gravity scale
	MaxFallSpeed float64
	FixedDelta   float64 // seconds per physics tick

	// Ground probe: circle centred GroundCheckOffset below the feet
	GroundCheckOffset float64
	GroundCheckRadius float64

	// Wall probes: rays from the body centre, reaching this far past the edge
	WallCheckDistance float64

	SpaceCellSize int
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveSpeed    float64
	Acceleration float64

	// Jumping
	JumpForce      float64
	CoyoteTime     float64
	JumpBufferTime float64
	GravityScale   float64
	FallMultiplier float64
	ShortHopFactor float64 // vertical speed kept when jump is released early

	// Wall jump
	WallSlideSpeed        float64
	WallJumpForceX        float64
	WallJumpForceY        float64
	WallJumpTime          float64
	WallJumpIntoWallScale float64 // horizontal scale when holding into the wall

	// Dashing
	DashForce    float64
	DashDuration float64
	DashCooldown float64

	// Health
	MaxHealth      int
	IFrameDuration float64

	// Dimensions
	CollisionWidth  float64
	CollisionHeight float64
}

// ZoneRect is an attack hitbox relative to the player's centre. OffsetX is
// mirrored by the facing direction.
type ZoneRect struct {
	OffsetX, OffsetY float64
	W, H             float64
}

// CombatConfig contains combat-related configuration values
type CombatConfig struct {
	AttackDuration float64
	AttackCooldown float64
	ZoneThreshold  float64 // vertical input needed for an up/down attack
	Damage         int

	Zones map[AttackZone]ZoneRect

	// Enemy reaction to player hits
	EnemyHitCooldown  float64
	EnemyHitKnockback float64
	EnemyFlashTime    float64
}

// RespawnConfig drives the hazard death-respawn sequence.
type RespawnConfig struct {
	FadeOutDuration float64
	PauseDuration   float64
	FadeInDuration  float64
	HazardDamage    int
}

// ArenaConfig contains wave director pacing and texts.
type ArenaConfig struct {
	FirstCountdown       int     // whole seconds shown before the first wave
	FightDuration        float64 // how long "Fight!" stays up
	SetupCountdown       float64 // before waves after the first
	HazardSetupCountdown float64 // same, for hazardous layouts
	RestCountdown        float64
	DefeatReloadDelay    float64

	DefaultSpawnInterval float64
	DefaultPreWaveDelay  float64

	PlatformThickness float64

	TutorialText       string
	FirstCountdownText string
	FightText          string
	NextWaveText       string
	NextWaveHazardText string
	RestText           string
	DefeatText         string
	VictoryText        string
}

// EnemyKindConfig holds the values every enemy kind has. Behaviour
// parameters live in the per-variant structs of EnemyConfig.
type EnemyKindConfig struct {
	Name           string
	Kind           EnemyKind
	Health         int
	ContactDamage  int
	DamageCooldown float64 // seconds between contact hits on the player
	KnockbackForce float64 // impulse applied to the player on contact
	GravityScale   float64
	Width          float64
	Height         float64
	TintColor      color.RGBA
}

type CrawlerParams struct {
	MoveSpeed    float64
	LedgeProbe   float64 // ray length below the leading foot
	VisionRange  float64
	FlipCooldown float64
	StaggerTime  float64 // no steering after being hit
}

type LeaperParams struct {
	LeapCooldown   float64
	MinJumpTime    float64
	MaxJumpTime    float64
	JumpTimeScale  float64 // horizontal distance covered per second of flight
	VisionRange    float64
	WallCheck      float64
	WallAdjustTime float64
	RoamHopX       float64
	RoamHopY       float64
	RoamCooldown   float64
	StaggerTime    float64
}

type FlyerParams struct {
	FollowSpeed         float64
	StoppingDistance    float64
	BobAmplitude        float64
	BobFrequency        float64
	DashSpeed           float64
	DashCooldown        float64
	DashDuration        float64
	DashTriggerDistance float64
	DashWallProbe       float64
	GroundAvoidDistance float64
	ObstacleDistance    float64
	AvoidUpSpeed        float64
	AvoidLerp           float64
	KnockbackDuration   float64
	StuckSpeed          float64
	StuckProbe          float64
	UnstickSpeed        float64
}

type SlammerParams struct {
	DetectionRange float64
	LeapCooldown   float64
	ArcTime        float64 // whole jump, apex at half
	TrackSpeed     float64
	SlamSpeed      float64
}

// EnemyConfig contains enemy roster configuration
type EnemyConfig struct {
	Kinds map[string]EnemyKindConfig

	Crawler CrawlerParams
	Leaper  LeaperParams
	Flyer   FlyerParams
	Slammer SlammerParams
}

// MessageConfig contains message box configuration
type MessageConfig struct {
	BoxPadding float64
	BoxColor   color.RGBA
	TextColor  color.RGBA
	TopMargin  float64

	// Input labels for different input devices. Keyboard labels are built
	// from the live bindings.
	XboxLabels        map[string]string
	PlayStationLabels map[string]string
	OtherPadLabels    map[string]string
}

// HUDConfig contains HUD layout and colours
type HUDConfig struct {
	Margin        float64
	HeartSize     float64
	HeartGap      float64
	PulseDuration float64
	HeartColor    color.RGBA
	EmptyColor    color.RGBA
	TextColor     color.RGBA
}

// ColorConfig holds the flat colours used by the renderer.
type ColorConfig struct {
	Background color.RGBA
	Solid      color.RGBA
	Platform   color.RGBA
	SpikesOff  color.RGBA
	SpikesOn   color.RGBA
	Player     color.RGBA
	PlayerHurt color.RGBA
	EnemyHit   color.RGBA
	Zone       color.RGBA
	Fade       color.RGBA
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Combat CombatConfig
var Respawn RespawnConfig
var Arena ArenaConfig
var Enemy EnemyConfig
var Message MessageConfig
var HUD HUDConfig
var Colors ColorConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipTutorial bool
	Seed         uint64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

// Direction constants for facing
const (
	DirectionLeft  = -1
	DirectionRight = 1
)

// unit is one world unit (roughly a body width) in pixels.
const unit = 24.0

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Physics = PhysicsConfig{
		Gravity:      9.81 * unit,
		MaxFallSpeed: 30 * unit,
		FixedDelta:   1.0 / 60.0,

		GroundCheckOffset: 1,
		GroundCheckRadius: 3,
		WallCheckDistance: 0.1 * unit,

		SpaceCellSize: 8,
	}

	Player = PlayerConfig{
		MoveSpeed:    8 * unit,
		Acceleration: 10,

		JumpForce:      15 * unit,
		CoyoteTime:     0.2,
		JumpBufferTime: 0.2,
		GravityScale:   4,
		FallMultiplier: 2,
		ShortHopFactor: 0.5,

		WallSlideSpeed:        2 * unit,
		WallJumpForceX:        12 * unit,
		WallJumpForceY:        15 * unit,
		WallJumpTime:          0.2,
		WallJumpIntoWallScale: 0.3,

		DashForce:    20 * unit,
		DashDuration: 0.2,
		DashCooldown: 1,

		MaxHealth:      5,
		IFrameDuration: 1,

		CollisionWidth:  20,
		CollisionHeight: 28,
	}

	Combat = CombatConfig{
		AttackDuration: 0.2,
		AttackCooldown: 0.3,
		ZoneThreshold:  0.5,
		Damage:         1,

		Zones: map[AttackZone]ZoneRect{
			ZoneNeutral: {OffsetX: 24, OffsetY: 0, W: 28, H: 22},
			ZoneUp:      {OffsetX: 0, OffsetY: -28, W: 26, H: 28},
			ZoneDown:    {OffsetX: 0, OffsetY: 28, W: 26, H: 28},
		},

		EnemyHitCooldown:  0.5,
		EnemyHitKnockback: 1 * unit,
		EnemyFlashTime:    0.2,
	}

	Respawn = RespawnConfig{
		FadeOutDuration: 0.35,
		PauseDuration:   0.25,
		FadeInDuration:  0.35,
		HazardDamage:    1,
	}

	Arena = ArenaConfig{
		FirstCountdown:       5,
		FightDuration:        1,
		SetupCountdown:       3,
		HazardSetupCountdown: 5,
		RestCountdown:        5,
		DefeatReloadDelay:    3,

		DefaultSpawnInterval: 0.5,
		DefaultPreWaveDelay:  0.5,

		PlatformThickness: 8,

		TutorialText:       "{move} to Move\n{dash} to Dash\n{attack} to Attack\n\nPress {confirm} to start!",
		FirstCountdownText: "First wave begins in %d...",
		FightText:          "Fight!",
		NextWaveText:       "Next wave in %d...",
		NextWaveHazardText: "Next wave in %d...\nGet to the Platforms!",
		RestText:           "Rest countdown %d...",
		DefeatText:         "You were defeated!",
		VictoryText:        "All waves complete! You win!\nPress {confirm} to play again",
	}

	Enemy = EnemyConfig{
		Kinds: map[string]EnemyKindConfig{
			"caterpillar": {
				Name:           "caterpillar",
				Kind:           EnemyCrawler,
				Health:         3,
				ContactDamage:  1,
				DamageCooldown: 1,
				KnockbackForce: 5 * unit,
				GravityScale:   2,
				Width:          24,
				Height:         12,
				TintColor:      LightGreen,
			},
			"frog": {
				Name:           "frog",
				Kind:           EnemyLeaper,
				Health:         3,
				ContactDamage:  1,
				DamageCooldown: 1,
				KnockbackForce: 5 * unit,
				GravityScale:   2,
				Width:          20,
				Height:         16,
				TintColor:      Yellow,
			},
			"moth": {
				Name:           "moth",
				Kind:           EnemyFlyer,
				Health:         3,
				ContactDamage:  1,
				DamageCooldown: 1,
				KnockbackForce: 8 * unit,
				GravityScale:   0,
				Width:          18,
				Height:         14,
				TintColor:      Purple,
			},
			"toad_mother": {
				Name:           "toad_mother",
				Kind:           EnemySlammer,
				Health:         8,
				ContactDamage:  2,
				DamageCooldown: 1,
				KnockbackForce: 6 * unit,
				GravityScale:   2,
				Width:          40,
				Height:         30,
				TintColor:      Orange,
			},
		},

		Crawler: CrawlerParams{
			MoveSpeed:    2 * unit,
			LedgeProbe:   0.3 * unit,
			VisionRange:  5 * unit,
			FlipCooldown: 0.25,
			StaggerTime:  0.3,
		},
		Leaper: LeaperParams{
			LeapCooldown:   2,
			MinJumpTime:    0.3,
			MaxJumpTime:    1.0,
			JumpTimeScale:  5 * unit,
			VisionRange:    6 * unit,
			WallCheck:      0.5 * unit,
			WallAdjustTime: 0.5,
			RoamHopX:       2 * unit,
			RoamHopY:       6 * unit,
			RoamCooldown:   2,
			StaggerTime:    0.3,
		},
		Flyer: FlyerParams{
			FollowSpeed:         2 * unit,
			StoppingDistance:    1.5 * unit,
			BobAmplitude:        0.5 * unit,
			BobFrequency:        2,
			DashSpeed:           10 * unit,
			DashCooldown:        3,
			DashDuration:        0.3,
			DashTriggerDistance: 4 * unit,
			DashWallProbe:       0.5 * unit,
			GroundAvoidDistance: 1 * unit,
			ObstacleDistance:    1 * unit,
			AvoidUpSpeed:        2 * unit,
			AvoidLerp:           5,
			KnockbackDuration:   0.2,
			StuckSpeed:          0.1 * unit,
			StuckProbe:          0.3 * unit,
			UnstickSpeed:        2 * unit,
		},
		Slammer: SlammerParams{
			DetectionRange: 5 * unit,
			LeapCooldown:   4,
			ArcTime:        1.5,
			TrackSpeed:     5 * unit,
			SlamSpeed:      25 * unit,
		},
	}

	Message = MessageConfig{
		BoxPadding: 8.0,
		BoxColor:   color.RGBA{R: 0, G: 0, B: 0, A: 200},
		TextColor:  White,
		TopMargin:  40.0,

		XboxLabels: map[string]string{
			"move": "Left Stick", "jump": "A", "dash": "B",
			"attack": "X", "confirm": "A",
		},
		PlayStationLabels: map[string]string{
			"move": "Left Stick", "jump": "Cross", "dash": "Circle",
			"attack": "Square", "confirm": "Cross",
		},
		OtherPadLabels: map[string]string{
			"move": "Left Stick", "jump": "South Button", "dash": "East Button",
			"attack": "West Button", "confirm": "South Button",
		},
	}

	HUD = HUDConfig{
		Margin:        12,
		HeartSize:     10,
		HeartGap:      4,
		PulseDuration: 0.3,
		HeartColor:    LightRed,
		EmptyColor:    color.RGBA{R: 70, G: 30, B: 30, A: 255},
		TextColor:     White,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 18, G: 20, B: 30, A: 255},
		Solid:      color.RGBA{R: 90, G: 94, B: 110, A: 255},
		Platform:   color.RGBA{R: 150, G: 110, B: 70, A: 255},
		SpikesOff:  color.RGBA{R: 70, G: 30, B: 30, A: 255},
		SpikesOn:   color.RGBA{R: 220, G: 40, B: 40, A: 255},
		Player:     LightBlue,
		PlayerHurt: color.RGBA{R: 255, G: 0, B: 0, A: 128},
		EnemyHit:   Red,
		Zone:       color.RGBA{R: 255, G: 255, B: 255, A: 110},
		Fade:       color.RGBA{R: 0, G: 0, B: 0, A: 255},
	}

	Debug = DebugConfig{
		SkipTutorial: false,
	}
}
