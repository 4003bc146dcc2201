package game

import "time"

// Arena geometry (screen pixels).
const (
	ScreenW      = 800
	ScreenH      = 800
	ArenaCenterX = 400.0
	ArenaCenterY = 400.0
	ArenaRadius  = 350.0
	CursorRadius = 5.0
)

// Chaser.
const (
	ChaserRadius       = 30.0
	ChaserWallMargin   = 20.0 // chaser center stays within ArenaRadius - ChaserWallMargin
	ChaserStartSpeed   = 1.5
	ChaserAccel        = 0.6
	ChaserDamping      = 0.95
	ChaserHitDistance  = 20.0
	ChaserBounceVolume = 0.3
	GoldenSlowdown     = 0.7
	PopBoostScale      = 0.5
	ImmunityDuration   = 2000 * time.Millisecond
	ImmunityFlashEvery = 200 * time.Millisecond
	ChaserBounceCool   = 200 * time.Millisecond
)

// Bubbles.
const (
	BubbleSpawnInterval = 1000 * time.Millisecond
	BubbleLifespan      = 5000 * time.Millisecond
	BubbleSpawnMargin   = 30.0
	BubbleBounceCool    = 300 * time.Millisecond
	BubbleBounceVolume  = 0.2
	BubbleMinRadius     = 10
	BubbleMaxRadius     = 25
	BubbleDrift         = 0.5
	GoldenMinRadius     = 8
	GoldenMaxRadius     = 12
	GoldenDrift         = 1.0
	GoldenMinCadence    = 15
	GoldenMaxCadence    = 25
	PointsBase          = 30 // points = (PointsBase - radius) / 2
)

// Particles.
const (
	PopBurst              = 10
	PopLife               = 30
	PopMinSpeed           = 1.0
	PopMaxSpeed           = 3.0
	ExplosionBurst        = 300
	ExplosionMinSpeed     = 2.0
	ExplosionMaxSpeed     = 5.0
	ExplosionDrag         = 0.995
	ExplosionBounce       = 0.5 // velocity kept after a wall hit
	ExplosionSoundP       = 0.05
	ExplosionBounceCool   = 500 * time.Millisecond
	ExplosionBounceVolume = 0.1
	TrailLife             = 30
	TrailCap              = 100
	MutePreviewVolume     = 0.3
	MaxPopVolume          = 0.5
)
