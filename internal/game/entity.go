package game

import (
	"image/color"
	"time"
)

var (
	BubbleColor = color.RGBA{0, 200, 255, 255}
	GoldenColor = color.RGBA{255, 215, 0, 255}
	TrailColor  = color.RGBA{255, 255, 255, 255}
)

// Chaser is the ball that pursues the cursor. It is recreated on every reset.
type Chaser struct {
	Pos   Vec
	Vel   Vec
	Speed float64 // multiplier applied when integrating position

	ImmunityEnd time.Duration // no cursor collision before this time
	LastBounce  time.Duration // sound cooldown only
}

type Bubble struct {
	Pos        Vec
	Vel        Vec
	Radius     int
	SpawnTime  time.Duration
	Golden     bool
	LastBounce time.Duration
}

func (b Bubble) Color() color.RGBA {
	if b.Golden {
		return GoldenColor
	}
	return BubbleColor
}

// Points awarded for popping the bubble. Smaller bubbles are worth more.
func (b Bubble) Points() int { return (PointsBase - b.Radius) / 2 }

// SpeedBoost is added to the chaser speed when the bubble is popped.
func (b Bubble) SpeedBoost() float64 {
	return float64(PointsBase-b.Radius) / PointsBase * PopBoostScale
}

// ExplosionParticle is debris from the chaser blowing up. Particles live until
// the next reset.
type ExplosionParticle struct {
	Pos        Vec
	Vel        Vec
	Radius     int
	Color      color.RGBA
	LastBounce time.Duration
}

type PopParticle struct {
	Pos   Vec
	Vel   Vec
	Color color.RGBA
	Life  int
}

type TrailParticle struct {
	Pos   Vec
	Life  int
	Size  int
	Color color.RGBA
}

// Alpha fades the trail from opaque to transparent over its life.
func (t TrailParticle) Alpha() uint8 {
	a := t.Life * 255 / TrailLife
	if a < 0 {
		return 0
	}
	if a > 255 {
		return 255
	}
	return uint8(a)
}
