package game

import (
	"math"
	"math/rand"
	"time"
)

// Spawner releases one bubble per interval and makes every Nth bubble golden,
// with N re-rolled from [GoldenMinCadence, GoldenMaxCadence] after each golden.
type Spawner struct {
	rng      *rand.Rand
	interval time.Duration
	last     time.Duration

	count     int
	threshold int
	roll      func() int
}

func NewSpawner(rng *rand.Rand) *Spawner {
	s := &Spawner{rng: rng, interval: BubbleSpawnInterval}
	s.roll = func() int {
		return GoldenMinCadence + rng.Intn(GoldenMaxCadence-GoldenMinCadence+1)
	}
	s.threshold = s.roll()
	return s
}

// Reset restarts the interval at now and draws a fresh golden threshold.
func (s *Spawner) Reset(now time.Duration) {
	s.last = now
	s.count = 0
	s.threshold = s.roll()
}

// Shift moves the last spawn time forward, used when resuming from pause.
func (s *Spawner) Shift(d time.Duration) { s.last += d }

func (s *Spawner) LastSpawn() time.Duration { return s.last }

// Spawn returns a new bubble once more than the interval has passed since the
// previous one. The radial distance is uniform in radius, not in area, so
// bubbles cluster toward the center.
func (s *Spawner) Spawn(now time.Duration, arena Arena) (Bubble, bool) {
	if now-s.last <= s.interval {
		return Bubble{}, false
	}
	angle := s.rng.Float64() * 2 * math.Pi
	r := s.rng.Float64() * (arena.Radius - BubbleSpawnMargin)

	golden := false
	s.count++
	if s.count >= s.threshold {
		golden = true
		s.count = 0
		s.threshold = s.roll()
	}

	drift, minR, maxR := BubbleDrift, BubbleMinRadius, BubbleMaxRadius
	if golden {
		drift, minR, maxR = GoldenDrift, GoldenMinRadius, GoldenMaxRadius
	}
	b := Bubble{
		Pos:       arena.Center.Add(polar(angle, r)),
		Vel:       Vec{s.uniform(-drift, drift), s.uniform(-drift, drift)},
		Radius:    minR + s.rng.Intn(maxR-minR+1),
		SpawnTime: now,
		Golden:    golden,
	}
	s.last = now
	return b, true
}

func (s *Spawner) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
