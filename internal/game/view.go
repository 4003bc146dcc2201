package game

import (
	"time"

	"popper/internal/score"
)

// View is the read model for one frame. Slices share storage with the world
// and are only valid until the next Tick; renderers must not modify them.
type View struct {
	Arena Arena
	Phase Phase
	Mode  score.Mode
	Score int
	Best  int
	Now   time.Duration

	Muted     bool
	Autopilot bool
	Immune    bool

	Chaser    Chaser
	Cursor    Vec
	Bubbles   []Bubble
	Explosion []ExplosionParticle
	Pops      []PopParticle
	Trail     []TrailParticle
}

func (w *World) View() View {
	return View{
		Arena:     w.arena,
		Phase:     w.phase,
		Mode:      w.mode,
		Score:     w.scores.Current(w.mode),
		Best:      w.scores.Best(w.mode),
		Now:       w.now,
		Muted:     w.muted,
		Autopilot: w.autopilot,
		Immune:    w.immune(),
		Chaser:    w.chaser,
		Cursor:    w.cursor,
		Bubbles:   w.bubbles,
		Explosion: w.explosion,
		Pops:      w.pops,
		Trail:     w.trail,
	}
}

// ChaserFlash reports whether the chaser should be drawn in its light color.
// It blinks while immune.
func (v View) ChaserFlash() bool {
	return v.Immune && (v.Now/ImmunityFlashEvery)%2 == 0
}
