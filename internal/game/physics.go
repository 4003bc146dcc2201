package game

import "popper/internal/score"

// aim picks the point the chaser steers toward and confines it to the arena.
// Under manual control the platform pointer is pulled back as well.
func (w *World) aim() {
	if w.phase != Playing {
		return
	}
	target := w.pointerPos
	if w.autopilot {
		if b, ok := w.nearestBubble(); ok {
			target = b.Pos
		}
	}
	if clamped, ok := w.arena.Clamp(target, CursorRadius); ok {
		target = clamped
		if !w.autopilot {
			w.pointer.Warp(target)
		}
	}
	w.cursor = target
}

// nearestBubble returns the bubble closest to the chaser. Ties go to the
// older bubble.
func (w *World) nearestBubble() (Bubble, bool) {
	if len(w.bubbles) == 0 {
		return Bubble{}, false
	}
	best := 0
	bestD := dist(w.bubbles[0].Pos, w.chaser.Pos)
	for i := 1; i < len(w.bubbles); i++ {
		if d := dist(w.bubbles[i].Pos, w.chaser.Pos); d < bestD {
			best, bestD = i, d
		}
	}
	return w.bubbles[best], true
}

func (w *World) spawnBubbles() {
	if w.phase != Playing {
		return
	}
	if b, ok := w.spawn.Spawn(w.now, w.arena); ok {
		w.bubbles = append(w.bubbles, b)
	}
}

func (w *World) stepChaser() {
	if w.phase != Playing {
		return
	}
	c := &w.chaser

	dir := w.cursor.Sub(c.Pos)
	if d := dir.Len(); d != 0 {
		dir = dir.Scale(1 / d)
	}
	c.Vel = c.Vel.Add(dir.Scale(ChaserAccel)).Scale(ChaserDamping)
	c.Pos = c.Pos.Add(c.Vel.Scale(c.Speed))
	w.addTrail(c.Pos)

	// Elastic bounce off the wall.
	limit := w.arena.Radius - ChaserWallMargin
	off := c.Pos.Sub(w.arena.Center)
	if d := off.Len(); d > limit {
		n := off.Scale(1 / d)
		c.Vel = reflect(c.Vel, n)
		c.Pos = w.arena.Center.Add(n.Scale(limit))
		if w.now-c.LastBounce > ChaserBounceCool {
			w.play(SoundBounce, ChaserBounceVolume)
			c.LastBounce = w.now
		}
	}

	if !w.immune() && dist(c.Pos, w.cursor) < ChaserHitDistance {
		w.explode()
	}
}

func (w *World) addTrail(pos Vec) {
	w.trail = append(w.trail, TrailParticle{
		Pos:   pos,
		Life:  TrailLife,
		Size:  2 + w.rng.Intn(3),
		Color: TrailColor,
	})
	if len(w.trail) > TrailCap {
		n := copy(w.trail, w.trail[1:])
		w.trail = w.trail[:n]
	}
}

func (w *World) stepPops() {
	kept := w.pops[:0]
	for _, p := range w.pops {
		p.Pos = p.Pos.Add(p.Vel)
		p.Life--
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	w.pops = kept
}

// stepBubbles drifts bubbles, bounces them off the wall and expires old ones.
// In hardcore mode an expiry outside the immunity window ends the round.
func (w *World) stepBubbles() {
	kept := w.bubbles[:0]
	for i := 0; i < len(w.bubbles); i++ {
		b := w.bubbles[i]
		b.Pos = b.Pos.Add(b.Vel)

		limit := w.arena.Radius - float64(b.Radius)
		off := b.Pos.Sub(w.arena.Center)
		if off.Len() > limit {
			// Straight reversal, not a reflection about the normal.
			b.Pos = w.arena.Center.Add(polar(off.Angle(), limit))
			b.Vel = b.Vel.Scale(-1)
			if w.now-b.LastBounce > BubbleBounceCool {
				w.play(SoundBounce, BubbleBounceVolume)
				b.LastBounce = w.now
			}
		}

		if w.now-b.SpawnTime > BubbleLifespan {
			w.burst(b.Pos, b.Color())
			w.play(SoundPop, 1)
			if w.mode == score.Hardcore && w.phase == Playing && !w.immune() {
				// Explode with what is left after removing b: bubbles already
				// advanced this tick plus the ones not yet visited.
				w.bubbles = append(kept, w.bubbles[i+1:]...)
				w.explode()
				return
			}
			continue
		}
		kept = append(kept, b)
	}
	w.bubbles = kept
}

// stepExplosion moves debris. Wall hits reflect about the normal and lose half
// the speed. Bounce sounds are rare so hundreds of particles do not flood the
// mixer.
func (w *World) stepExplosion() {
	if w.phase != Exploded {
		return
	}
	for i := range w.explosion {
		p := &w.explosion[i]
		p.Pos = p.Pos.Add(p.Vel)
		p.Vel = p.Vel.Scale(ExplosionDrag)

		limit := w.arena.Radius - float64(p.Radius)
		off := p.Pos.Sub(w.arena.Center)
		if off.Len() <= limit {
			continue
		}
		n := polar(off.Angle(), 1)
		p.Pos = w.arena.Center.Add(n.Scale(limit))
		p.Vel = reflect(p.Vel, n).Scale(ExplosionBounce)
		if w.now-p.LastBounce > ExplosionBounceCool && w.rng.Float64() < ExplosionSoundP {
			w.play(SoundBounce, ExplosionBounceVolume)
			p.LastBounce = w.now
		}
	}
}

func (w *World) stepTrail() {
	kept := w.trail[:0]
	for _, t := range w.trail {
		t.Life--
		if t.Life > 0 {
			kept = append(kept, t)
		}
	}
	w.trail = kept
}
