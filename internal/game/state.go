package game

import "popper/internal/score"

func (w *World) handleInput(in Input) {
	w.pointerPos = in.Pointer
	for _, c := range in.Clicks {
		w.click(c)
	}
	if in.Mute {
		w.toggleMute()
	}
	if in.Autopilot {
		w.autopilot = !w.autopilot
	}
	if in.Restart && w.phase == Exploded {
		w.reset()
	}
	if in.Escape {
		switch w.phase {
		case Playing:
			w.pause()
		case Paused:
			w.resume()
		case Exploded:
			w.quit()
		}
	}
	if in.Quit {
		w.quit()
	}
}

func (w *World) click(p Vec) {
	if MuteButton.Contains(p) {
		w.toggleMute()
		return
	}
	switch w.phase {
	case ModeSelect:
		switch {
		case NormalButton.Contains(p):
			w.selectMode(score.Normal)
		case HardcoreButton.Contains(p):
			w.selectMode(score.Hardcore)
		}
	case Paused:
		if w.arena.Contains(p) {
			w.resume()
		}
	case Exploded:
		if w.arena.Contains(p) {
			w.reset()
		}
	case Playing:
		if ModeButton.Contains(p) {
			w.toggleMode()
			return
		}
		w.popAt(p)
	}
}

func (w *World) selectMode(m score.Mode) {
	if w.phase != ModeSelect {
		return
	}
	w.mode = m
	w.reset()
}

// toggleMode switches which counters receive points. The round keeps going:
// no reset and no fresh immunity.
func (w *World) toggleMode() {
	if w.phase != Playing {
		return
	}
	w.mode = w.mode.Toggle()
}

func (w *World) toggleMute() {
	w.muted = !w.muted
	w.play(SoundPop, MutePreviewVolume)
}

func (w *World) pause() {
	if w.phase != Playing {
		return
	}
	w.phase = Paused
	w.pauseStart = w.now
}

// resume shifts every timestamp forward by the pause length so nothing ages
// while paused.
func (w *World) resume() {
	if w.phase != Paused {
		return
	}
	d := w.now - w.pauseStart
	w.chaser.ImmunityEnd += d
	w.spawn.Shift(d)
	for i := range w.bubbles {
		w.bubbles[i].SpawnTime += d
	}
	w.phase = Playing
}

// quit ends the loop and flushes scores. A failed save is logged by the store
// and does not block exit.
func (w *World) quit() {
	if w.done {
		return
	}
	w.done = true
	w.scores.Save()
	w.log.Printf("quit: %s score %d, best %d", w.mode, w.scores.Current(w.mode), w.scores.Best(w.mode))
}

// popAt pops every bubble under p.
func (w *World) popAt(p Vec) {
	kept := w.bubbles[:0]
	for _, b := range w.bubbles {
		if dist(b.Pos, p) < float64(b.Radius) {
			w.pop(b)
			continue
		}
		kept = append(kept, b)
	}
	w.bubbles = kept
}

func (w *World) pop(b Bubble) {
	w.scores.Update(b.Points(), w.mode)
	w.chaser.Speed += b.SpeedBoost()
	if b.Golden {
		w.chaser.Speed *= GoldenSlowdown
	}
	w.play(SoundPop, 1)
	w.burst(b.Pos, b.Color())
}
