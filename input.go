package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"popper/internal/game"
)

func readInput() game.Input {
	x, y := ebiten.CursorPosition()
	in := game.Input{
		Pointer:   game.Vec{X: float64(x), Y: float64(y)},
		Escape:    inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Restart:   inpututil.IsKeyJustPressed(ebiten.KeySpace),
		Mute:      inpututil.IsKeyJustPressed(ebiten.KeyM),
		Autopilot: inpututil.IsKeyJustPressed(ebiten.KeyA),
		Quit:      ebiten.IsWindowBeingClosed(),
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Clicks = append(in.Clicks, in.Pointer)
	}
	return in
}

// cursorLock keeps the visible cursor inside the arena. ebiten cannot move
// the system pointer, so while the world is clamping it the system cursor is
// hidden and the renderer's cursor dot, drawn at the clamped point, is all
// the player sees.
type cursorLock struct {
	clamped bool
	hidden  bool
	setMode func(ebiten.CursorModeType)
}

func (c *cursorLock) Warp(game.Vec) { c.clamped = true }

// apply syncs the system cursor with this tick's clamp state.
func (c *cursorLock) apply() {
	if c.clamped != c.hidden {
		mode := ebiten.CursorModeVisible
		if c.clamped {
			mode = ebiten.CursorModeHidden
		}
		if c.setMode == nil {
			c.setMode = ebiten.SetCursorMode
		}
		c.setMode(mode)
		c.hidden = c.clamped
	}
	c.clamped = false
}
