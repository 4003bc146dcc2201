package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"popper/internal/game"
)

// Game adapts the simulation to ebiten's Update/Draw loop.
type Game struct {
	world  *game.World
	errs   *log.Logger
	cursor *cursorLock
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return game.ScreenW, game.ScreenH
}

func (g *Game) Update() error {
	g.step(readInput())
	if g.world.Done() {
		return ebiten.Termination
	}
	return nil
}

// step runs one tick. A failed tick is logged and the round restarts; it
// never stops the loop.
func (g *Game) step(in game.Input) {
	if err := g.world.Tick(in); err != nil {
		g.errs.Printf("Critical game error: %v", err)
		log.Printf("An error occurred: %v", err)
		g.world.Recover()
	}
	g.cursor.apply()
}
