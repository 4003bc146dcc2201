package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"popper/internal/game"
	"popper/internal/score"
)

var (
	bgColor        = color.RGBA{30, 30, 30, 255}
	arenaColor     = color.RGBA{50, 50, 50, 255}
	buttonColor    = color.RGBA{70, 70, 70, 255}
	hardcoreColor  = color.RGBA{150, 0, 0, 255}
	muteColor      = color.RGBA{60, 60, 60, 255}
	chaserColor    = color.RGBA{255, 50, 50, 255}
	chaserFlash    = color.RGBA{255, 200, 200, 255}
	bestColor      = color.RGBA{255, 255, 0, 255}
	modeLabelColor = color.RGBA{200, 200, 200, 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	v := g.world.View()
	screen.Fill(bgColor)
	fillCircle(screen, v.Arena.Center, v.Arena.Radius, arenaColor)

	if v.Phase == game.ModeSelect {
		drawCentered(screen, "Choose a Mode", game.ScreenW/2, 250, color.White)
		drawButton(screen, game.NormalButton, buttonColor, "Normal Mode")
		drawButton(screen, game.HardcoreButton, hardcoreColor, "Hardcore Mode")
		drawMute(screen, v)
		return
	}

	for _, p := range v.Pops {
		fillCircle(screen, p.Pos, 2, p.Color)
	}
	for _, b := range v.Bubbles {
		vector.StrokeCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), 2, b.Color(), true)
	}
	if v.Phase == game.Playing || v.Phase == game.Paused {
		c := chaserColor
		if v.ChaserFlash() {
			c = chaserFlash
		}
		fillCircle(screen, v.Chaser.Pos, game.ChaserRadius, c)
	}
	if v.Phase == game.Exploded {
		for _, p := range v.Explosion {
			fillCircle(screen, p.Pos, float64(p.Radius), p.Color)
		}
	}
	for _, t := range v.Trail {
		a := t.Alpha()
		fillCircle(screen, t.Pos, float64(t.Size), color.NRGBA{t.Color.R, t.Color.G, t.Color.B, a})
	}
	fillCircle(screen, v.Cursor, game.CursorRadius, color.White)

	drawHUD(screen, v)

	switch v.Phase {
	case game.Paused:
		drawCentered(screen, "PAUSED", game.ScreenW/2, game.ScreenH/2, color.White)
	case game.Exploded:
		drawCentered(screen, "Press 'SPACE' or click on screen to Play Again", game.ScreenW/2, game.ScreenH/2, color.White)
	}
}

func drawHUD(dst *ebiten.Image, v game.View) {
	face := basicfont.Face7x13
	text.Draw(dst, fmt.Sprintf("Score: %d", v.Score), face, 30, 40, color.White)
	best := fmt.Sprintf("Best: %d", v.Best)
	text.Draw(dst, best, face, game.ScreenW-30-text.BoundString(face, best).Dx(), 40, bestColor)
	label := v.Mode.String() + " Mode"
	if v.Autopilot {
		label += " (autopilot)"
	}
	drawCentered(dst, label, game.ScreenW/2, 36, modeLabelColor)

	bg := buttonColor
	if v.Mode == score.Hardcore {
		bg = hardcoreColor
	}
	drawButton(dst, game.ModeButton, bg, v.Mode.String())
	drawMute(dst, v)
}

func drawMute(dst *ebiten.Image, v game.View) {
	label := "Sound: ON"
	if v.Muted {
		label = "Sound: OFF"
	}
	drawButton(dst, game.MuteButton, muteColor, label)
}

func drawButton(dst *ebiten.Image, r game.Rect, bg color.Color, label string) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), bg, false)
	c := r.Center()
	drawCentered(dst, label, int(c.X), int(c.Y), color.White)
}

// drawCentered places s so its bounding box is centered on (cx, cy).
func drawCentered(dst *ebiten.Image, s string, cx, cy int, clr color.Color) {
	b := text.BoundString(basicfont.Face7x13, s)
	text.Draw(dst, s, basicfont.Face7x13, cx-b.Min.X-b.Dx()/2, cy-b.Min.Y-b.Dy()/2, clr)
}

func fillCircle(dst *ebiten.Image, p game.Vec, r float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(r), c, true)
}
