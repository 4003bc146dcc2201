package game

// Rect is an on-screen button area.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

func (r Rect) Center() Vec { return Vec{r.X + r.W/2, r.Y + r.H/2} }

// Buttons. The mode and mute buttons sit in the corners outside the arena.
var (
	NormalButton   = Rect{250, 400, 300, 60}
	HardcoreButton = Rect{250, 500, 300, 60}
	ModeButton     = Rect{630, 740, 150, 40}
	MuteButton     = Rect{20, 740, 100, 40}
)
