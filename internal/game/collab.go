package game

import "popper/internal/score"

type SoundKind int

const (
	SoundPop SoundKind = iota
	SoundBounce
)

// SoundPlayer starts a sound and returns immediately.
type SoundPlayer interface {
	Play(kind SoundKind, volume float64)
}

// PointerWarper moves the platform pointer. Platforms that cannot warp the
// pointer may hide it instead.
type PointerWarper interface {
	Warp(p Vec)
}

// ScoreKeeper is implemented by *score.Store.
type ScoreKeeper interface {
	Update(points int, mode score.Mode) int
	Reset(mode score.Mode)
	Current(mode score.Mode) int
	Best(mode score.Mode) int
	Save() error
}

type silentPlayer struct{}

func (silentPlayer) Play(SoundKind, float64) {}

type noWarp struct{}

func (noWarp) Warp(Vec) {}
