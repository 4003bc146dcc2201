package game

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"popper/internal/score"
)

// ErrNonFinite reports a NaN or infinite value in simulation state.
var ErrNonFinite = errors.New("non-finite simulation state")

// Phase is the top level game state.
type Phase int

const (
	ModeSelect Phase = iota
	Playing
	Paused
	Exploded
)

func (p Phase) String() string {
	switch p {
	case ModeSelect:
		return "mode-select"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Exploded:
		return "exploded"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

type Options struct {
	Clock   Clock
	Rand    *rand.Rand
	Sound   SoundPlayer
	Pointer PointerWarper
	Scores  ScoreKeeper
	Log     *log.Logger

	Muted     bool
	Autopilot bool
}

// World owns all per-game state. It is driven by a single loop calling Tick
// once per frame and is not safe for concurrent use.
type World struct {
	arena   Arena
	clock   Clock
	rng     *rand.Rand
	sound   SoundPlayer
	pointer PointerWarper
	scores  ScoreKeeper
	log     *log.Logger

	phase      Phase
	mode       score.Mode
	muted      bool
	autopilot  bool
	done       bool
	now        time.Duration
	pauseStart time.Duration

	pointerPos Vec
	cursor     Vec
	chaser     Chaser
	bubbles    []Bubble
	explosion  []ExplosionParticle
	pops       []PopParticle
	trail      []TrailParticle
	spawn      *Spawner

	steps []step
}

type step struct {
	name string
	run  func()
}

func NewWorld(opts Options) *World {
	if opts.Clock == nil {
		opts.Clock = NewMonotonicClock()
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if opts.Sound == nil {
		opts.Sound = silentPlayer{}
	}
	if opts.Pointer == nil {
		opts.Pointer = noWarp{}
	}
	if opts.Log == nil {
		opts.Log = log.Default()
	}
	if opts.Scores == nil {
		opts.Scores = score.Load("", opts.Log)
	}
	w := &World{
		arena:     DefaultArena(),
		clock:     opts.Clock,
		rng:       opts.Rand,
		sound:     opts.Sound,
		pointer:   opts.Pointer,
		scores:    opts.Scores,
		log:       opts.Log,
		phase:     ModeSelect,
		muted:     opts.Muted,
		autopilot: opts.Autopilot,
		spawn:     NewSpawner(opts.Rand),
		explosion: make([]ExplosionParticle, 0, ExplosionBurst),
		trail:     make([]TrailParticle, 0, TrailCap+1),
	}
	w.chaser = Chaser{Pos: w.arena.Center, Speed: ChaserStartSpeed}
	w.cursor = w.arena.Center
	w.pointerPos = w.arena.Center
	w.steps = []step{
		{"aim", w.aim},
		{"spawn", w.spawnBubbles},
		{"chaser", w.stepChaser},
		{"pops", w.stepPops},
		{"bubbles", w.stepBubbles},
		{"explosion", w.stepExplosion},
		{"trail", w.stepTrail},
	}
	return w
}

// Tick advances the game by one frame. The clock is sampled once and that
// time is used for the whole tick. A returned error means state may be
// inconsistent; the caller should log it and call Recover.
func (w *World) Tick(in Input) error {
	if w.done {
		return nil
	}
	w.now = w.clock.Now()
	if err := w.run(step{"input", func() { w.handleInput(in) }}); err != nil {
		return err
	}
	if w.done || w.phase == ModeSelect || w.phase == Paused {
		return nil
	}
	for _, s := range w.steps {
		if err := w.run(s); err != nil {
			return err
		}
	}
	return nil
}

func (w *World) run(s step) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%s: panic: %v", s.name, r)
		}
	}()
	s.run()
	if err := w.validate(); err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return nil
}

func (w *World) validate() error {
	c := w.chaser
	if !c.Pos.Finite() || !c.Vel.Finite() || !isFinite(c.Speed) {
		return fmt.Errorf("chaser at %v moving %v: %w", c.Pos, c.Vel, ErrNonFinite)
	}
	for _, b := range w.bubbles {
		if !b.Pos.Finite() || !b.Vel.Finite() {
			return fmt.Errorf("bubble at %v: %w", b.Pos, ErrNonFinite)
		}
	}
	return nil
}

// Recover resynchronizes the world after a failed tick by running the same
// reset as a manual restart. Nothing happens before a mode has been chosen.
func (w *World) Recover() {
	if w.phase == ModeSelect || w.done {
		return
	}
	w.reset()
}

// Done reports whether the player asked to quit.
func (w *World) Done() bool { return w.done }

// reset starts a fresh round in the current mode.
func (w *World) reset() {
	w.chaser = Chaser{
		Pos:         w.arena.Center,
		Speed:       ChaserStartSpeed,
		ImmunityEnd: w.now + ImmunityDuration,
	}
	w.bubbles = w.bubbles[:0]
	w.explosion = w.explosion[:0]
	w.pops = w.pops[:0]
	w.trail = w.trail[:0]
	w.spawn.Reset(w.now)
	w.scores.Reset(w.mode)
	w.phase = Playing
}

func (w *World) immune() bool { return w.now < w.chaser.ImmunityEnd }

func (w *World) play(kind SoundKind, volume float64) {
	if w.muted {
		return
	}
	w.sound.Play(kind, volume)
}

// burst emits a ring of pop particles at pos.
func (w *World) burst(pos Vec, c color.RGBA) {
	for i := 0; i < PopBurst; i++ {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := PopMinSpeed + w.rng.Float64()*(PopMaxSpeed-PopMinSpeed)
		w.pops = append(w.pops, PopParticle{
			Pos:   pos,
			Vel:   polar(angle, speed),
			Color: c,
			Life:  PopLife,
		})
	}
}

// explode ends the round: every remaining bubble pops and the chaser bursts
// into debris.
func (w *World) explode() {
	if w.phase != Playing {
		return
	}
	w.phase = Exploded

	volume := math.Min(MaxPopVolume, 1/math.Max(1, float64(len(w.bubbles))/5))
	for _, b := range w.bubbles {
		w.burst(b.Pos, b.Color())
		w.play(SoundPop, volume)
	}
	w.bubbles = w.bubbles[:0]

	for i := 0; i < ExplosionBurst; i++ {
		angle := w.rng.Float64() * 2 * math.Pi
		speed := ExplosionMinSpeed + w.rng.Float64()*(ExplosionMaxSpeed-ExplosionMinSpeed)
		w.explosion = append(w.explosion, ExplosionParticle{
			Pos:    w.chaser.Pos,
			Vel:    polar(angle, speed),
			Radius: 2 + w.rng.Intn(3),
			Color: color.RGBA{
				R: uint8(150 + w.rng.Intn(106)),
				G: uint8(50 + w.rng.Intn(206)),
				B: uint8(50 + w.rng.Intn(206)),
				A: 255,
			},
		})
	}
}
