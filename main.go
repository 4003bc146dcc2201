package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"popper/internal/config"
	"popper/internal/errlog"
	"popper/internal/game"
	"popper/internal/score"
	"popper/internal/sound"
)

func main() {
	cfg, err := config.Load(config.Path())
	if err != nil {
		log.Printf("config: %v", err)
	}

	errs, err := errlog.Open(cfg.ErrorLog)
	if err != nil {
		log.Printf("Failed to open error log: %v", err)
		errs = errlog.Stderr()
	}
	defer errs.Close()

	scores := score.Load(cfg.ScoresFile, errs.Logger)

	snd, muted := loadSound(func() (*sound.Player, error) {
		return sound.Load(audio.NewContext(sound.SampleRate), map[game.SoundKind]string{
			game.SoundPop:    cfg.PopSound,
			game.SoundBounce: cfg.BounceSound,
		})
	}, cfg.Muted, errs.Logger)

	lock := &cursorLock{}
	g := &Game{
		world: game.NewWorld(game.Options{
			Sound:     snd,
			Pointer:   lock,
			Scores:    scores,
			Muted:     muted,
			Autopilot: cfg.Autopilot,
		}),
		errs:   errs.Logger,
		cursor: lock,
	}

	ebiten.SetWindowSize(game.ScreenW, game.ScreenH)
	ebiten.SetWindowTitle(cfg.WindowTitle)
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil {
		errs.Printf("Game loop stopped: %v", err)
		log.Printf("Game loop stopped: %v", err)
	}

	// A normal quit already flushed the scores.
	if !g.world.Done() {
		scores.Save()
	}
}

// loadSound runs load and returns the player with the configured mute flag.
// When the effects cannot be loaded the game runs silent with mute forced on.
func loadSound(load func() (*sound.Player, error), muted bool, errs *log.Logger) (game.SoundPlayer, bool) {
	p, err := load()
	if err != nil {
		errs.Printf("Error loading audio files: %v", err)
		log.Printf("Error loading audio files: %v", err)
		return nil, true
	}
	return p, muted
}
