// Package sound plays the pop and bounce effects through an ebiten audio
// context.
package sound

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"popper/internal/game"
)

const SampleRate = 44100

// Player keeps each effect decoded in memory and starts a fresh audio player
// per Play so overlapping effects mix instead of restarting each other.
type Player struct {
	ctx *audio.Context
	pcm map[game.SoundKind][]byte
}

// Load decodes every asset in files. Any failure aborts the load; callers
// fall back to silence.
func Load(ctx *audio.Context, files map[game.SoundKind]string) (*Player, error) {
	pcm, err := loadPCM(files, ctx.SampleRate())
	if err != nil {
		return nil, err
	}
	return &Player{ctx: ctx, pcm: pcm}, nil
}

func loadPCM(files map[game.SoundKind]string, sampleRate int) (map[game.SoundKind][]byte, error) {
	out := make(map[game.SoundKind][]byte, len(files))
	for kind, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		pcm, err := decode(bytes.NewReader(data), sampleRate)
		if err != nil {
			return nil, fmt.Errorf("decode %s: %w", path, err)
		}
		out[kind] = pcm
	}
	return out, nil
}

// decode returns 16-bit stereo PCM at sampleRate.
func decode(r io.Reader, sampleRate int) ([]byte, error) {
	s, err := wav.DecodeWithSampleRate(sampleRate, r)
	if err != nil {
		return nil, err
	}
	return io.ReadAll(s)
}

func (p *Player) Play(kind game.SoundKind, volume float64) {
	pcm, ok := p.pcm[kind]
	if !ok {
		return
	}
	ap := p.ctx.NewPlayerFromBytes(pcm)
	ap.SetVolume(clamp01(volume))
	ap.Play()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
