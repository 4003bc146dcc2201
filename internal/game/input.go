package game

// Input is the per-tick snapshot handed over by the platform. Key fields are
// true on the tick the key went down.
type Input struct {
	Pointer Vec
	Clicks  []Vec

	Escape    bool // pause/resume while playing, quit otherwise
	Restart   bool
	Mute      bool
	Autopilot bool
	Quit      bool // window closed
}
