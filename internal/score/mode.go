package score

// Mode selects which pair of counters receives points.
type Mode int

const (
	Normal Mode = iota
	Hardcore
)

func (m Mode) String() string {
	if m == Hardcore {
		return "Hardcore"
	}
	return "Normal"
}

// Toggle returns the other mode.
func (m Mode) Toggle() Mode {
	if m == Hardcore {
		return Normal
	}
	return Hardcore
}
