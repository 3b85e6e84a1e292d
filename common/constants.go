package common

const (
	// Playfield size in logical units. Everything in the simulation moves
	// inside this space; frontends scale it to the window.
	ScreenWidth  = 800
	ScreenHeight = 600

	TicksPerSecond = 60

	// MaxLevel is the last level; killing its boss completes the run.
	MaxLevel = 3
)
