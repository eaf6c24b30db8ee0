package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt its layout to the terminal size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the externally visible state of a game session, returned by
// Game.State() to communicate status to the platform layer.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives
	GameOver bool // Terminal state reached (won or lost)
	Won      bool // All blocks destroyed
	Paused   bool // Paused or not yet started
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// MusicToggled signals the audio collaborator; the game core itself
	// never touches audio.
	MusicToggled bool
}
