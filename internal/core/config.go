package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and tick rate.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 60)

	// Prefs is an optional persisted key-value store (e.g. for a high score).
	// Nil means nothing is persisted.
	Prefs KeyValue
}

// KeyValue is a small persisted store of integer settings keyed by name.
type KeyValue interface {
	// GetInt returns the stored value and whether the key exists.
	GetInt(key string) (int, bool, error)
	// RaiseInt stores value only if it is greater than the stored one,
	// atomically, and returns what is stored afterwards. raised reports
	// whether this call wrote it. Sessions sharing a store rely on the
	// value never going down.
	RaiseInt(key string, value int) (stored int, raised bool, err error)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// TimerRequest asks the platform to call Game.Fire(ID) once After has elapsed.
// Requests are delivered back on the tick goroutine, never concurrently with Step.
type TimerRequest struct {
	ID    uint64
	After time.Duration
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any timers the game wants scheduled.
type StepResult struct {
	State  GameState
	Timers []TimerRequest
}
