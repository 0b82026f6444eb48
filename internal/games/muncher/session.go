package muncher

import (
	"github.com/vovakirdan/pixel-muncher/internal/config"
)

// Session is one run from start to a terminal state. It is owned by the
// Machine and only ever touched from the tick goroutine.
type Session struct {
	tmpl       *Template
	difficulty config.DifficultyPreset
	board      Board

	player  Character
	pursuer Character

	score     int
	lives     int
	remaining int

	collectiblePoints int
	bonusPoints       int
	encounterDist     float64
	playerSpeed       float64
	pursuerSpeed      float64

	// overlapping is true while the characters are within encounter
	// distance; an encounter fires only when it flips to true.
	overlapping bool

	// resetToken identifies the pending resume, 0 when none.
	resetToken uint64

	ticks uint64
}

// newSession starts a run on a fresh copy of the template grid. The player's
// spawn tile is cleared without scoring.
func newSession(tmpl *Template, cfg config.MuncherConfig, difficulty config.DifficultyPreset) *Session {
	grid := tmpl.Grid.Clone()
	grid.Consume(tmpl.PlayerSpawn.Col, tmpl.PlayerSpawn.Row)

	s := &Session{
		tmpl:              tmpl,
		difficulty:        difficulty,
		board:             Board{Grid: grid, TileSize: cfg.Physics.TileSize},
		lives:             cfg.Gameplay.Lives,
		remaining:         grid.CountEdible(),
		collectiblePoints: cfg.Gameplay.CollectiblePoints,
		bonusPoints:       cfg.Gameplay.BonusPoints,
		encounterDist:     cfg.EncounterDistance(),
		playerSpeed:       cfg.PlayerSpeed(),
		pursuerSpeed:      cfg.PursuerSpeed(difficulty),
	}
	s.spawn()
	return s
}

// spawn recreates both characters at their start tiles.
func (s *Session) spawn() {
	radius := s.board.TileSize / 2
	s.player = newCharacter(RolePlayer, s.tmpl.PlayerSpawn, s.playerSpeed, radius, s.board)
	s.pursuer = newCharacter(RolePursuer, s.tmpl.PursuerSpawn, s.pursuerSpeed, radius, s.board)
}

// outcome is what a tick means for the lifecycle.
type outcome uint8

const (
	outcomeNone outcome = iota
	outcomeWon
	outcomeEncounter
)

// tick runs one simulation step: player movement, pursuer steering and
// movement, consumption, then encounter detection.
func (s *Session) tick(emit func(Event)) outcome {
	s.ticks++

	steeringFor(s.player.Role).Steer(&s.player, s.board, s.pursuer.Pos)
	Move(&s.player, s.board)

	steeringFor(s.pursuer.Role).Steer(&s.pursuer, s.board, s.player.Pos)
	Move(&s.pursuer, s.board)

	if s.consume(emit) {
		return outcomeWon
	}
	if s.detectEncounter() {
		return outcomeEncounter
	}
	return outcomeNone
}

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Remaining returns the number of collectibles still on the grid.
func (s *Session) Remaining() int { return s.remaining }

// Difficulty returns the preset the session was started with.
func (s *Session) Difficulty() config.DifficultyPreset { return s.difficulty }
