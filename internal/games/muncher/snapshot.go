package muncher

import (
	"github.com/vovakirdan/pixel-muncher/internal/config"
	"github.com/vovakirdan/pixel-muncher/internal/core"
)

// CharacterView is the read-only state of one character.
type CharacterView struct {
	Role    Role
	Pos     core.Vec
	Heading Direction
	Tile    Coord
	Radius  float64
}

// Snapshot is everything a renderer needs for one frame.
// It shares nothing with the live session.
type Snapshot struct {
	MazeID     string
	MazeName   string
	State      State
	Difficulty config.DifficultyPreset
	Tick       uint64

	Grid     *Grid
	TileSize float64
	Player   CharacterView
	Pursuer  CharacterView
	Active   bool // False in Menu: Grid is the template and characters sit on their spawns

	Score     int
	Lives     int
	Remaining int
	HighScore int
}

func viewOf(c Character, b Board) CharacterView {
	t := b.TileOf(c.Pos)
	t.Col = b.wrapCol(t.Col)
	return CharacterView{
		Role:    c.Role,
		Pos:     c.Pos,
		Heading: c.Heading,
		Tile:    t,
		Radius:  c.Radius,
	}
}

// Snapshot returns a copy of the current frame state.
func (m *Machine) Snapshot() Snapshot {
	snap := Snapshot{
		MazeID:    m.tmpl.ID,
		MazeName:  m.tmpl.Name,
		State:     m.state,
		TileSize:  m.cfg.Physics.TileSize,
		HighScore: m.highScore,
	}

	s := m.session
	if s == nil {
		b := Board{Grid: m.tmpl.Grid, TileSize: m.cfg.Physics.TileSize}
		snap.Grid = m.tmpl.Grid.Clone()
		snap.Difficulty = m.cfg.Difficulty.Default
		snap.Lives = m.cfg.Gameplay.Lives
		snap.Remaining = m.tmpl.Grid.CountEdible()
		snap.Player = CharacterView{Role: RolePlayer, Pos: b.Center(m.tmpl.PlayerSpawn), Tile: m.tmpl.PlayerSpawn}
		snap.Pursuer = CharacterView{Role: RolePursuer, Pos: b.Center(m.tmpl.PursuerSpawn), Tile: m.tmpl.PursuerSpawn}
		return snap
	}

	snap.Active = true
	snap.Difficulty = s.difficulty
	snap.Tick = s.ticks
	snap.Grid = s.board.Grid.Clone()
	snap.Player = viewOf(s.player, s.board)
	snap.Pursuer = viewOf(s.pursuer, s.board)
	snap.Score = s.score
	snap.Lives = s.lives
	snap.Remaining = s.remaining
	return snap
}
