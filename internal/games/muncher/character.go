package muncher

import (
	"math"

	"github.com/vovakirdan/pixel-muncher/internal/core"
)

// Role tags what drives a character's heading.
type Role uint8

const (
	RolePlayer  Role = iota // steered by buffered input intents
	RolePursuer             // steered by the pursuit heuristic
)

func (r Role) String() string {
	if r == RolePursuer {
		return "pursuer"
	}
	return "player"
}

// Character is a token moving continuously through the maze.
// Characters are owned by a Session and recreated, not moved, on reset.
type Character struct {
	Role    Role
	Pos     core.Vec  // Sub-tile units
	Heading Direction // Current heading, DirNone when stopped
	Next    Direction // Buffered intent, applied at the next decision point
	Speed   float64   // Units per tick
	Radius  float64   // Collision radius in units
}

// newCharacter places a character at the exact center of its spawn tile.
func newCharacter(role Role, spawn Coord, speed, radius float64, b Board) Character {
	return Character{
		Role:   role,
		Pos:    b.Center(spawn),
		Speed:  speed,
		Radius: radius,
	}
}

// SetIntent buffers a heading for the next decision point.
// Invalid directions are ignored and leave the buffer unchanged.
func (c *Character) SetIntent(d Direction) {
	if !d.Valid() {
		return
	}
	c.Next = d
}

// AtDecisionPoint reports whether the character is within speed/2 of its
// tile center on both axes. Positions advance in speed-sized steps, so
// exact equality with the center is not reachable in general.
func (c Character) AtDecisionPoint(b Board) bool {
	center := b.Center(b.TileOf(c.Pos))
	tol := c.Speed / 2
	return math.Abs(c.Pos.X-center.X) < tol && math.Abs(c.Pos.Y-center.Y) < tol
}
