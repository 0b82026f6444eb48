package muncher

import (
	"math"

	"github.com/vovakirdan/pixel-muncher/internal/core"
)

// Board binds a grid to a tile size and answers the spatial questions the
// movement engine asks. Columns wrap around; rows do not.
type Board struct {
	Grid     *Grid
	TileSize float64
}

// Width returns the playfield width in units.
func (b Board) Width() float64 {
	return float64(b.Grid.Width()) * b.TileSize
}

// Height returns the playfield height in units.
func (b Board) Height() float64 {
	return float64(b.Grid.Height()) * b.TileSize
}

// TileOf returns the tile containing a position. Uses floor so that
// positions slightly left of the grid during a wrap map to column -1.
func (b Board) TileOf(p core.Vec) Coord {
	return Coord{
		Col: int(math.Floor(p.X / b.TileSize)),
		Row: int(math.Floor(p.Y / b.TileSize)),
	}
}

// Center returns the center point of a tile.
func (b Board) Center(c Coord) core.Vec {
	return core.V(
		float64(c.Col)*b.TileSize+b.TileSize/2,
		float64(c.Row)*b.TileSize+b.TileSize/2,
	)
}

// wrapCol folds a column into [0, width).
func (b Board) wrapCol(col int) int {
	w := b.Grid.Width()
	return ((col % w) + w) % w
}

// Tile classifies c with the column wrapped. Rows outside the grid are Wall.
func (b Board) Tile(c Coord) Tile {
	return b.Grid.Classify(b.wrapCol(c.Col), c.Row)
}

// Blocked reports whether the neighbour of c in direction d cannot be
// entered. DirNone is never blocked.
func (b Board) Blocked(c Coord, d Direction) bool {
	if d == DirNone {
		return false
	}
	return b.Tile(c.Add(d)).Blocking()
}

// Consume consumes the tile at c, with the column wrapped.
func (b Board) Consume(c Coord) (Tile, bool) {
	return b.Grid.Consume(b.wrapCol(c.Col), c.Row)
}

// wrapX teleports a position that has left the playfield horizontally by
// more than half a tile to the opposite edge.
func (b Board) wrapX(x float64) float64 {
	half := b.TileSize / 2
	w := b.Width()
	switch {
	case x > w+half:
		return -half
	case x < -half:
		return w + half
	}
	return x
}

// Move advances a character by one tick:
//  1. at a decision point, commit a buffered intent if its neighbour is open;
//  2. at a decision point, stop if the current heading runs into a wall;
//  3. translate by heading * speed;
//  4. apply the horizontal wrap.
//
// Steering (intent or pursuit choice) must have happened before Move.
func Move(c *Character, b Board) {
	if c.AtDecisionPoint(b) {
		tile := b.TileOf(c.Pos)
		if c.Next != DirNone && !b.Blocked(tile, c.Next) {
			c.Heading = c.Next
			c.Next = DirNone
		}
		if b.Blocked(tile, c.Heading) {
			c.Heading = DirNone
		}
	}

	c.Pos = c.Pos.Add(c.Heading.Unit().Scale(c.Speed))
	c.Pos.X = b.wrapX(c.Pos.X)
}
