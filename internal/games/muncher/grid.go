package muncher

import (
	"errors"
	"fmt"
)

// Template validation errors.
var (
	ErrEmptyGrid      = errors.New("grid has no cells")
	ErrNotRectangular = errors.New("grid rows have different lengths")
	ErrUnknownTile    = errors.New("unknown tile code")
	ErrBadSpawn       = errors.New("spawn tile is not walkable")
)

// Coord addresses a tile by column and row.
type Coord struct {
	Col, Row int
}

// Add returns the coordinate offset by a direction.
func (c Coord) Add(d Direction) Coord {
	dx, dy := d.Delta()
	return Coord{Col: c.Col + dx, Row: c.Row + dy}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
}

// Grid is a rectangular maze stored in row-major order.
// A template grid is never mutated; sessions work on a Clone.
type Grid struct {
	w, h  int
	cells []Tile
}

// NewGrid builds a grid from rows of tile codes.
// Rows must be non-empty, of equal length, and use only known codes.
func NewGrid(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	w := len(rows[0])
	g := &Grid{w: w, h: len(rows), cells: make([]Tile, 0, w*len(rows))}
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", r, len(row), w, ErrNotRectangular)
		}
		for c, code := range row {
			t, ok := TileFromCode(code)
			if !ok {
				return nil, fmt.Errorf("code %d at %s: %w", code, Coord{c, r}, ErrUnknownTile)
			}
			g.cells = append(g.cells, t)
		}
	}
	return g, nil
}

// MustGrid is NewGrid that panics on error. Intended for tests and
// compiled-in mazes.
func MustGrid(rows [][]int) *Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// InBounds reports whether the coordinate lies inside the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Col >= 0 && c.Col < g.w && c.Row >= 0 && c.Row < g.h
}

// Classify returns the tile at (col, row). Anything outside the grid is a
// Wall, so callers never index out of range.
func (g *Grid) Classify(col, row int) Tile {
	c := Coord{col, row}
	if !g.InBounds(c) {
		return Wall
	}
	return g.cells[row*g.w+col]
}

// At is Classify for a Coord.
func (g *Grid) At(c Coord) Tile {
	return g.Classify(c.Col, c.Row)
}

// Consume turns a Collectible or BonusCollectible into Empty and reports
// what was there. Any other tile is left alone and ok is false.
func (g *Grid) Consume(col, row int) (consumed Tile, ok bool) {
	t := g.Classify(col, row)
	if !t.Edible() {
		return t, false
	}
	g.cells[row*g.w+col] = Empty
	return t, true
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Tile, len(g.cells))
	copy(cells, g.cells)
	return &Grid{w: g.w, h: g.h, cells: cells}
}

// CountEdible returns the number of Collectible and BonusCollectible cells.
func (g *Grid) CountEdible() int {
	n := 0
	for _, t := range g.cells {
		if t.Edible() {
			n++
		}
	}
	return n
}

// Codes returns the grid as rows of tile codes.
func (g *Grid) Codes() [][]int {
	rows := make([][]int, g.h)
	for r := range rows {
		rows[r] = make([]int, g.w)
		for c := range rows[r] {
			rows[r][c] = g.cells[r*g.w+c].Code()
		}
	}
	return rows
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.w != other.w || g.h != other.h {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// Template is a loaded maze: the read-only grid plus spawn tiles.
type Template struct {
	ID           string
	Name         string
	Grid         *Grid
	PlayerSpawn  Coord
	PursuerSpawn Coord
}

// NewTemplate validates spawns against the grid. Spawns must be inside the
// grid and not on a Wall; the pursuer may start inside a RestrictedZone
// (its home area) but the player may not.
func NewTemplate(id, name string, grid *Grid, player, pursuer Coord) (*Template, error) {
	if grid == nil {
		return nil, ErrEmptyGrid
	}
	if !grid.InBounds(player) || grid.At(player).Blocking() {
		return nil, fmt.Errorf("player spawn %s is %s: %w", player, grid.At(player), ErrBadSpawn)
	}
	if !grid.InBounds(pursuer) || grid.At(pursuer) == Wall {
		return nil, fmt.Errorf("pursuer spawn %s is %s: %w", pursuer, grid.At(pursuer), ErrBadSpawn)
	}
	return &Template{
		ID:           id,
		Name:         name,
		Grid:         grid,
		PlayerSpawn:  player,
		PursuerSpawn: pursuer,
	}, nil
}
