package muncher

import "fmt"

// Tile classifies one cell of the maze.
type Tile uint8

const (
	Wall Tile = iota
	Collectible
	Empty
	BonusCollectible
	RestrictedZone
)

// Template tile codes, as stored in maze files.
const (
	CodeCollectible    = 0
	CodeWall           = 1
	CodeEmpty          = 2
	CodeBonus          = 3
	CodeRestrictedZone = 9
)

// TileFromCode maps a maze file code to a Tile.
func TileFromCode(code int) (Tile, bool) {
	switch code {
	case CodeCollectible:
		return Collectible, true
	case CodeWall:
		return Wall, true
	case CodeEmpty:
		return Empty, true
	case CodeBonus:
		return BonusCollectible, true
	case CodeRestrictedZone:
		return RestrictedZone, true
	default:
		return Wall, false
	}
}

// Code returns the maze file code for the tile.
func (t Tile) Code() int {
	switch t {
	case Collectible:
		return CodeCollectible
	case Empty:
		return CodeEmpty
	case BonusCollectible:
		return CodeBonus
	case RestrictedZone:
		return CodeRestrictedZone
	default:
		return CodeWall
	}
}

// Blocking reports whether characters may not enter the tile.
func (t Tile) Blocking() bool {
	return t == Wall || t == RestrictedZone
}

// Edible reports whether the tile holds something to consume.
func (t Tile) Edible() bool {
	return t == Collectible || t == BonusCollectible
}

func (t Tile) String() string {
	switch t {
	case Wall:
		return "wall"
	case Collectible:
		return "collectible"
	case Empty:
		return "empty"
	case BonusCollectible:
		return "bonus"
	case RestrictedZone:
		return "restricted"
	default:
		return fmt.Sprintf("tile(%d)", uint8(t))
	}
}
