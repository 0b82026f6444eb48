package muncher

import "github.com/vovakirdan/pixel-muncher/internal/core"

// pursuitOrder is the fixed candidate order; on equal distances the
// earliest direction wins.
var pursuitOrder = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// ChooseHeading picks the pursuer's next heading greedily toward quarry.
//
// The reverse of the current heading and blocked directions are dropped.
// If nothing is left (a dead end), the reverse is taken when open. Each
// remaining direction is scored by the distance from the position one tile
// ahead to quarry; the smallest score wins. If no direction is open at all
// the current heading is returned unchanged and Move will stop it.
func ChooseHeading(self Character, b Board, quarry core.Vec) Direction {
	tile := b.TileOf(self.Pos)
	reverse := self.Heading.Opposite()

	best := DirNone
	bestDist := 0.0
	for _, d := range pursuitOrder {
		if d == reverse || b.Blocked(tile, d) {
			continue
		}
		dist := self.Pos.Add(d.Unit().Scale(b.TileSize)).Dist(quarry)
		if best == DirNone || dist < bestDist {
			best, bestDist = d, dist
		}
	}
	if best != DirNone {
		return best
	}

	if reverse != DirNone && !b.Blocked(tile, reverse) {
		return reverse
	}
	return self.Heading
}

// Steering decides a character's heading intent before it moves.
type Steering interface {
	Steer(self *Character, b Board, quarry core.Vec)
}

// inputSteering leaves the heading to intents buffered via SetIntent.
type inputSteering struct{}

func (inputSteering) Steer(*Character, Board, core.Vec) {}

// pursuitSteering re-evaluates the heading at every decision point.
type pursuitSteering struct{}

func (pursuitSteering) Steer(self *Character, b Board, quarry core.Vec) {
	if !self.AtDecisionPoint(b) {
		return
	}
	self.Heading = ChooseHeading(*self, b, quarry)
}

// steeringFor returns the strategy for a role.
func steeringFor(r Role) Steering {
	if r == RolePursuer {
		return pursuitSteering{}
	}
	return inputSteering{}
}
