package muncher

import "fmt"

// EventKind identifies what changed in a session.
type EventKind uint8

const (
	EventStateChanged EventKind = iota
	EventScoreChanged
	EventLivesChanged
	EventEncounter
	EventWon
	EventLost
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state"
	case EventScoreChanged:
		return "score"
	case EventLivesChanged:
		return "lives"
	case EventEncounter:
		return "encounter"
	case EventWon:
		return "won"
	case EventLost:
		return "lost"
	default:
		return fmt.Sprintf("event(%d)", uint8(k))
	}
}

// Event is a change notification drained from the Machine.
// Only the fields relevant to Kind are set.
type Event struct {
	Kind  EventKind
	State State

	// Score changes
	Score     int
	Remaining int
	Consumed  Tile
	At        Coord

	// Lives changes and encounters
	Lives int

	// Won and Lost
	HighScore    int
	NewHighScore bool
}

func (e Event) String() string {
	switch e.Kind {
	case EventStateChanged:
		return fmt.Sprintf("state -> %s", e.State)
	case EventScoreChanged:
		return fmt.Sprintf("score %d (%s at %s, %d left)", e.Score, e.Consumed, e.At, e.Remaining)
	case EventLivesChanged, EventEncounter:
		return fmt.Sprintf("%s lives=%d", e.Kind, e.Lives)
	default:
		return fmt.Sprintf("%s score=%d high=%d new=%t", e.Kind, e.Score, e.HighScore, e.NewHighScore)
	}
}

// countKind returns how many events of kind k are in evs.
func countKind(evs []Event, k EventKind) int {
	n := 0
	for _, e := range evs {
		if e.Kind == k {
			n++
		}
	}
	return n
}
