package muncher

import (
	"fmt"

	"github.com/vovakirdan/pixel-muncher/internal/games/muncher/mazes"
)

// BuildTemplate validates a parsed maze and turns it into a Template.
// A malformed grid or an unusable spawn is an error; no session can be
// started from it.
func BuildTemplate(m mazes.Maze) (*Template, error) {
	grid, err := NewGrid(m.Rows)
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", m.ID, err)
	}
	tmpl, err := NewTemplate(m.ID, m.Name, grid,
		Coord{Col: m.Player.Col, Row: m.Player.Row},
		Coord{Col: m.Pursuer.Col, Row: m.Pursuer.Row},
	)
	if err != nil {
		return nil, fmt.Errorf("maze %q: %w", m.ID, err)
	}
	edible := grid.CountEdible()
	if grid.At(tmpl.PlayerSpawn).Edible() {
		edible-- // cleared at session start
	}
	if edible == 0 {
		return nil, fmt.Errorf("maze %q: no collectibles", m.ID)
	}
	return tmpl, nil
}

// LoadTemplate reads, parses and validates a maze file.
func LoadTemplate(path string) (*Template, error) {
	m, err := mazes.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return BuildTemplate(m)
}

// EmbeddedTemplates returns the built-in mazes, sorted by ID.
func EmbeddedTemplates() ([]*Template, error) {
	ms, err := mazes.Embedded()
	if err != nil {
		return nil, err
	}
	out := make([]*Template, 0, len(ms))
	for _, m := range ms {
		t, err := BuildTemplate(m)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
