package mazes

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// yamlMaze is the on-disk layout of a maze file. Exactly one of Rows
// (integer tile codes) or Layout (one string per row) must be set.
type yamlMaze struct {
	ID      string    `yaml:"id"`
	Name    string    `yaml:"name"`
	Player  yamlCoord `yaml:"player"`
	Pursuer yamlCoord `yaml:"pursuer"`
	Rows    [][]int   `yaml:"rows,omitempty"`
	Layout  []string  `yaml:"layout,omitempty"`
}

type yamlCoord struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

// layoutCodes maps layout characters to tile codes. Digits map to
// themselves so either notation can be used in a layout string.
var layoutCodes = map[rune]int{
	'#': 1, '.': 0, ' ': 2, 'o': 3, '=': 9,
	'0': 0, '1': 1, '2': 2, '3': 3, '9': 9,
}

// ParseYAML decodes a maze file. Only the file structure is checked here;
// tile codes and spawns are validated when the maze is built.
func ParseYAML(data []byte) (Maze, error) {
	var ym yamlMaze
	if err := yaml.Unmarshal(data, &ym); err != nil {
		return Maze{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if ym.ID == "" {
		return Maze{}, fmt.Errorf("missing id")
	}

	rows := ym.Rows
	switch {
	case len(ym.Rows) > 0 && len(ym.Layout) > 0:
		return Maze{}, fmt.Errorf("maze %q sets both rows and layout", ym.ID)
	case len(ym.Layout) > 0:
		var err error
		if rows, err = parseLayout(ym.Layout); err != nil {
			return Maze{}, fmt.Errorf("maze %q: %w", ym.ID, err)
		}
	case len(ym.Rows) == 0:
		return Maze{}, fmt.Errorf("maze %q has no rows", ym.ID)
	}

	name := ym.Name
	if name == "" {
		name = ym.ID
	}

	return Maze{
		ID:      ym.ID,
		Name:    name,
		Rows:    rows,
		Player:  Spawn{Col: ym.Player.Col, Row: ym.Player.Row},
		Pursuer: Spawn{Col: ym.Pursuer.Col, Row: ym.Pursuer.Row},
	}, nil
}

func parseLayout(layout []string) ([][]int, error) {
	rows := make([][]int, len(layout))
	for r, line := range layout {
		row := make([]int, 0, len(line))
		for _, ch := range line {
			code, ok := layoutCodes[ch]
			if !ok {
				// Columns count characters, not bytes.
				return nil, fmt.Errorf("row %d col %d: unknown layout character %q", r, len(row), ch)
			}
			row = append(row, code)
		}
		rows[r] = row
	}
	return rows, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
