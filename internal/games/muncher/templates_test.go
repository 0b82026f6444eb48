package muncher

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/pixel-muncher/internal/core"
	"github.com/vovakirdan/pixel-muncher/internal/games/muncher/mazes"
)

func TestEmbeddedTemplates(t *testing.T) {
	tmpls, err := EmbeddedTemplates()
	if err != nil {
		t.Fatalf("EmbeddedTemplates() error = %v", err)
	}
	if len(tmpls) != 2 || tmpls[0].ID != "classic" || tmpls[1].ID != "tunnels" {
		t.Fatalf("templates = %v", tmpls)
	}

	classic := tmpls[0]
	if classic.Grid.Width() != 20 || classic.Grid.Height() != 20 {
		t.Errorf("classic is %dx%d, want 20x20", classic.Grid.Width(), classic.Grid.Height())
	}
	if classic.PlayerSpawn != (Coord{1, 1}) || classic.PursuerSpawn != (Coord{10, 8}) {
		t.Errorf("classic spawns = %s %s", classic.PlayerSpawn, classic.PursuerSpawn)
	}
	if classic.Grid.At(classic.PursuerSpawn) != RestrictedZone {
		t.Errorf("classic pursuer does not start at home")
	}
}

func TestPursuerLeavesHome(t *testing.T) {
	tmpls, err := EmbeddedTemplates()
	if err != nil {
		t.Fatal(err)
	}

	for _, tmpl := range tmpls {
		t.Run(tmpl.ID, func(t *testing.T) {
			b := Board{Grid: tmpl.Grid, TileSize: testTile}
			self := pursuerAt(b, tmpl.PursuerSpawn, DirNone)
			d := ChooseHeading(self, b, b.Center(tmpl.PlayerSpawn))
			if d == DirNone {
				t.Fatal("pursuer is walled in at its spawn")
			}
			if b.Blocked(tmpl.PursuerSpawn, d) {
				t.Errorf("chose blocked direction %s", d)
			}
		})
	}
}

func TestEmbeddedWrapRowsAreOpen(t *testing.T) {
	tmpls, err := EmbeddedTemplates()
	if err != nil {
		t.Fatal(err)
	}
	for _, tmpl := range tmpls {
		g := tmpl.Grid
		wraps := 0
		for row := range g.Height() {
			left, right := g.Classify(0, row), g.Classify(g.Width()-1, row)
			if left.Blocking() != right.Blocking() {
				t.Errorf("%s row %d: edges disagree (%s vs %s)", tmpl.ID, row, left, right)
			}
			if !left.Blocking() {
				wraps++
			}
		}
		if wraps == 0 {
			t.Errorf("%s has no side corridor", tmpl.ID)
		}
	}
}

func TestBuildTemplateErrors(t *testing.T) {
	tests := []struct {
		name string
		maze mazes.Maze
		want error
	}{
		{
			name: "ragged",
			maze: mazes.Maze{ID: "r", Rows: [][]int{{1, 1}, {1}}},
			want: ErrNotRectangular,
		},
		{
			name: "unknown code",
			maze: mazes.Maze{ID: "u", Rows: [][]int{{7}}},
			want: ErrUnknownTile,
		},
		{
			name: "spawn on wall",
			maze: mazes.Maze{ID: "s", Rows: [][]int{{1, 0, 0}}, Player: mazes.Spawn{Col: 0}, Pursuer: mazes.Spawn{Col: 2}},
			want: ErrBadSpawn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildTemplate(tt.maze)
			if !errors.Is(err, tt.want) {
				t.Errorf("BuildTemplate() error = %v, want %v", err, tt.want)
			}
		})
	}

	// Only the spawn tile is edible, so nothing is left to eat.
	_, err := BuildTemplate(mazes.Maze{ID: "bare", Rows: [][]int{{0, 2}}, Pursuer: mazes.Spawn{Col: 1}})
	if err == nil {
		t.Error("BuildTemplate() accepted a maze with nothing to eat")
	}
}

func TestLoadTemplateStartsSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.yaml")
	data := []byte(`id: tiny
player: {col: 1, row: 1}
pursuer: {col: 3, row: 1}
layout:
  - "#####"
  - "#..=#"
  - "#####"
`)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	tmpl, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("LoadTemplate() error = %v", err)
	}

	g := newTestGame(t, tmpl, nil)
	g.Step(press(core.ActionConfirm))
	if g.Machine().Session().Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", g.Machine().Session().Remaining())
	}
}
