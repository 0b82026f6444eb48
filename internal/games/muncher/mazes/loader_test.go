package mazes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseYAMLRows(t *testing.T) {
	data := []byte(`id: box
name: Box
player: {col: 1, row: 1}
pursuer: {col: 2, row: 1}
rows:
  - [1, 1, 1, 1]
  - [1, 0, 9, 1]
  - [1, 1, 1, 1]
`)
	m, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if m.ID != "box" || m.Name != "Box" {
		t.Errorf("id/name = %q/%q", m.ID, m.Name)
	}
	if len(m.Rows) != 3 || m.Rows[1][2] != 9 {
		t.Errorf("rows = %v", m.Rows)
	}
	if m.Player != (Spawn{1, 1}) || m.Pursuer != (Spawn{2, 1}) {
		t.Errorf("spawns = %v %v", m.Player, m.Pursuer)
	}
}

func TestParseYAMLLayout(t *testing.T) {
	data := []byte(`id: lay
layout:
  - "#####"
  - "#.o=#"
  - " 2 0 "
`)
	m, err := ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	want := [][]int{
		{1, 1, 1, 1, 1},
		{1, 0, 3, 9, 1},
		{2, 2, 2, 0, 2},
	}
	for r := range want {
		for c := range want[r] {
			if m.Rows[r][c] != want[r][c] {
				t.Errorf("Rows[%d][%d] = %d, want %d", r, c, m.Rows[r][c], want[r][c])
			}
		}
	}
	if m.Name != "lay" {
		t.Errorf("Name = %q, want the id as fallback", m.Name)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"bad yaml", "id: [", "yaml unmarshal"},
		{"missing id", "rows: [[1]]", "missing id"},
		{"no rows", "id: x", "no rows"},
		{"both", "id: x\nrows: [[1]]\nlayout: ['#']", "both rows and layout"},
		{"bad layout char", "id: x\nlayout: ['#?#']", "unknown layout character"},
		{"bad char column", "id: x\nlayout: ['#?#']", "row 0 col 1:"},
		{"column after wide char", "id: x\nlayout: ['#éé']", "row 0 col 1:"},
		{"wide char on later row", "id: x\nlayout: ['.', '##█#']", "row 1 col 2:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseYAML([]byte(tt.data))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("ParseYAML() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestEmbedded(t *testing.T) {
	ms, err := Embedded()
	if err != nil {
		t.Fatalf("Embedded() error = %v", err)
	}
	var ids []string
	for _, m := range ms {
		ids = append(ids, m.ID)
		if m.FilePath != "" {
			t.Errorf("%s: FilePath = %q, want empty", m.ID, m.FilePath)
		}
	}
	if strings.Join(ids, ",") != "classic,tunnels" {
		t.Errorf("ids = %v", ids)
	}
}

func TestLoaderLoadAll(t *testing.T) {
	root := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}
	write("b.yaml", "id: b\nrows: [[1]]\n")
	write("nested/a.yml", "id: a\nlayout: ['#']\n")
	write("broken.yaml", "id: [\n")
	write("notes.txt", "ignored")

	ms, skipped, err := NewLoader(root).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll() error = %v", err)
	}
	if len(ms) != 2 || ms[0].ID != "a" || ms[1].ID != "b" {
		t.Errorf("mazes = %+v", ms)
	}
	if len(skipped) != 1 {
		t.Errorf("skipped = %v, want the broken file", skipped)
	}
	if ms[0].FilePath != filepath.Join(root, "nested", "a.yml") {
		t.Errorf("FilePath = %q", ms[0].FilePath)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() on a missing file succeeded")
	}

	path := filepath.Join(t.TempDir(), "maze.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil || !strings.Contains(err.Error(), "unsupported extension") {
		t.Errorf("LoadFile() error = %v", err)
	}
}
