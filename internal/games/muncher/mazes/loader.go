// Package mazes loads maze definitions from YAML files, both the ones
// compiled into the binary and user-supplied ones.
// This package does not validate tiles; muncher.BuildTemplate does.
package mazes

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var embedded embed.FS

// Spawn is a start tile.
type Spawn struct {
	Col, Row int
}

// Maze is a parsed maze file.
type Maze struct {
	ID       string
	Name     string
	Rows     [][]int
	Player   Spawn
	Pursuer  Spawn
	FilePath string // Empty for embedded mazes
}

// Embedded returns the mazes compiled into the binary, sorted by ID.
func Embedded() ([]Maze, error) {
	entries, err := fs.ReadDir(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("mazes: reading embedded: %w", err)
	}

	var out []Maze
	for _, e := range entries {
		if e.IsDir() || !isSupportedExtension(strings.ToLower(filepath.Ext(e.Name()))) {
			continue
		}
		data, err := embedded.ReadFile("data/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("mazes: reading embedded %s: %w", e.Name(), err)
		}
		m, err := ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("mazes: parsing embedded %s: %w", e.Name(), err)
		}
		out = append(out, m)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// LoadFile loads a single maze file.
func LoadFile(path string) (Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: reading file %s: %w", path, err)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedExtension(ext) {
		return Maze{}, fmt.Errorf("mazes: unsupported extension: %s", ext)
	}

	m, err := ParseYAML(data)
	if err != nil {
		return Maze{}, fmt.Errorf("mazes: parsing file %s: %w", path, err)
	}
	m.FilePath = path
	return m, nil
}

// Loader loads every maze file under a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new maze loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all maze files, sorted by ID.
// Files that fail to parse are skipped and reported in skipped.
func (l *Loader) LoadAll() (mazes []Maze, skipped map[string]error, err error) {
	skipped = make(map[string]error)

	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !isSupportedExtension(strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		m, err := LoadFile(path)
		if err != nil {
			skipped[path] = err
			return nil
		}
		mazes = append(mazes, m)
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("mazes: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(mazes, func(i, j int) bool {
		return mazes[i].ID < mazes[j].ID
	})
	return mazes, skipped, nil
}

// UserDir returns ~/.arcade/mazes, or empty if home is unavailable.
func UserDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "mazes")
}

func isSupportedExtension(ext string) bool {
	for _, supported := range FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
