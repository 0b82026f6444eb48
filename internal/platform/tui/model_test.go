package tui

import (
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pixel-muncher/internal/core"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
	"github.com/vovakirdan/pixel-muncher/internal/storage"
)

// fakeGame records what the platform hands it.
type fakeGame struct {
	resets int
	inputs []core.InputFrame
	fired  []uint64
	state  core.GameState
	timers []core.TimerRequest
	cfg    core.RuntimeConfig
}

func (g *fakeGame) ID() string                   { return "fake" }
func (g *fakeGame) Title() string                { return "Fake" }
func (g *fakeGame) Render(*core.Screen)          {}
func (g *fakeGame) State() core.GameState        { return g.state }
func (g *fakeGame) Fire(id uint64)               { g.fired = append(g.fired, id) }
func (g *fakeGame) Reset(cfg core.RuntimeConfig) { g.resets++; g.cfg = cfg }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in)
	timers := g.timers
	g.timers = nil
	return core.StepResult{State: g.state, Timers: timers}
}

func init() {
	registry.Register("fake", func() registry.Game { return &fakeGame{} })
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func tickFor(m GameModel) TickMsg {
	return TickMsg{Owner: m.serial, At: time.Now()}
}

func update(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	gm, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, want GameModel", next)
	}
	return gm
}

func TestGameModelForwardsActionsOnNextTick(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey('p'))
	m = update(t, m, tickFor(m))
	m = update(t, m, tickFor(m))

	if len(g.inputs) != 2 {
		t.Fatalf("steps = %d, want 2", len(g.inputs))
	}
	if !g.inputs[0].Has(core.ActionLeft) || !g.inputs[0].Has(core.ActionPause) {
		t.Errorf("first frame = %v, want Left and Pause", g.inputs[0].Actions())
	}
	if !g.inputs[1].Empty() {
		t.Errorf("second frame = %v, want empty", g.inputs[1].Actions())
	}
}

func TestGameModelIgnoresOtherModelsTicks(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), nil)
	old := NewGameModel(&fakeGame{}, nil, testConfig(), nil)

	m = update(t, m, tickFor(old))
	if len(g.inputs) != 0 {
		t.Fatalf("stepped %d times on a stale tick", len(g.inputs))
	}
	update(t, m, tickFor(m))
	if len(g.inputs) != 1 {
		t.Errorf("steps = %d, want 1", len(g.inputs))
	}
}

func TestGameModelTimersReachOwnerOnly(t *testing.T) {
	g := &fakeGame{timers: []core.TimerRequest{{ID: 7, After: 500 * time.Millisecond}}}
	m := NewGameModel(g, nil, testConfig(), nil)
	other := NewGameModel(&fakeGame{}, nil, testConfig(), nil)

	m = update(t, m, tickFor(m))
	m = update(t, m, TimerMsg{Owner: other.serial, ID: 7})
	if len(g.fired) != 0 {
		t.Fatalf("fired %v from another model's timer", g.fired)
	}

	update(t, m, TimerMsg{Owner: m.serial, ID: 7})
	if len(g.fired) != 1 || g.fired[0] != 7 {
		t.Errorf("fired = %v, want [7]", g.fired)
	}
}

func TestGameModelSavesScoreOncePerGameOver(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, store, testConfig(), nil)

	g.state = core.GameState{Score: 120, GameOver: true}
	m = update(t, m, tickFor(m))
	m = update(t, m, tickFor(m))

	g.state = core.GameState{}
	m = update(t, m, tickFor(m))

	g.state = core.GameState{Score: 40, GameOver: true}
	update(t, m, tickFor(m))

	scores, err := store.AllScores("fake")
	if err != nil {
		t.Fatalf("AllScores: %v", err)
	}
	if len(scores) != 2 {
		t.Fatalf("saved %d scores, want 2", len(scores))
	}
}

func TestGameModelSkipsZeroScore(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{state: core.GameState{GameOver: true}}
	m := NewGameModel(g, store, testConfig(), nil)
	update(t, m, tickFor(m))

	best, err := store.HighScore("fake")
	if err != nil {
		t.Fatalf("HighScore: %v", err)
	}
	if best != 0 {
		t.Errorf("HighScore = %d, want 0", best)
	}
}

func TestGameModelBack(t *testing.T) {
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	t.Run("ignored while running", func(t *testing.T) {
		g := &fakeGame{}
		m := NewGameModel(g, nil, testConfig(), nil)
		m = update(t, m, tickFor(m))
		m = update(t, m, esc)
		if m.BackToMenu() || m.IsQuitting() {
			t.Error("back honored while the game is running")
		}
	})

	t.Run("returns to menu after game over", func(t *testing.T) {
		g := &fakeGame{state: core.GameState{GameOver: true}}
		m := NewGameModel(g, nil, testConfig(), nil)
		m = update(t, m, tickFor(m))
		m = update(t, m, esc)
		if !m.BackToMenu() {
			t.Error("BackToMenu() = false after game over")
		}
	})

	t.Run("quits when standalone", func(t *testing.T) {
		g := &fakeGame{state: core.GameState{Paused: true}}
		m := NewGameModel(g, nil, testConfig(), nil)
		m.standalone = true
		m = update(t, m, tickFor(m))
		m = update(t, m, esc)
		if !m.IsQuitting() {
			t.Error("IsQuitting() = false for standalone back")
		}
	})
}

func TestGameModelResizeKeepsSession(t *testing.T) {
	g := &fakeGame{}
	m := NewGameModel(g, nil, testConfig(), nil)
	m.Init()

	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if g.resets != 1 {
		t.Errorf("resets = %d, want 1", g.resets)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("screen = %dx%d, want 120x40", m.screen.Width(), m.screen.Height())
	}
}

func TestNewGameModelWiresPrefs(t *testing.T) {
	store := openTestStore(t)
	g := &fakeGame{}
	m := NewGameModel(g, store, testConfig(), nil)
	m.Init()

	if g.cfg.Prefs == nil {
		t.Fatal("Prefs not set from store")
	}

	g2 := &fakeGame{}
	m2 := NewGameModel(g2, nil, testConfig(), nil)
	m2.Init()
	if g2.cfg.Prefs != nil {
		t.Errorf("Prefs = %v without a store, want nil", g2.cfg.Prefs)
	}
}
