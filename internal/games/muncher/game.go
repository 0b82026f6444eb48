// Package muncher implements Pixel Muncher, a single-maze chase game: the
// player eats every collectible while a pursuer hunts them down.
//
// The engine (Grid, Move, ChooseHeading, Session, Machine) is independent
// of the platform; Game adapts it to registry.Game.
package muncher

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-muncher/internal/config"
	"github.com/vovakirdan/pixel-muncher/internal/core"
	"github.com/vovakirdan/pixel-muncher/internal/registry"
)

// Package-level settings applied on the next Reset (set from CLI flags).
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset preselects the difficulty shown in the menu.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

func init() {
	tmpls, err := EmbeddedTemplates()
	if err != nil {
		panic(fmt.Sprintf("muncher: embedded mazes: %v", err))
	}
	for _, t := range tmpls {
		Register(t)
	}
}

// Register makes a maze playable under its ID.
func Register(t *Template) {
	registry.Register(t.ID, func() registry.Game {
		return New(t)
	})
}

// Game adapts a Machine to the platform. It also acts as the machine's
// Scheduler, turning resume requests into platform timers.
type Game struct {
	tmpl    *Template
	cfg     config.MuncherConfig
	machine *Machine

	choice config.DifficultyPreset // Menu selection
	held   bool                    // Held with P; nothing advances
	result *Event                  // Last Won or Lost event

	pending []core.TimerRequest
	live    map[uint64]bool

	tick    uint64
	screenW int
	screenH int
}

// New creates a game on the given maze.
func New(t *Template) *Game {
	return &Game{tmpl: t}
}

// ID returns the maze identifier.
func (g *Game) ID() string { return g.tmpl.ID }

// Title returns the display name.
func (g *Game) Title() string { return "Pixel Muncher: " + g.tmpl.Name }

// Template returns the maze the game is played on.
func (g *Game) Template() *Template { return g.tmpl }

// Machine exposes the lifecycle machine.
func (g *Game) Machine() *Machine { return g.machine }

// Reset loads configuration and returns to the difficulty menu.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	mc, err := config.LoadMuncher(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		mc = config.DefaultMuncherConfig()
	}
	config.ApplyMuncherPreset(&mc, difficultyPreset)
	g.cfg = mc

	g.choice = config.DifficultyEasy
	if mc.Difficulty.Default.IsHard() {
		g.choice = config.DifficultyHard
	}
	g.held = false
	g.result = nil
	g.pending = nil
	g.live = make(map[uint64]bool)
	g.tick = 0

	g.machine = NewMachine(g.tmpl, mc,
		WithHighScores(cfg.Prefs),
		WithScheduler(g),
		WithLogger(logger.With("maze", g.tmpl.ID)),
	)
}

// Step applies input and advances the machine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	switch st := g.machine.State(); {
	case st == StateMenu:
		g.stepMenu(in)
	case st.Terminal():
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			//nolint:errcheck // Terminal state checked above
			g.machine.Restart()
			g.result = nil
		}
	default:
		if in.Has(core.ActionPause) {
			g.held = !g.held
		}
		for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight} {
			if !in.Has(a) {
				continue
			}
			if d, ok := DirectionFromAction(a); ok {
				g.machine.SetIntent(d)
			}
		}
	}

	var evs []Event
	if g.held {
		evs = g.machine.Drain()
	} else {
		evs = g.machine.Tick()
	}
	g.observe(evs)

	timers := g.pending
	g.pending = nil
	return core.StepResult{State: g.State(), Timers: timers}
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp), in.Has(core.ActionLeft):
		g.choice = config.DifficultyEasy
	case in.Has(core.ActionDown), in.Has(core.ActionRight):
		g.choice = config.DifficultyHard
	}
	if in.Has(core.ActionConfirm) {
		//nolint:errcheck // Menu state checked by caller
		g.machine.Start(g.choice)
		g.held = false
	}
}

func (g *Game) observe(evs []Event) {
	for i := range evs {
		if evs[i].Kind == EventWon || evs[i].Kind == EventLost {
			e := evs[i]
			g.result = &e
		}
	}
}

// Schedule records a timer for the platform to run.
func (g *Game) Schedule(token uint64, after time.Duration) {
	g.live[token] = true
	g.pending = append(g.pending, core.TimerRequest{ID: token, After: after})
}

// Cancel forgets a timer; if it still fires it is ignored.
func (g *Game) Cancel(token uint64) {
	delete(g.live, token)
}

// Fire delivers an elapsed timer to the machine.
func (g *Game) Fire(id uint64) {
	if !g.live[id] {
		return
	}
	delete(g.live, id)
	g.machine.Resume(id)
}

// State returns the platform-level game state.
func (g *Game) State() core.GameState {
	st := g.machine.State()
	score := 0
	if s := g.machine.Session(); s != nil {
		score = s.Score()
	}
	return core.GameState{
		Score:    score,
		GameOver: st.Terminal(),
		Paused:   g.held || st == StatePaused,
	}
}
